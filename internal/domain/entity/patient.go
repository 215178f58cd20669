package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Patient is a dental patient record. Payments and images are embedded in the
// row as JSONB lists; both keep insertion order.
type Patient struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TenantID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name           string          `gorm:"type:varchar(100);not null" json:"name"`
	Surname        string          `gorm:"type:varchar(100)" json:"surname,omitempty"`
	Gender         string          `gorm:"type:varchar(20)" json:"gender,omitempty"`
	Mobile         string          `gorm:"type:varchar(20)" json:"mobile,omitempty"`
	Age            *int            `gorm:"type:int" json:"age,omitempty"`
	ChiefComplaint string          `gorm:"type:text" json:"chief_complaint,omitempty"`
	Diagnosis      string          `gorm:"type:text" json:"diagnosis,omitempty"`
	TreatmentPlan  string          `gorm:"type:text" json:"treatment_plan,omitempty"`
	TreatmentType  string          `gorm:"type:varchar(100)" json:"treatment_type,omitempty"`
	StartDate      *time.Time      `gorm:"type:date" json:"start_date,omitempty"`
	TotalFee       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_fee"`
	Images         StringList      `gorm:"type:jsonb" json:"images"`
	Payments       PaymentList     `gorm:"type:jsonb" json:"payments"`
	CreatedAt      time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Payment is one installment toward a patient's total fee. Not a table of its
// own, lives inside patients.payments.
type Payment struct {
	ID     uuid.UUID       `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Method string          `json:"method"`
	Notes  string          `json:"notes,omitempty"`
}

// Known payment methods. The column stays free text, these are the values the
// form offers.
const (
	PaymentMethodCash         = "Cash"
	PaymentMethodCard         = "Card"
	PaymentMethodUPI          = "UPI"
	PaymentMethodBankTransfer = "Bank Transfer"
)

// Known treatment type labels.
var TreatmentTypes = []string{
	"General Checkup",
	"Cleaning",
	"Filling",
	"Root Canal",
	"Crown",
	"Bridge",
	"Dentures",
	"Implants",
	"Orthodontics",
	"Teeth Whitening",
	"Extraction",
	"Other",
}

// StringList type for GORM JSONB support (ordered image references)
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan scan value into StringList, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := []string{}
	err := json.Unmarshal(bytes, &result)
	*l = StringList(result)
	return err
}

// PaymentList type for GORM JSONB support (ordered payment history)
type PaymentList []Payment

// Value returns json value, implement driver.Valuer interface
func (l PaymentList) Value() (driver.Value, error) {
	if l == nil {
		l = PaymentList{}
	}
	return json.Marshal(l)
}

// Scan scan value into PaymentList, implements sql.Scanner interface
func (l *PaymentList) Scan(value interface{}) error {
	if value == nil {
		*l = PaymentList{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := []Payment{}
	err := json.Unmarshal(bytes, &result)
	*l = PaymentList(result)
	return err
}
