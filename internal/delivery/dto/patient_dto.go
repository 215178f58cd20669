package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// PatientRequest is the body for both create and update. Updates are a full
// replace of the mutable fields, not a patch.
type PatientRequest struct {
	Name           string           `json:"name" validate:"required,min=1,max=100"`
	Surname        string           `json:"surname" validate:"max=100"`
	Gender         string           `json:"gender" validate:"max=20"`
	Mobile         string           `json:"mobile" validate:"max=20"`
	Age            *int             `json:"age" validate:"omitempty,gte=0,lte=150"`
	ChiefComplaint string           `json:"chief_complaint"`
	Diagnosis      string           `json:"diagnosis"`
	TreatmentPlan  string           `json:"treatment_plan"`
	TreatmentType  string           `json:"treatment_type" validate:"max=100"`
	StartDate      string           `json:"start_date"`
	TotalFee       decimal.Decimal  `json:"total_fee" validate:"gte=0"`
	Images         []string         `json:"images"`
	Payments       []PaymentRequest `json:"payments" validate:"dive"`
}

type PaymentRequest struct {
	ID     uuid.UUID       `json:"id"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
	Date   time.Time       `json:"date"`
	Method string          `json:"method" validate:"max=50"`
	Notes  string          `json:"notes"`
}

type ReplaceImageRequest struct {
	ImageData string `json:"image_data" validate:"required"`
}

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Surname        string            `json:"surname,omitempty"`
	Gender         string            `json:"gender,omitempty"`
	Mobile         string            `json:"mobile,omitempty"`
	Age            *int              `json:"age,omitempty"`
	ChiefComplaint string            `json:"chief_complaint,omitempty"`
	Diagnosis      string            `json:"diagnosis,omitempty"`
	TreatmentPlan  string            `json:"treatment_plan,omitempty"`
	TreatmentType  string            `json:"treatment_type,omitempty"`
	StartDate      string            `json:"start_date,omitempty"`
	TotalFee       decimal.Decimal   `json:"total_fee"`
	TotalPaid      decimal.Decimal   `json:"total_paid"`
	DueAmount      decimal.Decimal   `json:"due_amount"`
	Images         []string          `json:"images"`
	Payments       []PaymentResponse `json:"payments"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type PaymentResponse struct {
	ID     uuid.UUID       `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Method string          `json:"method"`
	Notes  string          `json:"notes,omitempty"`
}

type ImageListResponse struct {
	Images []string `json:"images"`
}
