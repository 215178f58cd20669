package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is a practice account. Every patient row belongs to exactly one
// tenant and is invisible to every other tenant.
type Tenant struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patients []Patient `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"patients,omitempty"`
}

func (Tenant) TableName() string {
	return "tenants"
}
