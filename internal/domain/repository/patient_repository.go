package repository

import (
	"context"

	"smilehub-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientRepository is the tenant-scoped record store. Every lookup matches on
// both patient id and tenant id; a row owned by another tenant is
// indistinguishable from a missing row (nil, nil).
type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindAllByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]entity.Patient, error)
	FindByID(ctx context.Context, db *gorm.DB, tenantID, patientID uuid.UUID) (*entity.Patient, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Delete(ctx context.Context, db *gorm.DB, tenantID, patientID uuid.UUID) (int64, error)
	UpdateImages(ctx context.Context, db *gorm.DB, tenantID, patientID uuid.UUID, images entity.StringList) error
}
