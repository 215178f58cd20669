package repository

import (
	"context"
	"errors"

	"smilehub-server/internal/domain/entity"
	domainRepo "smilehub-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindAllByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, patientID uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", patientID, tenantID).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, tenantID, patientID uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", patientID, tenantID).
		Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

func (r *patientRepository) UpdateImages(ctx context.Context, db *gorm.DB, tenantID, patientID uuid.UUID, images entity.StringList) error {
	return db.WithContext(ctx).
		Model(&entity.Patient{}).
		Where("id = ? AND tenant_id = ?", patientID, tenantID).
		Update("images", images).Error
}
