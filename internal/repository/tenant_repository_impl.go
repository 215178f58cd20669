package repository

import (
	"context"
	"errors"

	"smilehub-server/internal/domain/entity"
	domainRepo "smilehub-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tenantRepository struct{}

func NewTenantRepository() domainRepo.TenantRepository {
	return &tenantRepository{}
}

func (r *tenantRepository) Create(ctx context.Context, db *gorm.DB, tenant *entity.Tenant) error {
	return db.WithContext(ctx).Create(tenant).Error
}

func (r *tenantRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Tenant, error) {
	var tenant entity.Tenant
	err := db.WithContext(ctx).Where("email = ?", email).First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Tenant, error) {
	var tenant entity.Tenant
	err := db.WithContext(ctx).Where("id = ?", id).First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}
