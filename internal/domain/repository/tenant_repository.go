package repository

import (
	"context"

	"smilehub-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantRepository interface {
	Create(ctx context.Context, db *gorm.DB, tenant *entity.Tenant) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Tenant, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Tenant, error)
}
