package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rowtrack/entities"
)

type DeliveryRepository interface {
	Create(ctx context.Context, tx *gorm.DB, d *entities.Delivery) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Delivery, error)
	ListByProject(ctx context.Context, tx *gorm.DB, projectID uint, from, to *time.Time) ([]entities.Delivery, error)
	Update(ctx context.Context, tx *gorm.DB, id uint, cols map[string]any) error
	// AttachPackage appends pkg to the delivery's packages.
	AttachPackage(ctx context.Context, tx *gorm.DB, d *entities.Delivery, pkg *entities.Package) error
}

type PackageRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *entities.Package) error
}
