package repository

import (
	"context"

	"gorm.io/gorm"

	"rowtrack/entities"
)

type StakeholderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, s *entities.Stakeholder) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Stakeholder, error)
	Update(ctx context.Context, tx *gorm.DB, id uint, cols map[string]any) error
	// AttachPackage makes pkg the stakeholder's only package. A package
	// attached earlier is detached, not deleted.
	AttachPackage(ctx context.Context, tx *gorm.DB, s *entities.Stakeholder, pkg *entities.Package) error
}
