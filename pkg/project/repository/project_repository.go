package repository

import (
	"context"

	"gorm.io/gorm"

	"rowtrack/entities"
)

type ProjectRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *entities.Project) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Project, error)
}
