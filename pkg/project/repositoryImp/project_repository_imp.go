package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"rowtrack/entities"
	"rowtrack/pkg/logger"
	"rowtrack/pkg/project/repository"
)

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, baseLog *logger.Logger) repository.ProjectRepository {
	return &projectRepo{db: db, log: baseLog.With("repo", "ProjectRepo")}
}

func (r *projectRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *projectRepo) Create(ctx context.Context, tx *gorm.DB, p *entities.Project) error {
	if err := r.conn(ctx, tx).Omit("Stakeholders").Create(p).Error; err != nil {
		r.log.Error("create project failed", "name", p.Name, "error", err)
		return err
	}
	return nil
}

// FindByID loads the project with its stakeholders and their tract records.
func (r *projectRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Project, error) {
	var out entities.Project
	err := r.conn(ctx, tx).
		Preload("Stakeholders", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Stakeholders.TractRecords", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&out, id).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}
