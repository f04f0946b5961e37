package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"rowtrack/entities"
	"rowtrack/pkg/logger"
	"rowtrack/pkg/stakeholder/repository"
)

type stakeholderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, baseLog *logger.Logger) repository.StakeholderRepository {
	return &stakeholderRepo{db: db, log: baseLog.With("repo", "StakeholderRepo")}
}

func (r *stakeholderRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *stakeholderRepo) Create(ctx context.Context, tx *gorm.DB, s *entities.Stakeholder) error {
	return r.conn(ctx, tx).Create(s).Error
}

func (r *stakeholderRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Stakeholder, error) {
	var out entities.Stakeholder
	err := r.conn(ctx, tx).
		Preload("TractRecords", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Package").
		First(&out, id).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *stakeholderRepo) Update(ctx context.Context, tx *gorm.DB, id uint, cols map[string]any) error {
	if len(cols) == 0 {
		return nil
	}
	res := r.conn(ctx, tx).Model(&entities.Stakeholder{ID: id}).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *stakeholderRepo) AttachPackage(ctx context.Context, tx *gorm.DB, s *entities.Stakeholder, pkg *entities.Package) error {
	if err := r.conn(ctx, tx).Model(s).Association("Package").Replace(pkg); err != nil {
		r.log.Error("attach package failed", "stakeholder_id", s.ID, "package_id", pkg.ID, "error", err)
		return err
	}
	return nil
}
