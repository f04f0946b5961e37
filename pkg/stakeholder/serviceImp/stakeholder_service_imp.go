package serviceImp

import (
	"context"

	"gorm.io/gorm"

	"rowtrack/entities"
	"rowtrack/pkg/apperr"
	"rowtrack/pkg/logger"
	"rowtrack/pkg/stakeholder/repository"
	"rowtrack/pkg/stakeholder/service"
)

type stakeholderService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repository.StakeholderRepository
}

func NewStakeholderService(db *gorm.DB, baseLog *logger.Logger, repo repository.StakeholderRepository) service.StakeholderService {
	return &stakeholderService{
		db:   db,
		log:  baseLog.With("service", "StakeholderService"),
		repo: repo,
	}
}

func (s *stakeholderService) UpdateStakeholder(ctx context.Context, id uint, patch service.StakeholderPatch) (*entities.Stakeholder, error) {
	cols := patch.Columns()

	var out *entities.Stakeholder
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(ctx, tx, id); err != nil {
			return apperr.FromStore(err, "Stakeholder", id)
		}
		if err := s.repo.Update(ctx, tx, id, cols); err != nil {
			return apperr.FromStore(err, "Stakeholder", id)
		}
		updated, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return apperr.FromStore(err, "Stakeholder", id)
		}
		out = updated
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			s.log.Error("update stakeholder failed", "stakeholder_id", id, "error", err)
		}
		return nil, err
	}
	s.log.Debug("stakeholder updated", "stakeholder_id", id, "columns", len(cols))
	return out, nil
}

func (s *stakeholderService) GetStakeholder(ctx context.Context, id uint) (*entities.Stakeholder, error) {
	out, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, apperr.FromStore(err, "Stakeholder", id)
	}
	return out, nil
}
