package serviceImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rowtrack/entities"
	"rowtrack/pkg/apperr"
	"rowtrack/pkg/delivery/repository"
	svc "rowtrack/pkg/delivery/service"
	"rowtrack/pkg/logger"
	stakeholderRepo "rowtrack/pkg/stakeholder/repository"
	"rowtrack/pkg/validation"
)

type service struct {
	db           *gorm.DB
	log          *logger.Logger
	deliveries   repository.DeliveryRepository
	packages     repository.PackageRepository
	stakeholders stakeholderRepo.StakeholderRepository
}

func New(
	db *gorm.DB,
	baseLog *logger.Logger,
	deliveries repository.DeliveryRepository,
	packages repository.PackageRepository,
	stakeholders stakeholderRepo.StakeholderRepository,
) svc.Service {
	return &service{
		db:           db,
		log:          baseLog.With("service", "DeliveryService"),
		deliveries:   deliveries,
		packages:     packages,
		stakeholders: stakeholders,
	}
}

func (s *service) CreateDeliveryAndPackage(ctx context.Context, in svc.DeliveryInput) (*entities.Delivery, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if extra := len(in.Packages) - 1; extra > 0 {
		s.log.Warn("ignoring extra package descriptors; one package per delivery",
			"ignored", extra,
			"project_id", in.ProjectID,
		)
	}
	target := in.Packages[0]

	var deliveryID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stakeholder, err := s.stakeholders.FindByID(ctx, tx, target.StakeholderID)
		if err != nil {
			return apperr.FromStore(err, "Stakeholder", target.StakeholderID)
		}

		d := &entities.Delivery{
			ProjectID: in.ProjectID,
			Date:      in.Date,
			Status:    entities.DeliveryStatus(in.Status),
		}
		if d.Status == "" {
			d.Status = entities.DeliveryPlanned
		}
		if err := s.deliveries.Create(ctx, tx, d); err != nil {
			return apperr.Internal(err)
		}

		pkg := &entities.Package{DeliveryID: d.ID, StakeholderID: &stakeholder.ID}
		if err := s.packages.Create(ctx, tx, pkg); err != nil {
			return apperr.Internal(err)
		}
		if err := s.deliveries.AttachPackage(ctx, tx, d, pkg); err != nil {
			return apperr.Internal(err)
		}
		if err := s.stakeholders.AttachPackage(ctx, tx, stakeholder, pkg); err != nil {
			return apperr.Internal(err)
		}
		deliveryID = d.ID
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			s.log.Error("create delivery failed",
				"project_id", in.ProjectID,
				"stakeholder_id", target.StakeholderID,
				"error", err,
			)
		}
		return nil, err
	}

	s.log.Info("delivery created", "delivery_id", deliveryID, "stakeholder_id", target.StakeholderID)
	return s.GetDelivery(ctx, deliveryID)
}

func (s *service) GetDelivery(ctx context.Context, id uint) (*entities.Delivery, error) {
	out, err := s.deliveries.FindByID(ctx, nil, id)
	if err != nil {
		return nil, apperr.FromStore(err, "Delivery", id)
	}
	return out, nil
}

func (s *service) ListByProject(ctx context.Context, projectID uint, from, to *time.Time) ([]entities.Delivery, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, apperr.Invalid("from must not be after to")
	}
	out, err := s.deliveries.ListByProject(ctx, nil, projectID, from, to)
	if err != nil {
		s.log.Error("list deliveries failed", "project_id", projectID, "error", err)
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *service) UpdatePartial(ctx context.Context, id uint, p svc.DeliveryPatch) (*entities.Delivery, error) {
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	cols := map[string]any{}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.Date != nil {
		cols["date"] = *p.Date
	}

	var out *entities.Delivery
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.deliveries.FindByID(ctx, tx, id); err != nil {
			return apperr.FromStore(err, "Delivery", id)
		}
		if err := s.deliveries.Update(ctx, tx, id, cols); err != nil {
			return apperr.FromStore(err, "Delivery", id)
		}
		cur, err := s.deliveries.FindByID(ctx, tx, id)
		if err != nil {
			return apperr.FromStore(err, "Delivery", id)
		}
		out = cur
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			s.log.Error("update delivery failed", "delivery_id", id, "error", err)
		}
		return nil, err
	}
	return out, nil
}
