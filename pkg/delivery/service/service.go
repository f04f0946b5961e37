package service

import (
	"context"
	"time"

	"rowtrack/entities"
)

type Service interface {
	// CreateDeliveryAndPackage records a delivery and the package sent to
	// the stakeholder named by the first package descriptor.
	CreateDeliveryAndPackage(ctx context.Context, in DeliveryInput) (*entities.Delivery, error)
	GetDelivery(ctx context.Context, id uint) (*entities.Delivery, error)
	ListByProject(ctx context.Context, projectID uint, from, to *time.Time) ([]entities.Delivery, error)
	UpdatePartial(ctx context.Context, id uint, patch DeliveryPatch) (*entities.Delivery, error)
}

type DeliveryInput struct {
	Date      string         `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string         `json:"status" validate:"omitempty,oneof=PLANNED SENT DELIVERED RETURNED"`
	ProjectID uint           `json:"projectId" validate:"required"`
	Packages  []PackageInput `json:"packages" validate:"min=1,dive"`
}

type PackageInput struct {
	StakeholderID uint `json:"stakeholderId" validate:"required"`
}

type DeliveryPatch struct {
	Status *string `json:"status" validate:"omitempty,oneof=PLANNED SENT DELIVERED RETURNED"`
	Date   *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
