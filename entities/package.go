package entities

import "time"

// Package links a delivery to the stakeholder it was sent to.
// StakeholderID is nullable so a stakeholder's previous package can be
// detached when a newer one is connected.
type Package struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DeliveryID    uint      `gorm:"not null;index" json:"deliveryId"`
	StakeholderID *uint     `gorm:"index" json:"stakeholderId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
