package entities

import "time"

type DeliveryStatus string

const (
	DeliveryPlanned   DeliveryStatus = "PLANNED"
	DeliverySent      DeliveryStatus = "SENT"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryReturned  DeliveryStatus = "RETURNED"
)

// Delivery is one mail-out event for a project. ProjectID is not a foreign
// key: deliveries may be recorded before the project row is imported.
type Delivery struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProjectID uint           `gorm:"index" json:"projectId"`
	Date      string         `gorm:"index" json:"date"` // YYYY-MM-DD
	Status    DeliveryStatus `gorm:"index" json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`

	Packages []Package `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE" json:"packages,omitempty"`
}
