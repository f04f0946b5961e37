package entities

import "time"

// TractRecord is one parcel-level row owned by a stakeholder.
type TractRecord struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	StakeholderID  uint      `gorm:"not null;index" json:"stakeholderId"`
	Tract          int       `gorm:"index" json:"tract"`
	Position       *string   `json:"position,omitempty"`
	Pin            string    `gorm:"index" json:"pin"`
	Interest       *string   `json:"interest,omitempty"`
	Structure      bool      `json:"structure"`
	Occupants      int       `json:"occupants"`
	WorksLand      bool      `json:"worksLand"`
	TractComments  string    `json:"tractComments"`
	PipelineStatus string    `json:"pipelineStatus"`
	Commodity      string    `json:"commodity"`
	PageNumber     int       `json:"pageNumber"`
	Keepdelete     bool      `gorm:"column:keepdelete" json:"keepdelete"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
