package entities

import "time"

type StakeholderStatus string

const (
	StakeholderNotContacted StakeholderStatus = "NOT_CONTACTED"
	StakeholderContacted    StakeholderStatus = "CONTACTED"
	StakeholderInProgress   StakeholderStatus = "IN_PROGRESS"
	StakeholderFollowUp     StakeholderStatus = "FOLLOW_UP"
	StakeholderComplete     StakeholderStatus = "COMPLETE"
)

// Stakeholder is a person or organisation holding an interest in one or more
// tracts of a project. It holds at most one delivered package at a time.
type Stakeholder struct {
	ID                  uint              `gorm:"primaryKey" json:"id"`
	ProjectID           uint              `gorm:"not null;index" json:"projectId"`
	Name                string            `gorm:"index" json:"name"`
	StreetAddress       string            `json:"streetAddress"`
	MailingAddress      string            `json:"mailingAddress"`
	PhoneNumber         string            `json:"phoneNumber"`
	Email               string            `json:"email"`
	Interest            *string           `json:"interest,omitempty"`
	IsPerson            bool              `json:"isPerson"`
	StakeholderComments string            `json:"stakeholderComments"`
	StakeholderStatus   StakeholderStatus `gorm:"default:NOT_CONTACTED" json:"stakeholderStatus"`
	Contacted           bool              `json:"contacted"`
	Consultation        bool              `json:"consultation"`
	Attempts            int               `json:"attempts"`
	FollowUp            bool              `json:"followUp"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`

	TractRecords []TractRecord `gorm:"foreignKey:StakeholderID;constraint:OnDelete:CASCADE" json:"tractRecords,omitempty"`
	Package      *Package      `gorm:"foreignKey:StakeholderID;constraint:OnDelete:SET NULL" json:"package,omitempty"`
}
