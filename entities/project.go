package entities

import "time"

// Project groups the stakeholders of one pipeline effort.
type Project struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `json:"name"`
	Notes      string    `json:"notes"`
	SurveyLink string    `json:"surveyLink"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Stakeholders []Stakeholder `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"stakeholders,omitempty"`
}
