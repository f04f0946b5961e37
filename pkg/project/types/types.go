package types

// ProjectInput is the payload of the createProject mutation.
type ProjectInput struct {
	Name           string             `json:"name"`
	Notes          string             `json:"notes"`
	SurveyLink     string             `json:"surveyLink"`
	ProjectRecords []RawProjectRecord `json:"projectRecords"`
}

// RawProjectRecord is one flat row as land agents keep them: stakeholder
// columns repeated for every tract the stakeholder holds.
type RawProjectRecord struct {
	Name                string `json:"name"`
	StreetAddress       string `json:"streetAddress"`
	MailingAddress      string `json:"mailingAddress"`
	PhoneNumber         string `json:"phoneNumber"`
	Email               string `json:"email"`
	IsPerson            bool   `json:"isPerson"`
	StakeholderComments string `json:"stakeholderComments"`
	StakeholderStatus   string `json:"stakeholderStatus"`
	Contacted           bool   `json:"contacted"`
	Consultation        bool   `json:"consultation"`
	Attempts            int    `json:"attempts"`
	FollowUp            bool   `json:"followUp"`

	Tract          int     `json:"tract"`
	Position       *string `json:"position"`
	Pin            string  `json:"pin"`
	Interest       *string `json:"interest"`
	Structure      bool    `json:"structure"`
	Occupants      int     `json:"occupants"`
	WorksLand      bool    `json:"worksLand"`
	TractComments  string  `json:"tractComments"`
	PipelineStatus string  `json:"pipelineStatus"`
	Commodity      string  `json:"commodity"`
	PageNumber     int     `json:"pageNumber"`
	Keepdelete     bool    `json:"keepdelete"`
}

// HasTract reports whether the row carries tract columns at all.
func (r RawProjectRecord) HasTract() bool {
	return r.Tract != 0 || r.Pin != ""
}

// StakeholderInput is one converted stakeholder with its tracts.
type StakeholderInput struct {
	Name                string             `json:"name"`
	StreetAddress       string             `json:"streetAddress"`
	MailingAddress      string             `json:"mailingAddress"`
	PhoneNumber         string             `json:"phoneNumber"`
	Email               string             `json:"email"`
	Interest            *string            `json:"interest"`
	IsPerson            bool               `json:"isPerson"`
	StakeholderComments string             `json:"stakeholderComments"`
	StakeholderStatus   string             `json:"stakeholderStatus"`
	Contacted           bool               `json:"contacted"`
	Consultation        bool               `json:"consultation"`
	Attempts            int                `json:"attempts"`
	FollowUp            bool               `json:"followUp"`
	TractRecords        []TractRecordInput `json:"tractRecords"`
}

type TractRecordInput struct {
	Tract          int     `json:"tract"`
	Position       *string `json:"position"`
	Pin            string  `json:"pin"`
	Interest       *string `json:"interest"`
	Structure      bool    `json:"structure"`
	Occupants      int     `json:"occupants"`
	WorksLand      bool    `json:"worksLand"`
	TractComments  string  `json:"tractComments"`
	PipelineStatus string  `json:"pipelineStatus"`
	Commodity      string  `json:"commodity"`
	PageNumber     int     `json:"pageNumber"`
	Keepdelete     bool    `json:"keepdelete"`
}

// RecordConverter groups flat records into stakeholders. Implementations must be pure.
type RecordConverter func(records []RawProjectRecord) []StakeholderInput
