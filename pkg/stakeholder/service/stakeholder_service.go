package service

import (
	"context"
	"encoding/json"

	"rowtrack/entities"
)

type StakeholderService interface {
	UpdateStakeholder(ctx context.Context, id uint, patch StakeholderPatch) (*entities.Stakeholder, error)
	GetStakeholder(ctx context.Context, id uint) (*entities.Stakeholder, error)
}

// StakeholderPatch carries only the fields to change; nil means unchanged.
// Interest is nullable in the store, so an explicit null clears it.
type StakeholderPatch struct {
	Name                *string        `json:"name"`
	StreetAddress       *string        `json:"streetAddress"`
	MailingAddress      *string        `json:"mailingAddress"`
	PhoneNumber         *string        `json:"phoneNumber"`
	Email               *string        `json:"email"`
	Interest            NullableString `json:"interest"`
	IsPerson            *bool          `json:"isPerson"`
	StakeholderComments *string        `json:"stakeholderComments"`
	StakeholderStatus   *string        `json:"stakeholderStatus"`
	Contacted           *bool          `json:"contacted"`
	Consultation        *bool          `json:"consultation"`
	Attempts            *int           `json:"attempts"`
	FollowUp            *bool          `json:"followUp"`
}

// Columns maps the provided fields to column names for a gorm map update.
func (p StakeholderPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.StreetAddress != nil {
		cols["street_address"] = *p.StreetAddress
	}
	if p.MailingAddress != nil {
		cols["mailing_address"] = *p.MailingAddress
	}
	if p.PhoneNumber != nil {
		cols["phone_number"] = *p.PhoneNumber
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.Interest.Set {
		cols["interest"] = p.Interest.Value
	}
	if p.IsPerson != nil {
		cols["is_person"] = *p.IsPerson
	}
	if p.StakeholderComments != nil {
		cols["stakeholder_comments"] = *p.StakeholderComments
	}
	if p.StakeholderStatus != nil {
		cols["stakeholder_status"] = *p.StakeholderStatus
	}
	if p.Contacted != nil {
		cols["contacted"] = *p.Contacted
	}
	if p.Consultation != nil {
		cols["consultation"] = *p.Consultation
	}
	if p.Attempts != nil {
		cols["attempts"] = *p.Attempts
	}
	if p.FollowUp != nil {
		cols["follow_up"] = *p.FollowUp
	}
	return cols
}

// NullableString tells an absent key apart from an explicit null.
// Set is true whenever the key was present; a nil Value then clears the column.
type NullableString struct {
	Set   bool
	Value *string
}

// SetString returns a NullableString holding v.
func SetString(v string) NullableString { return NullableString{Set: true, Value: &v} }

// Null returns a NullableString that clears the column.
func Null() NullableString { return NullableString{Set: true} }

func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}
