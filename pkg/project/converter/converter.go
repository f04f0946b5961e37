// Package converter groups flat project records into stakeholders with
// their tract records.
package converter

import (
	"strings"

	"rowtrack/pkg/project/types"
)

// Convert groups records by stakeholder identity (name + mailing address,
// trimmed and case-folded). Groups keep first-appearance order and tracts
// keep input order. Stakeholder columns come from the first record of a
// group; later records only fill columns that are still empty.
func Convert(records []types.RawProjectRecord) []types.StakeholderInput {
	out := make([]types.StakeholderInput, 0)
	index := make(map[string]int)

	for _, rec := range records {
		key := identity(rec)
		i, seen := index[key]
		if !seen {
			out = append(out, stakeholderFrom(rec))
			i = len(out) - 1
			index[key] = i
		} else {
			fillMissing(&out[i], rec)
		}
		if rec.HasTract() {
			out[i].TractRecords = append(out[i].TractRecords, tractFrom(rec))
		}
	}
	return out
}

var _ types.RecordConverter = Convert

func identity(r types.RawProjectRecord) string {
	return normalize(r.Name) + "\x00" + normalize(r.MailingAddress)
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func stakeholderFrom(r types.RawProjectRecord) types.StakeholderInput {
	return types.StakeholderInput{
		Name:                strings.TrimSpace(r.Name),
		StreetAddress:       r.StreetAddress,
		MailingAddress:      r.MailingAddress,
		PhoneNumber:         r.PhoneNumber,
		Email:               r.Email,
		Interest:            copyString(r.Interest),
		IsPerson:            r.IsPerson,
		StakeholderComments: r.StakeholderComments,
		StakeholderStatus:   r.StakeholderStatus,
		Contacted:           r.Contacted,
		Consultation:        r.Consultation,
		Attempts:            r.Attempts,
		FollowUp:            r.FollowUp,
		TractRecords:        make([]types.TractRecordInput, 0, 1),
	}
}

func fillMissing(s *types.StakeholderInput, r types.RawProjectRecord) {
	if s.StreetAddress == "" {
		s.StreetAddress = r.StreetAddress
	}
	if s.PhoneNumber == "" {
		s.PhoneNumber = r.PhoneNumber
	}
	if s.Email == "" {
		s.Email = r.Email
	}
	if s.Interest == nil {
		s.Interest = copyString(r.Interest)
	}
	if s.StakeholderComments == "" {
		s.StakeholderComments = r.StakeholderComments
	}
	if s.StakeholderStatus == "" {
		s.StakeholderStatus = r.StakeholderStatus
	}
}

func tractFrom(r types.RawProjectRecord) types.TractRecordInput {
	return types.TractRecordInput{
		Tract:          r.Tract,
		Position:       copyString(r.Position),
		Pin:            r.Pin,
		Interest:       copyString(r.Interest),
		Structure:      r.Structure,
		Occupants:      r.Occupants,
		WorksLand:      r.WorksLand,
		TractComments:  r.TractComments,
		PipelineStatus: r.PipelineStatus,
		Commodity:      r.Commodity,
		PageNumber:     r.PageNumber,
		Keepdelete:     r.Keepdelete,
	}
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
