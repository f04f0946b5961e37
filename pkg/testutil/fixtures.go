package testutil

import (
	"testing"

	"gorm.io/gorm"

	"rowtrack/entities"
)

func SeedProject(tb testing.TB, db *gorm.DB, name string) *entities.Project {
	tb.Helper()
	p := &entities.Project{Name: name, Notes: "seeded", SurveyLink: "https://survey.example/" + name}
	if err := db.Create(p).Error; err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}

func SeedStakeholder(tb testing.TB, db *gorm.DB, projectID uint, name string) *entities.Stakeholder {
	tb.Helper()
	s := &entities.Stakeholder{
		ProjectID:      projectID,
		Name:           name,
		StreetAddress:  "1 Section Rd",
		MailingAddress: "PO Box 12",
		PhoneNumber:    "555-0100",
		Email:          "owner@example.com",
		IsPerson:       true,
		Attempts:       1,
	}
	if err := db.Create(s).Error; err != nil {
		tb.Fatalf("seed stakeholder: %v", err)
	}
	return s
}

func SeedTractRecord(tb testing.TB, db *gorm.DB, stakeholderID uint, tract int, pin string) *entities.TractRecord {
	tb.Helper()
	tr := &entities.TractRecord{StakeholderID: stakeholderID, Tract: tract, Pin: pin, PageNumber: 1}
	if err := db.Create(tr).Error; err != nil {
		tb.Fatalf("seed tract record: %v", err)
	}
	return tr
}

func PtrString(v string) *string { return &v }

func PtrUint(v uint) *uint { return &v }

func PtrBool(v bool) *bool { return &v }

func PtrInt(v int) *int { return &v }
