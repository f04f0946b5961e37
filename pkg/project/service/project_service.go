package service

import (
	"context"

	"rowtrack/entities"
	"rowtrack/pkg/project/types"
)

const (
	MsgNoProjectRecord = "No Project Record received"
	MsgProjectCreated  = "Project Record created successfully"
)

type ProjectService interface {
	// CreateProject persists the project, its stakeholders and their tract
	// records in one transaction. A nil input is not an error.
	CreateProject(ctx context.Context, input *types.ProjectInput) (string, error)
	GetProject(ctx context.Context, id uint) (*entities.Project, error)
}
