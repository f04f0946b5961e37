package serviceImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rowtrack/entities"
	"rowtrack/pkg/apperr"
	"rowtrack/pkg/logger"
	projectRepo "rowtrack/pkg/project/repository"
	"rowtrack/pkg/project/service"
	"rowtrack/pkg/project/types"
	stakeholderRepo "rowtrack/pkg/stakeholder/repository"
	tractRepo "rowtrack/pkg/tract/repository"
)

type projectService struct {
	db           *gorm.DB
	log          *logger.Logger
	projects     projectRepo.ProjectRepository
	stakeholders stakeholderRepo.StakeholderRepository
	tracts       tractRepo.TractRecordRepository
	convert      types.RecordConverter
}

func NewProjectService(
	db *gorm.DB,
	baseLog *logger.Logger,
	projects projectRepo.ProjectRepository,
	stakeholders stakeholderRepo.StakeholderRepository,
	tracts tractRepo.TractRecordRepository,
	convert types.RecordConverter,
) service.ProjectService {
	return &projectService{
		db:           db,
		log:          baseLog.With("service", "ProjectService"),
		projects:     projects,
		stakeholders: stakeholders,
		tracts:       tracts,
		convert:      convert,
	}
}

// stepError tags a store failure with the write that produced it.
type stepError struct {
	step string
	err  error
}

func (e *stepError) Error() string { return fmt.Sprintf("%s: %v", e.step, e.err) }
func (e *stepError) Unwrap() error { return e.err }

func (s *projectService) CreateProject(ctx context.Context, input *types.ProjectInput) (string, error) {
	if input == nil {
		s.log.Info("createProject called without a project record")
		return service.MsgNoProjectRecord, nil
	}
	s.log.Info("creating project", "name", input.Name, "notes", input.Notes, "surveyLink", input.SurveyLink)

	var (
		projectID    uint
		stakeholders int
		tracts       int
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project := &entities.Project{
			Name:       input.Name,
			Notes:      input.Notes,
			SurveyLink: input.SurveyLink,
		}
		if err := s.projects.Create(ctx, tx, project); err != nil {
			return &stepError{step: "create project", err: err}
		}
		projectID = project.ID

		for _, group := range s.convert(input.ProjectRecords) {
			sh := stakeholderEntity(project.ID, group)
			if err := s.stakeholders.Create(ctx, tx, sh); err != nil {
				return &stepError{step: "create stakeholder " + group.Name, err: err}
			}
			rows := make([]entities.TractRecord, 0, len(group.TractRecords))
			for _, tr := range group.TractRecords {
				rows = append(rows, tractEntity(sh.ID, tr))
			}
			if err := s.tracts.BulkInsert(ctx, tx, rows); err != nil {
				return &stepError{step: "insert tract records for " + group.Name, err: err}
			}
			stakeholders++
			tracts += len(rows)
		}
		return nil
	})
	if err != nil {
		s.log.Error("create project failed", "name", input.Name, "error", err)
		return "", apperr.Internal(err)
	}

	s.log.Info("project created",
		"project_id", projectID,
		"stakeholders", stakeholders,
		"tract_records", tracts,
	)
	return service.MsgProjectCreated, nil
}

func (s *projectService) GetProject(ctx context.Context, id uint) (*entities.Project, error) {
	out, err := s.projects.FindByID(ctx, nil, id)
	if err != nil {
		return nil, apperr.FromStore(err, "Project", id)
	}
	return out, nil
}

func stakeholderEntity(projectID uint, in types.StakeholderInput) *entities.Stakeholder {
	return &entities.Stakeholder{
		ProjectID:           projectID,
		Name:                in.Name,
		StreetAddress:       in.StreetAddress,
		MailingAddress:      in.MailingAddress,
		PhoneNumber:         in.PhoneNumber,
		Email:               in.Email,
		Interest:            in.Interest,
		IsPerson:            in.IsPerson,
		StakeholderComments: in.StakeholderComments,
		StakeholderStatus:   entities.StakeholderStatus(in.StakeholderStatus),
		Contacted:           in.Contacted,
		Consultation:        in.Consultation,
		Attempts:            in.Attempts,
		FollowUp:            in.FollowUp,
	}
}

func tractEntity(stakeholderID uint, in types.TractRecordInput) entities.TractRecord {
	return entities.TractRecord{
		StakeholderID:  stakeholderID,
		Tract:          in.Tract,
		Position:       in.Position,
		Pin:            in.Pin,
		Interest:       in.Interest,
		Structure:      in.Structure,
		Occupants:      in.Occupants,
		WorksLand:      in.WorksLand,
		TractComments:  in.TractComments,
		PipelineStatus: in.PipelineStatus,
		Commodity:      in.Commodity,
		PageNumber:     in.PageNumber,
		Keepdelete:     in.Keepdelete,
	}
}
