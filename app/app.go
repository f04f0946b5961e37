// Package app wires repositories and services over one store handle.
// Both the HTTP server and the CLI build on it.
package app

import (
	"gorm.io/gorm"

	"rowtrack/config"
	"rowtrack/database"
	"rowtrack/pkg/logger"

	deliveryRepoImp "rowtrack/pkg/delivery/repositoryImp"
	deliverySvc "rowtrack/pkg/delivery/service"
	deliverySvcImp "rowtrack/pkg/delivery/serviceImp"

	projectConverter "rowtrack/pkg/project/converter"
	projectRepoImp "rowtrack/pkg/project/repositoryImp"
	projectSvc "rowtrack/pkg/project/service"
	projectSvcImp "rowtrack/pkg/project/serviceImp"

	stakeholderRepoImp "rowtrack/pkg/stakeholder/repositoryImp"
	stakeholderSvc "rowtrack/pkg/stakeholder/service"
	stakeholderSvcImp "rowtrack/pkg/stakeholder/serviceImp"

	tractRepoImp "rowtrack/pkg/tract/repositoryImp"
)

type App struct {
	DB  *gorm.DB
	Log *logger.Logger

	Projects     projectSvc.ProjectService
	Stakeholders stakeholderSvc.StakeholderService
	Deliveries   deliverySvc.Service
}

// Open connects to the configured store, migrates it and builds the services.
func Open(cfg config.AppConfig, log *logger.Logger) (*App, error) {
	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return New(db, log), nil
}

func New(db *gorm.DB, log *logger.Logger) *App {
	projectRepo := projectRepoImp.New(db, log)
	stakeholderRepo := stakeholderRepoImp.New(db, log)
	tractRepo := tractRepoImp.New(db, log)
	deliveryRepo := deliveryRepoImp.New(db, log)
	packageRepo := deliveryRepoImp.NewPackageRepo(db)

	return &App{
		DB:           db,
		Log:          log,
		Projects:     projectSvcImp.NewProjectService(db, log, projectRepo, stakeholderRepo, tractRepo, projectConverter.Convert),
		Stakeholders: stakeholderSvcImp.NewStakeholderService(db, log, stakeholderRepo),
		Deliveries:   deliverySvcImp.New(db, log, deliveryRepo, packageRepo, stakeholderRepo),
	}
}

func (a *App) Close() error {
	return database.Close(a.DB)
}
