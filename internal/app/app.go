package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rubytogether/time-card/internal/config"
	"github.com/rubytogether/time-card/internal/db"
	"github.com/rubytogether/time-card/internal/notify"
	"github.com/rubytogether/time-card/internal/repository"
	"github.com/rubytogether/time-card/internal/service"
)

type App struct {
	Cfg           *config.Config
	DB            *sqlx.DB
	EntryService  *service.EntryService
	WorkerService *service.WorkerService
	ReportService *service.ReportService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	workerRepository := repository.NewWorkerRepository(database)
	entryRepository := repository.NewEntryRepository(database)

	// Optional Slack notifications for new entries
	var notifier notify.Notifier
	if cfg.SlackWebhookURL != "" {
		notifier = notify.NewSlack(cfg.SlackWebhookURL)
	}

	// Services
	entryService := service.NewEntryService(entryRepository, workerRepository, notifier)
	workerService := service.NewWorkerService(workerRepository, entryRepository)
	reportService := service.NewReportService(entryRepository, workerRepository)

	return &App{
		Cfg:           cfg,
		DB:            database,
		EntryService:  entryService,
		WorkerService: workerService,
		ReportService: reportService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
