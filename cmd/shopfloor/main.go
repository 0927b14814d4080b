package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/shopfloor/internal/cli"
	"github.com/alexanderramin/shopfloor/internal/config"
	"github.com/alexanderramin/shopfloor/internal/db"
	"github.com/alexanderramin/shopfloor/internal/logging"
	"github.com/alexanderramin/shopfloor/internal/repository"
	"github.com/alexanderramin/shopfloor/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logs := logging.Open(logging.Options{File: cfg.LogFile, Stderr: cfg.LogStderr})
	defer logs.Close()
	observer := service.NewSlogUseCaseObserver(logs.Logger())

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	ticketRepo := repository.NewSQLiteTicketRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Projects:  service.NewProjectService(projectRepo, uow, cfg.DefaultWarningDays, observer),
		Tasks:     service.NewTaskService(taskRepo, uow, observer),
		Dashboard: service.NewDashboardService(projectRepo, taskRepo, activityRepo, observer),
		Support:   service.NewSupportService(ticketRepo, uow, observer),
		Guide:     service.NewGuideService(),
		Snapshot:  service.NewSnapshotService(projectRepo, taskRepo, uow, observer),

		Actor:              cfg.Actor,
		DefaultWarningDays: cfg.DefaultWarningDays,
		ListenAddr:         cfg.ListenAddr,
		CORSOrigins:        cfg.CORSOrigins,
		AccessLog:          logs.Writer,
	}

	// Forms and the board need a terminal on both ends.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	return cli.NewRootCmd(app).Execute()
}
