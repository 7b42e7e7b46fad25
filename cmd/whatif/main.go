package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/alexanderramin/whatif/internal/cli"
	"github.com/alexanderramin/whatif/internal/db"
	"github.com/alexanderramin/whatif/internal/repository"
	"github.com/alexanderramin/whatif/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.whatif/whatif.db
	dbPath := os.Getenv("WHATIF_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".whatif", "whatif.db")
	}

	// Drop styling when stdout is not a terminal so piped output stays plain.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	snapshotRepo := repository.NewSQLiteSnapshotRepo(database)
	scenarioRepo := repository.NewSQLiteScenarioRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case telemetry goes to stderr when WHATIF_DEBUG is set.
	var observerOut io.Writer
	if os.Getenv("WHATIF_DEBUG") != "" {
		observerOut = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(observerOut)

	app := &cli.App{
		Snapshots: service.NewSnapshotService(snapshotRepo, uow, observer),
		Scenarios: service.NewScenarioService(scenarioRepo, snapshotRepo),
		Evaluate:  service.NewEvaluateService(snapshotRepo, scenarioRepo, observer),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
