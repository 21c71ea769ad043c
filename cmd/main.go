package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/gymtrack/internal/i18n"
	"github.com/desertthunder/gymtrack/internal/repositories"
	"github.com/desertthunder/gymtrack/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}
	if level, err := log.ParseLevel(config.App.LogLevel); err == nil {
		shared.SetLogLevel(logger, level)
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := repositories.Setup(db, logger); err != nil {
		logger.Fatalf("failed to initialize storage: %v", err)
	}

	store := repositories.NewRecordStore(db)
	translator, err := i18n.NewTranslator(config.App.Language)
	if err != nil {
		logger.Fatalf("failed to load translations: %v", err)
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		Customers:  repositories.NewCustomerRepository(store, logger),
		Machines:   repositories.NewMachineRepository(store, logger),
		Workouts:   repositories.NewWorkoutRepository(store),
		Translator: translator,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "gymtrack",
		Usage:    "Track customers, machines, and workout sessions",
		Version:  "1.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
