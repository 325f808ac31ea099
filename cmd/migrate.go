package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shenikar/cad_state_system/internal/config"
	"github.com/shenikar/cad_state_system/pkg/logger"
	"github.com/shenikar/cad_state_system/pkg/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up [steps]",
	Short: "Apply all or the given number of pending migrations",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := parseSteps(args, 0)
		if err != nil {
			return err
		}
		return runMigrate(steps)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back the given number of migrations (one by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := parseSteps(args, 1)
		if err != nil {
			return err
		}
		return runMigrate(-steps)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

func parseSteps(args []string, defaultSteps int) (int, error) {
	if len(args) == 0 {
		return defaultSteps, nil
	}
	steps, err := strconv.Atoi(args[0])
	if err != nil || steps <= 0 {
		return 0, fmt.Errorf("steps must be a positive number, got %q", args[0])
	}
	return steps, nil
}

func runMigrate(steps int) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(cfg.LogLevel, cfg.ServiceName)

	return postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, steps, log)
}
