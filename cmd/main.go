package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "github.com/shenikar/cad_state_system/docs"
)

// @title CAD State Service API
// @version 1.0
// @description CAD state synchronization and callsign status management API.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

var rootCmd = &cobra.Command{
	Use:   "cadstate",
	Short: "CAD state synchronization and callsign status service",
	Long: `cadstate keeps an in-memory view of CAD incidents, resources, officers,
patrols and broadcasts in sync with the CAD API and manages book on,
book off and status changes of the duty callsign.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("Error executing command: %v", err)
	}
}
