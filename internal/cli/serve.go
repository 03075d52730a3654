package cli

import (
	"fmt"

	"ecotrack_backend/internal/app"

	"github.com/spf13/cobra"
)

func newServeCmd(configDir *string) *cobra.Command {
	var forceMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(*configDir, forceMigrate)
		},
	}
	cmd.Flags().BoolVar(&forceMigrate, "migrate", false, "run database migrations on startup even in release mode")
	return cmd
}

func runServe(configDir string, forceMigrate bool) error {
	cfg, configFile, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ForceMigrate = forceMigrate

	application, err := app.NewApp(cfg, configFile)
	if err != nil {
		return err
	}
	return application.Run()
}
