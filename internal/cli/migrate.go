package cli

import (
	"context"
	"fmt"

	"ecotrack_backend/internal/app"

	"github.com/spf13/cobra"
)

func newMigrateCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables and seed default challenges, then exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, configFile, err := loadConfig(*configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg.ForceMigrate = true
			cfg.MigrateOnly = true

			application, err := app.NewApp(cfg, configFile)
			if err != nil {
				return err
			}
			application.Close(context.Background())

			cmd.Println("数据库迁移完成")
			return nil
		},
	}
}
