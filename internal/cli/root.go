// Package cli 命令行入口：serve / migrate / calc
package cli

import (
	"path/filepath"

	"ecotrack_backend/internal/config"

	"github.com/spf13/cobra"
)

const configFileName = "config.yaml"

// NewRootCmd 不带子命令时等同于 serve
func NewRootCmd(version string) *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:           "ecotrack",
		Short:         "EcoTrack carbon footprint backend",
		Long:          "EcoTrack: daily carbon footprint logging, sustainability scores and leaderboards for university students",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(configDir, false)
		},
		Example: `  # 启动 HTTP 服务
  ecotrack serve --config configs

  # 只执行数据库迁移
  ecotrack migrate

  # 离线计算一天的碳足迹
  ecotrack calc --file activity.json`,
	}

	cmd.PersistentFlags().StringVarP(&configDir, "config", "c", "configs", "directory containing config.yaml")
	cmd.AddCommand(
		newServeCmd(&configDir),
		newMigrateCmd(&configDir),
		newCalcCmd(),
	)
	return cmd
}

func loadConfig(configDir string) (*config.Config, string, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, "", err
	}
	return cfg, filepath.Join(configDir, configFileName), nil
}
