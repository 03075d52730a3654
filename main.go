// @title EcoTrack 后端 API
// @version 1.0
// @description EcoTrack 大学生碳足迹追踪平台的后端服务。

// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"os"

	"ecotrack_backend/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
