package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/uraita-dev/uraita/backend/internal/router"
	"github.com/uraita-dev/uraita/backend/internal/setup"
	"github.com/uraita-dev/uraita/shared/config"
	"github.com/uraita-dev/uraita/shared/logger"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to set up dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	logger.Log.Info("api server started", "addr", cfg.Public.ApiAddr)
	if err := http.ListenAndServe(cfg.Public.ApiAddr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
