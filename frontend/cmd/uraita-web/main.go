package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/uraita-dev/uraita/frontend/internal/router"
	"github.com/uraita-dev/uraita/frontend/internal/setup"
	"github.com/uraita-dev/uraita/shared/config"
	"github.com/uraita-dev/uraita/shared/logger"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps := setup.SetupDependencies(cfg)
	r := router.New(deps)

	server := &http.Server{
		Addr:         cfg.Public.WebAddr,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logger.Log.Info("web server started", "addr", cfg.Public.WebAddr)
	if err := server.ListenAndServe(); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
