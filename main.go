package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logging"
	"fintrack/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log.Level)

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		logger.Fatal().Err(err).Msg("create data dir")
	}
	if err := ensureDir(cfg.Upload.Dir); err != nil {
		logger.Fatal().Err(err).Msg("create upload dir")
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("init database")
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}

	// setup router
	r := router.SetupRouter(cfg, db, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server listening")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("run server")
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
