// Package main is the entry point for the cloudview point cloud viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/app"
	"github.com/Faultbox/cloudview/internal/config"
	"github.com/Faultbox/cloudview/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config save error: %v\n", err)
			return 1
		}
		fmt.Printf("Config written to %s\n", config.UserConfigPath())
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== cloudview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return 1
	}
	defer a.Close()

	a.Run()

	logger.Info("viewer closed normally")
	return 0
}
