package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/shop-analytics/event-dashboard/internal/config"
)

func main() {
	configPath := flag.String("config", "config.yml", "Path to configuration file")
	filePath := flag.String("file", "", "CSV event log to load (defaults to the configured file)")
	noGUI := flag.Bool("nogui", false, "Run the terminal dashboard instead of the GUI")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := createLogger(cfg.Application.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *noGUI {
		app := NewTerminalApplication(logger, cfg, *filePath)
		if err := app.Run(); err != nil {
			logger.Fatal("Dashboard failed", zap.Error(err))
		}
		return
	}

	if err := createGUIApp(logger, cfg, *filePath); err != nil {
		logger.Fatal("Dashboard failed", zap.Error(err))
	}
}

func createLogger(level string) (*zap.Logger, error) {
	var config zap.Config

	switch level {
	case "debug":
		config = zap.NewDevelopmentConfig()
	case "info":
		config = zap.NewProductionConfig()
	case "warn":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config = zap.NewProductionConfig()
	}

	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build()
}
