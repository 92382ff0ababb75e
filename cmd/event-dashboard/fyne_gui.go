//go:build gui
// +build gui

package main

import (
	"go.uber.org/zap"

	"github.com/shop-analytics/event-dashboard/internal/config"
	"github.com/shop-analytics/event-dashboard/internal/gui"
)

// createGUIApp creates and runs the Fyne dashboard. Blocks until the window
// is closed.
func createGUIApp(logger *zap.Logger, cfg *config.Config, initFile string) error {
	guiApp := gui.NewApplication(logger, cfg, initFile)
	return guiApp.Run()
}
