//go:build !gui
// +build !gui

package main

import (
	"errors"

	"go.uber.org/zap"

	"github.com/shop-analytics/event-dashboard/internal/config"
)

// createGUIApp is a stub when GUI support is not compiled in.
func createGUIApp(logger *zap.Logger, cfg *config.Config, initFile string) error {
	return errors.New("GUI support is not enabled in this build; use -nogui or build with -tags gui")
}
