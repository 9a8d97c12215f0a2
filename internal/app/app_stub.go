//go:build !ebiten

package app

import (
	"context"

	"github.com/charmbracelet/log"

	"hanoi/internal/config"
)

// Run reports that the window cannot be opened in this build.
func Run(context.Context, config.Source, config.Config, *Controller, *log.Logger) error {
	return ErrNoGUI
}
