package cli

import (
	"io"
	"os"

	"blockday/internal/config"
	"blockday/internal/services"
)

// App bundles what every command handler needs: the service layer, the
// active configuration and the output stream. Tests swap the stream for
// a buffer.
type App struct {
	services *services.ServiceContainer
	config   *config.Config
	out      io.Writer
}

// NewApp creates a new application instance writing to stdout
func NewApp(container *services.ServiceContainer, cfg *config.Config) *App {
	return &App{
		services: container,
		config:   cfg,
		out:      os.Stdout,
	}
}

// NewAppWithOutput creates an application instance with a custom output stream
func NewAppWithOutput(container *services.ServiceContainer, cfg *config.Config, out io.Writer) *App {
	return &App{
		services: container,
		config:   cfg,
		out:      out,
	}
}
