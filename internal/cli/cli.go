package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/thenoetrevino/phonebook/internal/app"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	logFile  io.Closer
	borrowed bool
}

// NewCLI loads configuration, starts file logging and builds the application
func NewCLI(ctx context.Context, configPath string) (*CLI, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, logFile, err := logging.Init(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	styles.Init(cfg.ColorScheme)

	provider := database.NewProvider(cfg.Database, logger)
	logger.Debug("cli initialized", "target", cfg.Database.Redacted())

	return &CLI{
		App:     app.New(provider, app.WithLogger(logger)),
		Config:  cfg,
		logFile: logFile,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	if err := c.App.Close(); err != nil {
		return err
	}
	if c.logFile != nil {
		return c.logFile.Close()
	}
	return nil
}
