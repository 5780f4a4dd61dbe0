package app

import (
	"log/slog"

	"github.com/thenoetrevino/phonebook/internal/database"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
	gameservice "github.com/thenoetrevino/phonebook/internal/services/game"
)

// App holds all application services and provides dependency injection.
// The two services are peers; neither calls the other.
type App struct {
	provider *database.Provider
	logger   *slog.Logger

	ContactService contactservice.Service
	GameService    gameservice.Service
}

// New creates a new App with all services initialized.
func New(provider *database.Provider, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(provider)

	return &App{
		provider:       provider,
		logger:         cfg.logger,
		ContactService: contactservice.NewService(repo, cfg.logger),
		GameService:    gameservice.NewService(repo, cfg.logger),
	}
}

// Provider returns the connection provider, used by schema provisioning
func (a *App) Provider() *database.Provider {
	return a.provider
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close performs cleanup of application resources.
// Connections are scoped to each operation, so there is nothing held open.
func (a *App) Close() error {
	return nil
}
