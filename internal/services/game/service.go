// Package game implements the game user and score ledger
package game

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/models"
)

// Service defines all game ledger operations
type Service interface {
	// Users
	CreateUser(ctx context.Context, username string) (int64, error)
	GetOrCreateUser(ctx context.Context, username string) (id int64, created bool, err error)
	LookupUser(ctx context.Context, username string) (models.GameUser, error)

	// Scores
	SaveScore(ctx context.Context, userID int64, score, level int) error
	GetScores(ctx context.Context, userID int64) ([]models.ScoreEntry, error)
}

// service implements Service interface
type service struct {
	repo   database.GameRepository
	logger *slog.Logger
}

// NewService creates a new game service
func NewService(repo database.GameRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// CreateUser registers a new username and returns its id
func (s *service) CreateUser(ctx context.Context, username string) (int64, error) {
	if username == "" {
		return 0, ErrEmptyUsername
	}

	id, err := s.repo.CreateUser(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetOrCreateUser returns the id for username, creating the user on first
// encounter. created reports which branch was taken.
func (s *service) GetOrCreateUser(ctx context.Context, username string) (int64, bool, error) {
	if username == "" {
		return 0, false, ErrEmptyUsername
	}

	id, created, err := s.repo.GetOrCreateUser(ctx, username)
	if err != nil {
		s.logger.Error("resolve game user failed", "username", username, "error", err)
		return 0, false, fmt.Errorf("failed to resolve user: %w", err)
	}
	return id, created, nil
}

// LookupUser returns an existing user without creating one. Unknown names
// fail with models.ErrUserNotFound.
func (s *service) LookupUser(ctx context.Context, username string) (models.GameUser, error) {
	if username == "" {
		return models.GameUser{}, ErrEmptyUsername
	}

	id, err := s.repo.GetUserID(ctx, username)
	if err != nil {
		return models.GameUser{}, fmt.Errorf("failed to look up user %q: %w", username, err)
	}
	return models.GameUser{ID: id, Username: username}, nil
}

// SaveScore appends a completed session to the ledger
func (s *service) SaveScore(ctx context.Context, userID int64, score, level int) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}

	entry := models.ScoreEntry{UserID: userID, Score: score, Level: level}
	if err := s.repo.SaveScore(ctx, entry); err != nil {
		s.logger.Error("save score failed", "user_id", userID, "error", err)
		return fmt.Errorf("failed to save score: %w", err)
	}

	s.logger.Info("score saved", "user_id", userID, "score", score, "level", level)
	return nil
}

// GetScores returns the ledger rows owned by userID
func (s *service) GetScores(ctx context.Context, userID int64) ([]models.ScoreEntry, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	return s.repo.GetScoresByUser(ctx, userID)
}

// ParseScore converts console input for a session result. Surrounding
// whitespace is ignored.
func ParseScore(score, level string) (int, int, error) {
	s, err := strconv.Atoi(strings.TrimSpace(score))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidScore, score)
	}
	l, err := strconv.Atoi(strings.TrimSpace(level))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
	return s, l, nil
}
