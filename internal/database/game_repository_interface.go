package database

import (
	"context"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// GameUserRepository defines user identity operations.
type GameUserRepository interface {
	CreateUser(ctx context.Context, username string) (int64, error)
	GetUserID(ctx context.Context, username string) (int64, error)
	GetOrCreateUser(ctx context.Context, username string) (id int64, created bool, err error)
}

// ScoreRepository defines operations on the score ledger.
type ScoreRepository interface {
	SaveScore(ctx context.Context, entry models.ScoreEntry) error
	GetScoresByUser(ctx context.Context, userID int64) ([]models.ScoreEntry, error)
}

// GameRepository combines all game-related operations.
type GameRepository interface {
	GameUserRepository
	ScoreRepository
}
