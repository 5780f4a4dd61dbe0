package game

import (
	"fmt"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// Game input errors
var (
	ErrEmptyUsername = fmt.Errorf("%w: username cannot be empty", models.ErrValidation)
	ErrInvalidScore  = fmt.Errorf("%w: score must be a whole number", models.ErrValidation)
	ErrInvalidLevel  = fmt.Errorf("%w: level must be a whole number", models.ErrValidation)
	ErrInvalidUserID = fmt.Errorf("%w: invalid user ID", models.ErrValidation)
)
