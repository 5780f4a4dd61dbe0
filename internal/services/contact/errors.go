package contact

import (
	"fmt"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// Import errors
var (
	ErrOpenSource = fmt.Errorf("%w: cannot open import source", models.ErrIO)
	ErrReadSource = fmt.Errorf("%w: cannot read import source", models.ErrIO)
)
