package database

import (
	"context"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// ContactReader defines read operations for contacts.
type ContactReader interface {
	GetAllContacts(ctx context.Context) ([]models.Contact, error)
	GetContactsByName(ctx context.Context, name string) ([]models.Contact, error)
}

// ContactWriter defines write operations for contacts.
type ContactWriter interface {
	InsertContact(ctx context.Context, c models.Contact) error
	InsertContacts(ctx context.Context, contacts []models.Contact) (int, error)
	UpdateContactPhone(ctx context.Context, name, phone string) (int64, error)
	DeleteContacts(ctx context.Context, name string) (int64, error)
}

// ContactRepository combines all contact-related operations.
type ContactRepository interface {
	ContactReader
	ContactWriter
}
