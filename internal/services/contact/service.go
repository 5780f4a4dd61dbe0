// Package contact implements the phonebook contact directory
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/models"
)

// Service defines all contact directory operations. Every call opens and
// closes its own store connection.
type Service interface {
	// Read operations
	ListContacts(ctx context.Context) ([]models.Contact, error)
	FindByName(ctx context.Context, name string) ([]models.Contact, error)

	// Write operations
	AddContact(ctx context.Context, name, phone string) error
	ImportFile(ctx context.Context, path string) (int, error)
	UpdatePhone(ctx context.Context, name, phone string) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
}

// service implements Service interface
type service struct {
	repo   database.ContactRepository
	logger *slog.Logger
}

// NewService creates a new contact service
func NewService(repo database.ContactRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// ListContacts returns every contact in store order
func (s *service) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return s.repo.GetAllContacts(ctx)
}

// FindByName returns the contacts whose name matches exactly, possibly none
func (s *service) FindByName(ctx context.Context, name string) ([]models.Contact, error) {
	return s.repo.GetContactsByName(ctx, name)
}

// AddContact inserts a single contact
func (s *service) AddContact(ctx context.Context, name, phone string) error {
	if err := s.repo.InsertContact(ctx, models.Contact{Name: name, Phone: phone}); err != nil {
		s.logger.Error("add contact failed", "name", name, "error", err)
		return fmt.Errorf("failed to add contact: %w", err)
	}
	return nil
}

// ImportFile loads contacts from a delimited file with a header row. The file
// is parsed completely before anything is written, and all rows are inserted
// in a single transaction.
func (s *service) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Error("import source unavailable", "path", path, "error", err)
		return 0, fmt.Errorf("%w: %w", ErrOpenSource, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Error("error closing import source", "path", path, "error", err)
		}
	}()

	contacts, err := ReadContacts(f)
	if err != nil {
		s.logger.Error("import source unreadable", "path", path, "error", err)
		return 0, err
	}

	n, err := s.repo.InsertContacts(ctx, contacts)
	if err != nil {
		s.logger.Error("import failed", "path", path, "error", err)
		return 0, fmt.Errorf("failed to import contacts: %w", err)
	}

	s.logger.Info("contacts imported", "path", path, "rows", n)
	return n, nil
}

// UpdatePhone sets the phone of every contact named name and reports how many
// rows matched; zero is not an error
func (s *service) UpdatePhone(ctx context.Context, name, phone string) (int64, error) {
	n, err := s.repo.UpdateContactPhone(ctx, name, phone)
	if err != nil {
		s.logger.Error("update contact failed", "name", name, "error", err)
		return 0, fmt.Errorf("failed to update contact: %w", err)
	}
	return n, nil
}

// DeleteByName removes every contact named name and reports how many rows
// were removed; zero is not an error
func (s *service) DeleteByName(ctx context.Context, name string) (int64, error) {
	n, err := s.repo.DeleteContacts(ctx, name)
	if err != nil {
		s.logger.Error("delete contact failed", "name", name, "error", err)
		return 0, fmt.Errorf("failed to delete contact: %w", err)
	}
	return n, nil
}
