package contact

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// mockRepo is a testify mock of database.ContactRepository
type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	args := m.Called(ctx)
	contacts, _ := args.Get(0).([]models.Contact)
	return contacts, args.Error(1)
}

func (m *mockRepo) GetContactsByName(ctx context.Context, name string) ([]models.Contact, error) {
	args := m.Called(ctx, name)
	contacts, _ := args.Get(0).([]models.Contact)
	return contacts, args.Error(1)
}

func (m *mockRepo) InsertContact(ctx context.Context, c models.Contact) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepo) InsertContacts(ctx context.Context, contacts []models.Contact) (int, error) {
	args := m.Called(ctx, contacts)
	return args.Int(0), args.Error(1)
}

func (m *mockRepo) UpdateContactPhone(ctx context.Context, name, phone string) (int64, error) {
	args := m.Called(ctx, name, phone)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) DeleteContacts(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}
