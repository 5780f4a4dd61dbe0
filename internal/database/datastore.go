package database

// DataStore defines the unified interface for all data operations needed by
// the services. It is composed of smaller, domain-specific interfaces so
// consumers can depend on just ContactRepository or GameRepository.
type DataStore interface {
	ContactRepository
	GameRepository
}
