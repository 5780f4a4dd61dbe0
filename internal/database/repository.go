package database

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ContactRepo
	*GameRepo
}

// NewRepository creates a new Repository backed by the given connection provider.
func NewRepository(p *Provider) *Repository {
	return &Repository{
		ContactRepo: &ContactRepo{provider: p},
		GameRepo:    &GameRepo{provider: p},
	}
}

var _ DataStore = (*Repository)(nil)
