package ports

import "context"

// CityStore persists the ordered list of tracked cities
type CityStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, cities []string) error
}

// CredentialStore persists the weather API key.
// GetAPIKey returns a not-found error when nothing is stored.
type CredentialStore interface {
	GetAPIKey(ctx context.Context) (string, error)
	SaveAPIKey(ctx context.Context, key string) error
}
