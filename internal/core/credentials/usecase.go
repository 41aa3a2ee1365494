package credentials

import (
	"context"
	"fmt"
	"strings"

	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

// Source tells where a resolved key came from
type Source string

const (
	SourceConfigured Source = "configured"
	SourceStored     Source = "stored"
	SourceDefault    Source = "default"
)

// UseCase resolves the weather API key. An explicitly configured key wins,
// then the stored one; on first start the default key is stored and used.
type UseCase struct {
	store         ports.CredentialStore
	configuredKey string
	defaultKey    string
	logger        ports.Logger
}

type UseCaseDependencies struct {
	Store         ports.CredentialStore
	ConfiguredKey string
	DefaultKey    string
	Logger        ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("credential store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		store:         deps.Store,
		configuredKey: strings.TrimSpace(deps.ConfiguredKey),
		defaultKey:    strings.TrimSpace(deps.DefaultKey),
		logger:        deps.Logger,
	}, nil
}

// ResolveAPIKey returns the key to use and where it came from
func (uc *UseCase) ResolveAPIKey(ctx context.Context) (string, Source, error) {
	if uc.configuredKey != "" {
		return uc.configuredKey, SourceConfigured, nil
	}

	stored, err := uc.store.GetAPIKey(ctx)
	switch {
	case err == nil && strings.TrimSpace(stored) != "":
		return stored, SourceStored, nil
	case err != nil && !errors.IsNotFoundError(err):
		return "", "", fmt.Errorf("read stored API key: %w", err)
	}

	if uc.defaultKey == "" {
		return "", "", errors.NewConfigurationError(
			"no OpenWeatherMap API key: set OPENWEATHERMAP_API_KEY or OPENWEATHERMAP_DEFAULT_API_KEY", nil)
	}

	if err := uc.store.SaveAPIKey(ctx, uc.defaultKey); err != nil {
		return "", "", fmt.Errorf("store default API key: %w", err)
	}
	uc.logger.Info("Stored default API key")
	return uc.defaultKey, SourceDefault, nil
}

// UpdateAPIKey replaces the stored key
func (uc *UseCase) UpdateAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.NewValidationError("API key cannot be empty")
	}
	if err := uc.store.SaveAPIKey(ctx, key); err != nil {
		return fmt.Errorf("update API key: %w", err)
	}
	uc.logger.Info("API key updated")
	return nil
}
