package city

import (
	"context"
	"fmt"
	"sync"

	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

// UseCase owns the tracked city list and keeps it in sync with the store
type UseCase struct {
	mu       sync.RWMutex
	registry *Registry
	store    ports.CityStore
	logger   ports.Logger
}

type UseCaseDependencies struct {
	Store  ports.CityStore
	Logger ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("city store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		registry: NewRegistry(),
		store:    deps.Store,
		logger:   deps.Logger,
	}, nil
}

// Load replaces the in-memory list with the persisted one
func (uc *UseCase) Load(ctx context.Context) error {
	names, err := uc.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load cities: %w", err)
	}

	registry := NewRegistry(names...)

	uc.mu.Lock()
	uc.registry = registry
	uc.mu.Unlock()

	uc.logger.Info("Cities loaded", ports.F("count", registry.Len()))
	return nil
}

// Add tracks a new city and persists the list. It returns the stored name.
func (uc *UseCase) Add(ctx context.Context, name string) (string, error) {
	name = Normalize(name)
	if name == "" {
		return "", errors.NewValidationError("city name cannot be empty")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.registry.Add(name) {
		return "", errors.NewAlreadyExistsError(fmt.Sprintf("city %q is already tracked", name))
	}

	if err := uc.store.Save(ctx, uc.registry.List()); err != nil {
		uc.registry.Remove(name)
		return "", fmt.Errorf("add city %s: %w", name, err)
	}

	uc.logger.Info("City added", ports.F("city", name), ports.F("count", uc.registry.Len()))
	return name, nil
}

// Remove stops tracking a city and persists the list. It returns the name as
// it was stored.
func (uc *UseCase) Remove(ctx context.Context, name string) (string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	stored, ok := uc.registry.Find(name)
	if !ok {
		return "", errors.NewNotFoundError(fmt.Sprintf("city %q is not tracked", Normalize(name)))
	}

	previous := uc.registry.List()
	uc.registry.Remove(stored)
	if err := uc.store.Save(ctx, uc.registry.List()); err != nil {
		uc.registry = NewRegistry(previous...)
		return "", fmt.Errorf("remove city %s: %w", stored, err)
	}

	uc.logger.Info("City removed", ports.F("city", stored), ports.F("count", uc.registry.Len()))
	return stored, nil
}

// List returns the tracked cities in insertion order
func (uc *UseCase) List() []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.registry.List()
}

// Find returns the stored spelling of name
func (uc *UseCase) Find(name string) (string, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.registry.Find(name)
}
