package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

// CityTracker receives the located city once permission is granted
type CityTracker interface {
	TrackLocatedCity(ctx context.Context, city string) error
}

// LocationSignal is one permission report from the device
type LocationSignal struct {
	Status string
	City   string
}

// Snapshot is the externally visible session state
type Snapshot struct {
	State      State      `json:"state"`
	Permission Permission `json:"-"`
	UserCity   string     `json:"user_city,omitempty"`
}

type UseCase struct {
	mu       sync.RWMutex
	gate     *Gate
	perm     Permission
	userCity string
	tracker  CityTracker
	logger   ports.Logger
}

type UseCaseDependencies struct {
	Tracker CityTracker
	Logger  ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Tracker == nil {
		return nil, errors.NewValidationError("city tracker is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		gate:    NewGate(),
		tracker: deps.Tracker,
		logger:  deps.Logger,
	}, nil
}

// HandleLocation applies a permission signal. When authorized with a
// non-empty city, the city becomes the user city and is handed to the tracker.
func (uc *UseCase) HandleLocation(ctx context.Context, signal LocationSignal) (Snapshot, error) {
	permission := ParsePermission(signal.Status)
	city := strings.TrimSpace(signal.City)

	uc.mu.Lock()
	previous := uc.gate.State()
	state := uc.gate.Apply(permission)
	uc.perm = permission
	if permission == PermissionAuthorized && city != "" {
		uc.userCity = city
	}
	snapshot := uc.snapshotLocked()
	uc.mu.Unlock()

	if previous != state {
		uc.logger.Info("Session state changed",
			ports.F("from", previous.String()),
			ports.F("to", state.String()),
			ports.F("status", signal.Status))
	}

	if permission != PermissionAuthorized || city == "" {
		return snapshot, nil
	}

	if err := uc.tracker.TrackLocatedCity(ctx, city); err != nil {
		uc.logger.Warn("Failed to track located city", ports.F("city", city), ports.F("error", err))
		return snapshot, fmt.Errorf("track located city %s: %w", city, err)
	}

	return snapshot, nil
}

// Snapshot returns the current session state
func (uc *UseCase) Snapshot() Snapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.snapshotLocked()
}

func (uc *UseCase) snapshotLocked() Snapshot {
	return Snapshot{
		State:      uc.gate.State(),
		Permission: uc.perm,
		UserCity:   uc.userCity,
	}
}
