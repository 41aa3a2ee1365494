package session

import (
	"encoding/json"
	"strings"
)

// Permission is the location permission signal projected onto two cases
type Permission int

const (
	PermissionNotAuthorized Permission = iota
	PermissionAuthorized
)

func (p Permission) String() string {
	if p == PermissionAuthorized {
		return "authorized"
	}
	return "not_authorized"
}

// ParsePermission maps a raw platform status onto Permission. Only the two
// authorized variants ("authorizedAlways", "authorizedWhenInUse", in any case
// and with or without separators) grant access; everything else, including
// unknown values, does not.
func ParsePermission(raw string) Permission {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("_", "", "-", "", " ", "").Replace(normalized)

	switch normalized {
	case "authorizedalways", "authorizedwheninuse":
		return PermissionAuthorized
	default:
		return PermissionNotAuthorized
	}
}

// State is the session state
type State int

const (
	StatePermissionRequired State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "permission_required"
}

// MarshalJSON encodes the state by name
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Gate is a two-state machine driven by permission signals. The zero value
// starts in StatePermissionRequired.
type Gate struct {
	state State
}

// NewGate returns a gate in its initial state
func NewGate() *Gate {
	return &Gate{state: StatePermissionRequired}
}

// Apply moves the gate according to p and returns the resulting state.
// Any state may move to any state.
func (g *Gate) Apply(p Permission) State {
	if p == PermissionAuthorized {
		g.state = StateReady
	} else {
		g.state = StatePermissionRequired
	}
	return g.state
}

// State returns the current state
func (g *Gate) State() State {
	return g.state
}
