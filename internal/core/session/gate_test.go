package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePermission(t *testing.T) {
	tests := []struct {
		raw      string
		expected Permission
	}{
		{"authorizedAlways", PermissionAuthorized},
		{"authorizedWhenInUse", PermissionAuthorized},
		{"authorized_when_in_use", PermissionAuthorized},
		{"AUTHORIZED-ALWAYS", PermissionAuthorized},
		{"notDetermined", PermissionNotAuthorized},
		{"denied", PermissionNotAuthorized},
		{"restricted", PermissionNotAuthorized},
		{"authorized", PermissionNotAuthorized},
		{"", PermissionNotAuthorized},
		{"something-new", PermissionNotAuthorized},
	}

	for _, tt := range tests {
		t.Run("raw_"+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePermission(tt.raw))
		})
	}
}

func TestGate_Transitions(t *testing.T) {
	gate := NewGate()
	assert.Equal(t, StatePermissionRequired, gate.State())

	assert.Equal(t, StateReady, gate.Apply(PermissionAuthorized))
	assert.Equal(t, StateReady, gate.Apply(PermissionAuthorized))
	assert.Equal(t, StatePermissionRequired, gate.Apply(PermissionNotAuthorized))
	assert.Equal(t, StatePermissionRequired, gate.Apply(ParsePermission("denied")))
	assert.Equal(t, StateReady, gate.Apply(ParsePermission("authorizedWhenInUse")))
}

func TestGate_ZeroValue(t *testing.T) {
	var gate Gate
	assert.Equal(t, StatePermissionRequired, gate.State())
}

func TestState_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		State State `json:"state"`
	}{State: StateReady})

	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"ready"}`, string(data))
	assert.Equal(t, "permission_required", StatePermissionRequired.String())
}
