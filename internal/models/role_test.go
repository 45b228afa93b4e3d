package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"tourist", "police", "tourism_officer"} {
		role, err := ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, Role(s), role)
	}

	_, err := ParseRole("admin")
	assert.ErrorContains(t, err, `unknown role "admin"`)
}

func TestRole_IsPrivileged(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{role: RoleTourist, want: false},
		{role: RolePolice, want: true},
		{role: RoleTourismOfficer, want: true},
		{role: Role("admin"), want: false},
		{role: Role(""), want: false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.IsPrivileged())
		})
	}
}
