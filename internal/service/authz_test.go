package service

import (
	"testing"

	"github.com/shenikar/tourist_safety/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRequirePrivileged(t *testing.T) {
	tests := []struct {
		name    string
		role    models.Role
		wantErr string
	}{
		{name: "police", role: models.RolePolice},
		{name: "tourism officer", role: models.RoleTourismOfficer},
		{name: "tourist", role: models.RoleTourist, wantErr: "forbidden: role tourist is not privileged"},
		{name: "unknown", role: models.Role("admin"), wantErr: `forbidden: unknown role "admin"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requirePrivileged(models.Principal{TouristID: "tourist-1", Role: tt.role})

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrForbidden)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
