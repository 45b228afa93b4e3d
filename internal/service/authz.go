package service

import (
	"fmt"

	"github.com/shenikar/tourist_safety/internal/models"
)

func requireTourist(p models.Principal) error {
	switch p.Role {
	case models.RoleTourist:
		if p.TouristID == "" {
			return fmt.Errorf("%w: tourist identity is missing", ErrForbidden)
		}
		return nil
	case models.RolePolice, models.RoleTourismOfficer:
		return fmt.Errorf("%w: role %s cannot act as a tourist", ErrForbidden, p.Role)
	}
	return fmt.Errorf("%w: unknown role %q", ErrForbidden, p.Role)
}

func requirePrivileged(p models.Principal) error {
	if p.Role.IsPrivileged() {
		return nil
	}
	if _, err := models.ParseRole(string(p.Role)); err != nil {
		return fmt.Errorf("%w: %v", ErrForbidden, err)
	}
	return fmt.Errorf("%w: role %s is not privileged", ErrForbidden, p.Role)
}

// canViewTourist разрешает туристу доступ только к своим данным
func canViewTourist(p models.Principal, touristID string) error {
	switch p.Role {
	case models.RolePolice, models.RoleTourismOfficer:
		return nil
	case models.RoleTourist:
		if p.TouristID != "" && p.TouristID == touristID {
			return nil
		}
		return fmt.Errorf("%w: tourist may only access own data", ErrForbidden)
	}
	return fmt.Errorf("%w: unknown role %q", ErrForbidden, p.Role)
}
