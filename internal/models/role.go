package models

import "fmt"

// Role - закрытый набор ролей, которые приходят от шлюза идентификации
type Role string

const (
	RoleTourist        Role = "tourist"
	RolePolice         Role = "police"
	RoleTourismOfficer Role = "tourism_officer"
)

// ParseRole преобразует строку в Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleTourist:
		return RoleTourist, nil
	case RolePolice:
		return RolePolice, nil
	case RoleTourismOfficer:
		return RoleTourismOfficer, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// IsPrivileged сообщает, может ли роль управлять тревогами и зонами
func (r Role) IsPrivileged() bool {
	switch r {
	case RoleTourist:
		return false
	case RolePolice, RoleTourismOfficer:
		return true
	}
	return false
}

// Principal - уже аутентифицированный субъект запроса
type Principal struct {
	TouristID string
	Role      Role
}
