package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleGuest Role = "guest"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageListings reports whether the role may create properties and rooms.
func (r Role) CanManageListings() bool {
	return r == RoleOwner || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
