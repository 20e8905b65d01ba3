package account

import "errors"

var ErrInvalidRole = errors.New("invalid account role")

// Role is fixed at signup and never changes.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleEmployer Role = "employer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleEmployer:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
