package domain

import "fmt"

// Role is a closed set of permission categories. Each role carries a stable
// numeric code (the wire/storage representation) and a canonical name used in
// access rules.
type Role int

const (
	RoleAdmin      Role = 0
	RoleClient     Role = 1
	RoleTechnician Role = 2
)

var roleNames = map[Role]string{
	RoleAdmin:      "ADMIN",
	RoleClient:     "CLIENT",
	RoleTechnician: "TECHNICIAN",
}

// Code returns the stable numeric code of the role.
func (r Role) Code() int { return int(r) }

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// RoleFromCode maps a numeric code back to its Role. An unknown code is an
// error, never a silent default.
func RoleFromCode(code int) (Role, error) {
	r := Role(code)
	if _, ok := roleNames[r]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRoleCode, code)
	}
	return r, nil
}

// RoleFromName maps a role name (e.g. "ADMIN") back to its Role.
func RoleFromName(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRoleCode, name)
}
