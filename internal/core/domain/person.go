package domain

import "time"

// PersonKind distinguishes the two person resources exposed by the API.
type PersonKind string

const (
	KindClient     PersonKind = "client"
	KindTechnician PersonKind = "technician"
)

// BaseRole returns the role every person of this kind carries at minimum.
func (k PersonKind) BaseRole() Role {
	if k == KindTechnician {
		return RoleTechnician
	}
	return RoleClient
}

// Person models a client or technician account. The password hash is
// write-only from the API's perspective and never serialized outward.
type Person struct {
	ID           int
	Kind         PersonKind
	Name         string
	CPF          string
	Email        string
	PasswordHash string
	Roles        []Role
	CreatedAt    time.Time
}

// HasRole reports whether the person carries the given role.
func (p *Person) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AddRole appends role if not already present, preserving the invariant that
// the role set has no duplicates.
func (p *Person) AddRole(role Role) {
	if !p.HasRole(role) {
		p.Roles = append(p.Roles, role)
	}
}
