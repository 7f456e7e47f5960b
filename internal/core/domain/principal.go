package domain

// Principal is the authenticated identity for a single request. It is built
// fresh from the person store on every authorized request so role changes
// take effect immediately; it is never cached across requests.
type Principal struct {
	ID    int
	Email string
	Roles []Role
}

// HasRole reports whether the principal carries the given role.
func (p *Principal) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the principal's role set intersects roles.
func (p *Principal) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if p.HasRole(r) {
			return true
		}
	}
	return false
}
