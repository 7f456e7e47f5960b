package ports

import "context"

// LoginThrottle tracks failed login attempts per identifier and reports when
// an identifier has exceeded the allowed failure budget.
type LoginThrottle interface {
	// Blocked reports whether the identifier is currently locked out.
	Blocked(ctx context.Context, identifier string) (bool, error)
	// RecordFailure registers one failed attempt for the identifier.
	RecordFailure(ctx context.Context, identifier string) error
	// Reset clears the identifier's failure count after a successful login.
	Reset(ctx context.Context, identifier string) error
}
