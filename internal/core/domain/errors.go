package domain

import "errors"

// Sentinel errors shared across services, repositories, and the API layer.
// The error handler maps each to a deterministic HTTP status.
var (
	// ErrInvalidCredentials covers both unknown e-mail and wrong password.
	// Callers must not distinguish the two, to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPersonNotFound = errors.New("person not found")
	ErrTicketNotFound = errors.New("ticket not found")

	ErrEmailTaken       = errors.New("e-mail already registered")
	ErrCPFTaken         = errors.New("cpf already registered")
	ErrPersonHasTickets = errors.New("person has tickets and cannot be deleted")

	ErrInvalidRoleCode     = errors.New("invalid role code")
	ErrInvalidStatusCode   = errors.New("invalid status code")
	ErrInvalidPriorityCode = errors.New("invalid priority code")
)
