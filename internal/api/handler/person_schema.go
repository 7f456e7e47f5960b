package handler

import (
	"time"

	"github.com/turmab/helpdesk/internal/core/domain"
)

// Request DTOs for the client and technician resources. Roles travel as
// numeric codes, matching the enum wire representation.

type createPersonRequest struct {
	Name     string `json:"name"     validate:"required"`
	CPF      string `json:"cpf"      validate:"required,len=11,numeric"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
	Roles    []int  `json:"roles"`
}

type updatePersonRequest struct {
	Name     string `json:"name"     validate:"required"`
	CPF      string `json:"cpf"      validate:"required,len=11,numeric"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=3"`
	Roles    []int  `json:"roles"`
}

// personResponse is the outward view of a client or technician. The password
// hash never leaves the service.
type personResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Email     string    `json:"email"`
	Roles     []int     `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

func toPersonResponse(p *domain.Person) personResponse {
	codes := make([]int, 0, len(p.Roles))
	for _, r := range p.Roles {
		codes = append(codes, r.Code())
	}
	return personResponse{
		ID:        p.ID,
		Name:      p.Name,
		CPF:       p.CPF,
		Email:     p.Email,
		Roles:     codes,
		CreatedAt: p.CreatedAt,
	}
}
