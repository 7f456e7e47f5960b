package handler

import (
	"time"

	"github.com/turmab/helpdesk/internal/core/ports"
)

// ticketRequest carries a ticket create/update payload. Priority and status
// are numeric codes; pointers distinguish "absent" from the valid zero code.
type ticketRequest struct {
	Title      string `json:"title"      validate:"required"`
	Notes      string `json:"notes"      validate:"required"`
	Priority   *int   `json:"priority"   validate:"required"`
	Status     *int   `json:"status"     validate:"required"`
	Technician *int   `json:"technician" validate:"required"`
	Client     *int   `json:"client"     validate:"required"`
}

func (r ticketRequest) toInput() ports.TicketInput {
	return ports.TicketInput{
		Title:        r.Title,
		Notes:        r.Notes,
		PriorityCode: *r.Priority,
		StatusCode:   *r.Status,
		TechnicianID: *r.Technician,
		ClientID:     *r.Client,
	}
}

type ticketResponse struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Notes          string     `json:"notes"`
	Priority       int        `json:"priority"`
	Status         int        `json:"status"`
	Technician     int        `json:"technician"`
	Client         int        `json:"client"`
	TechnicianName string     `json:"technician_name"`
	ClientName     string     `json:"client_name"`
	OpenedAt       time.Time  `json:"opened_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
}

func toTicketResponse(d *ports.TicketDetail) ticketResponse {
	return ticketResponse{
		ID:             d.ID,
		Title:          d.Title,
		Notes:          d.Notes,
		Priority:       d.PriorityCode,
		Status:         d.StatusCode,
		Technician:     d.TechnicianID,
		Client:         d.ClientID,
		TechnicianName: d.TechnicianName,
		ClientName:     d.ClientName,
		OpenedAt:       d.OpenedAt,
		ClosedAt:       d.ClosedAt,
	}
}
