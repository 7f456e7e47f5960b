package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/turmab/helpdesk/internal/core/ports"
)

// LogNotifier writes ticket events to the structured log. It stands in for an
// e-mail or webhook integration while keeping the delivery pipeline exercised.
type LogNotifier struct {
	log zerolog.Logger
}

var _ ports.TicketNotifier = (*LogNotifier)(nil)

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, event ports.TicketEvent) error {
	n.log.Info().
		Str("kind", event.Kind).
		Int("ticket_id", event.TicketID).
		Str("title", event.Title).
		Int("technician_id", event.TechnicianID).
		Int("client_id", event.ClientID).
		Time("at", event.At).
		Msg("ticket event")
	return nil
}
