package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/turmab/helpdesk/internal/api/metrics"
	"github.com/turmab/helpdesk/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes ticket events to a fixed set of workers using consistent
// hashing on the ticket id, guaranteeing per-ticket event ordering.
type Dispatcher struct {
	workers  []chan ports.TicketEvent
	notifier ports.TicketNotifier
	log      zerolog.Logger
}

var _ ports.TicketEventPublisher = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.TicketNotifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.TicketEvent, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.TicketEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Publish sends an event to the worker responsible for its ticket.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Publish(event ports.TicketEvent) {
	metrics.TicketEventsTotal.WithLabelValues(event.Kind).Inc()
	d.workers[d.shardIndex(event.TicketID)] <- event
}

// shardIndex maps a ticket id deterministically to a worker index.
func (d *Dispatcher) shardIndex(ticketID int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.Itoa(ticketID)))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.TicketEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.notifier.Notify(ctx, event); err != nil {
				d.log.Error().Err(err).
					Int("ticket_id", event.TicketID).
					Str("kind", event.Kind).
					Int("worker_id", id).
					Msg("ticket event delivery failed")
			}
		}
	}
}
