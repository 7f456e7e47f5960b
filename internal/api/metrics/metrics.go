// Package metrics defines and registers all custom Prometheus metrics for
// the helpdesk API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "helpdesk"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthDeniedTotal counts requests rejected by the access decision.
// Label:
//   - reason: "unauthenticated" (401) or "forbidden" (403)
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests denied by authentication or role checks.",
	},
	[]string{"reason"},
)

// TicketsCreatedTotal counts newly opened tickets.
// Label:
//   - priority: "LOW", "MEDIUM", or "HIGH"
var TicketsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_created_total",
		Help:      "Total number of tickets created, by priority.",
	},
	[]string{"priority"},
)

// TicketEventsTotal counts ticket events delivered by the dispatcher.
// Label:
//   - kind: "created", "updated", or "closed"
var TicketEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ticket_events_total",
		Help:      "Total number of ticket events delivered to notifiers, by kind.",
	},
	[]string{"kind"},
)
