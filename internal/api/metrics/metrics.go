// Package metrics defines and registers the custom Prometheus metrics for
// the equipment registry API. It is the single source of truth for metric
// names, labels, and help strings; promauto registers everything with the
// default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "equipos"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "user_not_found", or "bad_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
// Label:
//   - role: the role name the account was registered with
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// GuardRejectionsTotal counts requests short-circuited by the access guard.
// Label:
//   - reason: "missing_token", "invalid_token", "unknown_role", or "role_not_allowed"
var GuardRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_rejections_total",
		Help:      "Total number of requests rejected by the access guard, by reason.",
	},
	[]string{"reason"},
)

// EquipmentCreatedTotal counts equipment registrations.
var EquipmentCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "equipment_created_total",
		Help:      "Total number of equipment records registered.",
	},
)

// EquipmentStatusUpdatesTotal counts admin status transitions.
// Label:
//   - status: the status applied ("pendiente", "validado", "rechazado")
var EquipmentStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "equipment_status_updates_total",
		Help:      "Total number of equipment status updates applied, by status.",
	},
	[]string{"status"},
)
