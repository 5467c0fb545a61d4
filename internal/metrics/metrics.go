// Package metrics defines the custom Prometheus metrics for the heroes
// API. It is the single source of truth for metric names, labels, and
// help strings; everything registers with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vaice"

// LoginAttemptsTotal counts login attempts.
// Labels:
//   - kind: the principal kind ("user" or "hero")
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by principal kind and result.",
	},
	[]string{"kind", "result"},
)

// HeroesCreatedTotal counts heroes created through the admin API.
var HeroesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "heroes_created_total",
		Help:      "Total number of heroes created.",
	},
)

// TeamsCreatedTotal counts teams created through the admin API.
var TeamsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "teams_created_total",
		Help:      "Total number of teams created.",
	},
)
