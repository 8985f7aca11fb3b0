package delivery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var LoadStateTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "load_state_transitions_total",
		Help: "Total number of committed load state transitions by target state",
	},
	[]string{"state"},
)
