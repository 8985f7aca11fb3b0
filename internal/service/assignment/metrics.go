package assignment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var LoadAssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "load_assignments_total",
		Help: "Total number of committed load posts by outcome",
	},
	[]string{"outcome"},
)
