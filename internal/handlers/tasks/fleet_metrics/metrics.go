package fleet_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FleetLoads = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fleet_loads",
			Help: "Number of loads by status",
		},
		[]string{"status"},
	)

	FleetTrucks = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fleet_trucks",
			Help: "Number of trucks by status",
		},
		[]string{"status"},
	)
)
