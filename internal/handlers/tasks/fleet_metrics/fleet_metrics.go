package fleet_metrics

import (
	"context"
	"fmt"
	"time"

	"freight/pkg/logger"
)

// FleetMetrics периодически пересчитывает грузы и машины по статусам
// и выставляет gauge-метрики.
type FleetMetrics struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewFleetMetrics(log logger.Logger, service Service, interval time.Duration) *FleetMetrics {
	return &FleetMetrics{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (f *FleetMetrics) TTL() time.Duration {
	return f.interval
}

func (f *FleetMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, f.interval)
	defer cancel()

	snapshot, err := f.service.Snapshot(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("fleet snapshot: %w", err)
	}

	for status, count := range snapshot.LoadsByStatus {
		FleetLoads.WithLabelValues(status.String()).Set(float64(count))
	}
	for status, count := range snapshot.TrucksByStatus {
		FleetTrucks.WithLabelValues(status.String()).Set(float64(count))
	}

	f.log.With(
		logger.NewField("loads", snapshot.LoadsByStatus),
		logger.NewField("trucks", snapshot.TrucksByStatus),
	).Info("fleet metrics refreshed")

	return nil
}

func (f *FleetMetrics) Info() string {
	return "fleet metrics"
}
