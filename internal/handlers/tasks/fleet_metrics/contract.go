//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fleet_metrics_test
package fleet_metrics

import (
	"context"

	"freight/internal/entities"
)

type Service interface {
	Snapshot(ctx context.Context) (*entities.FleetSnapshot, error)
}
