//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fleet_test
package fleet

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	CountLoadsByStatus(ctx context.Context) (map[entities.LoadStatus]int64, error)
	CountTrucksByStatus(ctx context.Context) (map[entities.TruckStatus]int64, error)
}

type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
