//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matcher_test
package matcher

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	FindEligible(ctx context.Context, load *entities.Load) (*entities.Truck, error)
}
