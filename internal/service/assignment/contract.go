//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"freight/internal/entities"
	"github.com/google/uuid"
)

type LoadRepository interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Load, error)
	Update(ctx context.Context, loadModify entities.LoadModify) (*entities.Load, error)
	AppendLog(ctx context.Context, loadID uuid.UUID, message string) error
}

type TruckRepository interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entities.TruckStatus) error
}

type TruckMatcher interface {
	FindEligibleTruck(ctx context.Context, load *entities.Load) (*entities.Truck, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
