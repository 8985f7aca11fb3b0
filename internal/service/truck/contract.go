//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=truck_test
package truck

import (
	"context"

	"freight/internal/entities"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, truck *entities.Truck) error
	CountByCreator(ctx context.Context, driverID uuid.UUID) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Truck, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Truck, error)
	ListByCreator(ctx context.Context, driverID uuid.UUID) ([]entities.Truck, error)
	Update(ctx context.Context, truckModify entities.TruckModify) (*entities.Truck, error)
	SetAssignee(ctx context.Context, id, driverID uuid.UUID) error
	ClearAssignee(ctx context.Context, id uuid.UUID) error
	ClearAssigneeByDriver(ctx context.Context, driverID uuid.UUID) error
	HasOnLoadByCreator(ctx context.Context, driverID uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserService interface {
	GetWithRole(ctx context.Context, id uuid.UUID, role entities.UserRole) (*entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
