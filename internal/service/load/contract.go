//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_test
package load

import (
	"context"

	"freight/internal/entities"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, load *entities.Load) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Load, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Load, error)
	List(ctx context.Context, filter entities.LoadFilter) ([]entities.Load, error)
	Update(ctx context.Context, loadModify entities.LoadModify) (*entities.Load, error)
	AppendLog(ctx context.Context, loadID uuid.UUID, message string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetWithRole(ctx context.Context, id uuid.UUID, role entities.UserRole) (*entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
