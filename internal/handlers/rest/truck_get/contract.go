//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=truck_get_test
package truck_get

import (
	"context"

	"freight/internal/entities"
	"freight/pkg/logger"
	"github.com/google/uuid"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetTruck(ctx context.Context, truckID, driverID uuid.UUID) (*entities.Truck, error)
}
