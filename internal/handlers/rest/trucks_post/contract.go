//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trucks_post_test
package trucks_post

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
	CreateTruck(ctx context.Context, driverID uuid.UUID, name *string, truckType entities.TruckType) (*entities.Truck, error)
}
