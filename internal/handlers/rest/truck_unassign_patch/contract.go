//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=truck_unassign_patch_test
package truck_unassign_patch

import (
	"context"

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
	UnassignTruck(ctx context.Context, truckID, driverID uuid.UUID) error
}
