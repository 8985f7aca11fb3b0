//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_state_patch_test
package load_state_patch

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
	AdvanceState(ctx context.Context, loadID, driverID uuid.UUID) (*entities.StateTransition, error)
}
