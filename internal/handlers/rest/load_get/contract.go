//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_get_test
package load_get

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
	GetLoad(ctx context.Context, loadID, actorID uuid.UUID) (*entities.Load, error)
}
