//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=loads_post_test
package loads_post

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
	CreateLoad(ctx context.Context, shipperID uuid.UUID, loadModify entities.LoadModify) (*entities.Load, error)
}
