//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_info_put_test
package load_info_put

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
	UpdateLoad(ctx context.Context, loadID, shipperID uuid.UUID, loadModify entities.LoadModify) (*entities.Load, error)
}
