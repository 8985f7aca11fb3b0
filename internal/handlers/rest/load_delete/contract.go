//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_delete_test
package load_delete

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
	DeleteLoad(ctx context.Context, loadID, shipperID uuid.UUID) error
}
