//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_post_patch_test
package load_post_patch

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
	PostLoad(ctx context.Context, loadID, shipperID uuid.UUID) (*entities.LoadAssignment, error)
}
