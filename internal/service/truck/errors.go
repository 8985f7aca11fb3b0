package truck

import (
	"errors"
	"fmt"

	"freight/internal/service/policy"
)

var (
	ErrTruckNotFound      = errors.New("truck not found")
	ErrTruckLimitExceeded = errors.New("truck limit per driver exceeded")
	ErrInvalidTruckType   = errors.New("invalid truck type")
	ErrInvalidTruckName   = errors.New("invalid truck name")

	// ErrTruckStateChanged - условное обновление статуса не нашло строку
	// в ожидаемом статусе, машину успели поменять.
	ErrTruckStateChanged = errors.New("truck state changed concurrently")

	// ErrConflict - нарушение уникальности активной машины водителя.
	ErrConflict = errors.New("driver already has an assigned truck")

	// Запреты по состоянию машины. Все оборачивают policy.ErrForbidden,
	// у каждого свое сообщение клиенту.
	ErrForbiddenUpdate = fmt.Errorf("%w: update truck", policy.ErrForbidden)
	ErrForbiddenDelete = fmt.Errorf("%w: delete truck", policy.ErrForbidden)
	ErrForbiddenAssign = fmt.Errorf("%w: change truck assignment", policy.ErrForbidden)
)

// forbiddenAs подменяет общий запрет политики на запрет конкретной операции.
func forbiddenAs(err, target error) error {
	if errors.Is(err, policy.ErrForbidden) {
		return fmt.Errorf("%w: %w", target, err)
	}
	return err
}
