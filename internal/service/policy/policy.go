// Package policy собирает проверки доступа в одном месте: кто может
// трогать груз или машину и в каком состоянии. Все функции без состояния
// и возвращают nil либо одну из ошибок пакета.
package policy

import (
	"fmt"

	"freight/internal/entities"
	"github.com/google/uuid"
)

func RequireRole(user *entities.User, role entities.UserRole) error {
	if user == nil {
		return ErrUnauthorized
	}
	if user.Role != role {
		return fmt.Errorf("%w: role %s required", ErrAccessDenied, role)
	}
	return nil
}

func LoadOwnedBy(load *entities.Load, actorID uuid.UUID) error {
	if load.CreatedBy != actorID {
		return ErrAccessDenied
	}
	return nil
}

func LoadAssignedTo(load *entities.Load, actorID uuid.UUID) error {
	if load.AssignedTo == nil || *load.AssignedTo != actorID {
		return ErrAccessDenied
	}
	return nil
}

// LoadVisibleTo - груз видят создатель и назначенный водитель.
func LoadVisibleTo(load *entities.Load, actorID uuid.UUID) error {
	if LoadOwnedBy(load, actorID) == nil || LoadAssignedTo(load, actorID) == nil {
		return nil
	}
	return ErrAccessDenied
}

func LoadEditable(load *entities.Load) error {
	if load.Status != entities.LoadNew {
		return fmt.Errorf("%w: load is %s", ErrInvalidState, load.Status)
	}
	return nil
}

func LoadInTransit(load *entities.Load) error {
	if load.Status != entities.LoadAssigned {
		return fmt.Errorf("%w: load is %s", ErrForbidden, load.Status)
	}
	return nil
}

func TruckOwnedBy(truck *entities.Truck, actorID uuid.UUID) error {
	if truck.CreatedBy != actorID {
		return ErrAccessDenied
	}
	return nil
}

// TruckEditable - менять и удалять можно только свою машину, которая стоит
// в сервисе, не закреплена за водителем, и пока у водителя нет машины в рейсе.
func TruckEditable(truck *entities.Truck, actorID uuid.UUID, driverOnLoad bool) error {
	if err := TruckOwnedBy(truck, actorID); err != nil {
		return err
	}
	if driverOnLoad {
		return fmt.Errorf("%w: driver has a truck on load", ErrForbidden)
	}
	if truck.Status != entities.TruckInService {
		return fmt.Errorf("%w: truck is %s", ErrForbidden, truck.Status)
	}
	if truck.AssignedToDriver(actorID) {
		return fmt.Errorf("%w: truck is assigned", ErrForbidden)
	}
	return nil
}
