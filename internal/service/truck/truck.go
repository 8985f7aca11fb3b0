package truck

import (
	"context"
	"fmt"

	"freight/internal/entities"
	"freight/internal/service/policy"
	"github.com/google/uuid"
)

type Truck struct {
	repository  Repository
	userService UserService
	txManager   TxManager
}

func New(repository Repository, userService UserService, txManager TxManager) *Truck {
	return &Truck{
		repository:  repository,
		userService: userService,
		txManager:   txManager,
	}
}

// CreateTruck регистрирует машину водителя. Габариты берутся из типа кузова,
// пустое имя заменяется на "Truck".
func (s *Truck) CreateTruck(ctx context.Context, driverID uuid.UUID, name *string, truckType entities.TruckType) (*entities.Truck, error) {
	capacity, ok := truckType.Capacity()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTruckType, truckType)
	}
	truckName, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	if _, err := s.userService.GetWithRole(ctx, driverID, entities.RoleDriver); err != nil {
		return nil, fmt.Errorf("check driver: %w", err)
	}

	truck := &entities.Truck{
		ID:        uuid.New(),
		CreatedBy: driverID,
		Name:      truckName,
		Type:      truckType,
		Status:    entities.TruckInService,
		Capacity:  capacity,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		count, err := s.repository.CountByCreator(ctx, driverID)
		if err != nil {
			return fmt.Errorf("count trucks: %w", err)
		}
		if count >= entities.MaxTrucksPerDriver {
			return ErrTruckLimitExceeded
		}

		if err := s.repository.Create(ctx, truck); err != nil {
			return fmt.Errorf("create truck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return truck, nil
}

func (s *Truck) GetTrucks(ctx context.Context, driverID uuid.UUID) ([]entities.Truck, error) {
	if _, err := s.userService.GetWithRole(ctx, driverID, entities.RoleDriver); err != nil {
		return nil, fmt.Errorf("check driver: %w", err)
	}

	trucks, err := s.repository.ListByCreator(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trucks: %w", err)
	}
	return trucks, nil
}

func (s *Truck) GetTruck(ctx context.Context, truckID, driverID uuid.UUID) (*entities.Truck, error) {
	truck, err := s.repository.GetByID(ctx, truckID)
	if err != nil {
		return nil, fmt.Errorf("failed to get truck: %w", err)
	}

	if err := policy.TruckOwnedBy(truck, driverID); err != nil {
		return nil, err
	}
	return truck, nil
}

func (s *Truck) UpdateTruck(ctx context.Context, truckID, driverID uuid.UUID, name string) (*entities.Truck, error) {
	if !isValidName(name) {
		return nil, ErrInvalidTruckName
	}

	var updated *entities.Truck
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		truck, err := s.lockEditable(ctx, truckID, driverID, ErrForbiddenUpdate)
		if err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, entities.TruckModify{
			ID:   &truck.ID,
			Name: &name,
		})
		if err != nil {
			return fmt.Errorf("update truck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// AssignTruck делает машину активной для водителя. Прежняя активная машина
// водителя освобождается в той же транзакции.
func (s *Truck) AssignTruck(ctx context.Context, truckID, driverID uuid.UUID) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		truck, err := s.repository.GetByID(ctx, truckID)
		if err != nil {
			return fmt.Errorf("get truck: %w", err)
		}
		if err := policy.TruckOwnedBy(truck, driverID); err != nil {
			return err
		}

		onLoad, err := s.repository.HasOnLoadByCreator(ctx, driverID)
		if err != nil {
			return fmt.Errorf("check trucks on load: %w", err)
		}
		if onLoad {
			return fmt.Errorf("%w: driver has a truck on load", ErrForbiddenAssign)
		}

		// повторное назначение ничего не пишет и строку не блокирует
		if truck.AssignedToDriver(driverID) {
			return nil
		}

		if _, err := s.repository.GetByIDForUpdate(ctx, truck.ID); err != nil {
			return fmt.Errorf("lock truck: %w", err)
		}
		if err := s.repository.ClearAssigneeByDriver(ctx, driverID); err != nil {
			return fmt.Errorf("clear previous truck: %w", err)
		}
		if err := s.repository.SetAssignee(ctx, truck.ID, driverID); err != nil {
			return fmt.Errorf("assign truck: %w", err)
		}
		return nil
	})
}

func (s *Truck) UnassignTruck(ctx context.Context, truckID, driverID uuid.UUID) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		truck, err := s.repository.GetByIDForUpdate(ctx, truckID)
		if err != nil {
			return fmt.Errorf("get truck: %w", err)
		}
		if err := policy.TruckOwnedBy(truck, driverID); err != nil {
			return err
		}
		if truck.Status == entities.TruckOnLoad {
			return fmt.Errorf("%w: truck is on load", ErrForbiddenAssign)
		}

		if err := s.repository.ClearAssignee(ctx, truck.ID); err != nil {
			return fmt.Errorf("unassign truck: %w", err)
		}
		return nil
	})
}

func (s *Truck) DeleteTruck(ctx context.Context, truckID, driverID uuid.UUID) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		truck, err := s.lockEditable(ctx, truckID, driverID, ErrForbiddenDelete)
		if err != nil {
			return err
		}

		if err := s.repository.Delete(ctx, truck.ID); err != nil {
			return fmt.Errorf("delete truck: %w", err)
		}
		return nil
	})
}

func (s *Truck) lockEditable(ctx context.Context, truckID, driverID uuid.UUID, forbidden error) (*entities.Truck, error) {
	truck, err := s.repository.GetByIDForUpdate(ctx, truckID)
	if err != nil {
		return nil, fmt.Errorf("get truck: %w", err)
	}

	onLoad, err := s.repository.HasOnLoadByCreator(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("check trucks on load: %w", err)
	}

	if err := policy.TruckEditable(truck, driverID, onLoad); err != nil {
		return nil, forbiddenAs(err, forbidden)
	}
	return truck, nil
}
