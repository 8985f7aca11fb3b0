package delivery

import (
	"context"
	"fmt"

	"freight/internal/entities"
	"freight/internal/service/policy"
	"github.com/google/uuid"
)

type Delivery struct {
	loadRepository  LoadRepository
	truckRepository TruckRepository
	txManager       TxManager
}

func New(
	loadRepository LoadRepository,
	truckRepository TruckRepository,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		loadRepository:  loadRepository,
		truckRepository: truckRepository,
		txManager:       txManager,
	}
}

// AdvanceState двигает груз на один шаг по маршруту доставки.
//
// Повторный вызов на уже доставленном грузе ничего не меняет и не пишет в
// журнал, результат с AlreadyArrived. Эта проверка идет до проверки
// статуса ASSIGNED, потому что после доставки груз уже SHIPPED.
//
// Переход в "Arrived to Delivery" закрывает груз (SHIPPED) и возвращает
// в сервис ровно ту машину, которая его везла.
func (d *Delivery) AdvanceState(ctx context.Context, loadID, driverID uuid.UUID) (*entities.StateTransition, error) {
	var transition entities.StateTransition

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		load, err := d.loadRepository.GetByIDForUpdate(ctx, loadID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}

		if err := policy.LoadAssignedTo(load, driverID); err != nil {
			return err
		}

		if load.State.Terminal() {
			transition = entities.StateTransition{
				LoadID:         load.ID,
				From:           load.State,
				To:             load.State,
				Status:         load.Status,
				AlreadyArrived: true,
			}
			return nil
		}

		if err := policy.LoadInTransit(load); err != nil {
			return err
		}

		next, err := load.State.Next()
		if err != nil {
			return fmt.Errorf("next state: %w", err)
		}

		loadModify := entities.LoadModify{
			ID:    &load.ID,
			State: &next,
		}
		status := load.Status
		if next.Terminal() {
			status = entities.LoadShipped
			loadModify.Status = &status
		}

		if _, err := d.loadRepository.Update(ctx, loadModify); err != nil {
			return fmt.Errorf("update load state: %w", err)
		}

		if err := d.loadRepository.AppendLog(ctx, load.ID, entities.StateChangedLog(next)); err != nil {
			return fmt.Errorf("append log: %w", err)
		}

		if next.Terminal() {
			if err := d.releaseTruck(ctx, load); err != nil {
				return err
			}
		}

		transition = entities.StateTransition{
			LoadID: load.ID,
			From:   load.State,
			To:     next,
			Status: status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !transition.AlreadyArrived {
		LoadStateTransitionsTotal.WithLabelValues(transition.To.String()).Inc()
	}
	return &transition, nil
}

func (d *Delivery) releaseTruck(ctx context.Context, load *entities.Load) error {
	if load.TruckID == nil {
		return fmt.Errorf("release truck for load %s: %w", load.ID, ErrLoadWithoutTruck)
	}

	err := d.truckRepository.UpdateStatus(ctx, *load.TruckID, entities.TruckOnLoad, entities.TruckInService)
	if err != nil {
		return fmt.Errorf("release truck %s: %w", *load.TruckID, err)
	}
	return nil
}
