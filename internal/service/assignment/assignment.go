package assignment

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/entities"
	"freight/internal/service/matcher"
	"freight/internal/service/policy"
	"github.com/google/uuid"
)

type Coordinator struct {
	loadRepository  LoadRepository
	truckRepository TruckRepository
	matcher         TruckMatcher
	txManager       TxManager
}

func New(
	loadRepository LoadRepository,
	truckRepository TruckRepository,
	matcher TruckMatcher,
	txManager TxManager,
) *Coordinator {
	return &Coordinator{
		loadRepository:  loadRepository,
		truckRepository: truckRepository,
		matcher:         matcher,
		txManager:       txManager,
	}
}

// PostLoad публикует груз и сразу пытается найти под него машину.
//
// Все делается в одной транзакции под блокировкой строки груза:
//  1. груз переходит в POSTED;
//  2. если машины нет - пишем в журнал и возвращаем груз в NEW,
//     результат OutcomeNoTruckAvailable без ошибки;
//  3. если есть - машина в ON_LOAD, груз в ASSIGNED и "En route to Pick Up",
//     водитель и машина записываются в груз.
//
// Любая ошибка откатывает транзакцию целиком.
func (c *Coordinator) PostLoad(ctx context.Context, loadID, shipperID uuid.UUID) (*entities.LoadAssignment, error) {
	var assignment entities.LoadAssignment

	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		load, err := c.loadRepository.GetByIDForUpdate(ctx, loadID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}

		if err := policy.LoadOwnedBy(load, shipperID); err != nil {
			return err
		}
		if err := policy.LoadEditable(load); err != nil {
			return err
		}

		if err := c.setStatus(ctx, load.ID, entities.LoadPosted, entities.LogLoadPosted); err != nil {
			return err
		}

		truck, err := c.matcher.FindEligibleTruck(ctx, load)
		if err != nil {
			if !errors.Is(err, matcher.ErrNoEligibleTruck) {
				return fmt.Errorf("match truck: %w", err)
			}

			if err := c.setStatus(ctx, load.ID, entities.LoadNew, entities.LogNoTruckFound); err != nil {
				return err
			}
			assignment = entities.LoadAssignment{
				LoadID:  load.ID,
				Outcome: entities.OutcomeNoTruckAvailable,
			}
			return nil
		}

		if err := c.truckRepository.UpdateStatus(ctx, truck.ID, entities.TruckInService, entities.TruckOnLoad); err != nil {
			return fmt.Errorf("mark truck on load: %w", err)
		}

		assigned := entities.LoadAssigned
		state := entities.AssignmentLoadState
		_, err = c.loadRepository.Update(ctx, entities.LoadModify{
			ID:         &load.ID,
			Status:     &assigned,
			State:      &state,
			AssignedTo: truck.AssignedTo,
			TruckID:    &truck.ID,
		})
		if err != nil {
			return fmt.Errorf("assign load: %w", err)
		}

		if err := c.loadRepository.AppendLog(ctx, load.ID, entities.LogLoadAssigned); err != nil {
			return fmt.Errorf("append log: %w", err)
		}

		assignment = entities.LoadAssignment{
			LoadID:   load.ID,
			Outcome:  entities.OutcomeAssigned,
			DriverID: truck.AssignedTo,
			TruckID:  &truck.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	LoadAssignmentsTotal.WithLabelValues(assignment.Outcome.String()).Inc()
	return &assignment, nil
}

func (c *Coordinator) setStatus(ctx context.Context, loadID uuid.UUID, status entities.LoadStatus, logMessage string) error {
	_, err := c.loadRepository.Update(ctx, entities.LoadModify{
		ID:     &loadID,
		Status: &status,
	})
	if err != nil {
		return fmt.Errorf("set load status %s: %w", status, err)
	}

	if err := c.loadRepository.AppendLog(ctx, loadID, logMessage); err != nil {
		return fmt.Errorf("append log: %w", err)
	}
	return nil
}
