package load

import (
	"context"
	"fmt"

	"freight/internal/entities"
	"freight/internal/service/policy"
	"github.com/google/uuid"
)

type Load struct {
	repository  Repository
	userService UserService
	txManager   TxManager
}

func New(repository Repository, userService UserService, txManager TxManager) *Load {
	return &Load{
		repository:  repository,
		userService: userService,
		txManager:   txManager,
	}
}

// CreateLoad заводит новый груз грузоотправителя в статусе NEW вместе
// с первой записью журнала.
func (s *Load) CreateLoad(ctx context.Context, shipperID uuid.UUID, loadModify entities.LoadModify) (*entities.Load, error) {
	if loadModify.Dimensions == nil {
		return nil, fmt.Errorf("dimensions required: %w", ErrInvalidDimensions)
	}
	dimensions, ok := loadModify.Dimensions.Complete()
	if !ok {
		return nil, fmt.Errorf("width, length and height required: %w", ErrInvalidDimensions)
	}
	if loadModify.Payload == nil {
		return nil, fmt.Errorf("payload required: %w", ErrInvalidPayload)
	}
	if err := validateModify(loadModify); err != nil {
		return nil, err
	}

	if _, err := s.userService.GetWithRole(ctx, shipperID, entities.RoleShipper); err != nil {
		return nil, fmt.Errorf("check shipper: %w", err)
	}

	load := &entities.Load{
		ID:         uuid.New(),
		CreatedBy:  shipperID,
		Status:     entities.LoadNew,
		State:      entities.DefaultLoadState,
		Dimensions: dimensions,
		Payload:    *loadModify.Payload,
	}
	if loadModify.PickupAddress != nil {
		load.PickupAddress = *loadModify.PickupAddress
	}
	if loadModify.DeliveryAddress != nil {
		load.DeliveryAddress = *loadModify.DeliveryAddress
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.Create(ctx, load); err != nil {
			return fmt.Errorf("create load: %w", err)
		}
		if err := s.repository.AppendLog(ctx, load.ID, entities.LogLoadCreated); err != nil {
			return fmt.Errorf("append log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return load, nil
}

func (s *Load) GetLoad(ctx context.Context, loadID, actorID uuid.UUID) (*entities.Load, error) {
	load, err := s.repository.GetByID(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get load: %w", err)
	}

	if err := policy.LoadVisibleTo(load, actorID); err != nil {
		return nil, err
	}
	return load, nil
}

// GetLoads отдает грузоотправителю его грузы, водителю - назначенные ему
// и еще не доставленные.
func (s *Load) GetLoads(ctx context.Context, actorID uuid.UUID, filter entities.LoadFilter) ([]entities.Load, error) {
	switch {
	case filter.Limit == 0:
		filter.Limit = DefaultPageLimit
	case filter.Limit > MaxPageLimit:
		return nil, fmt.Errorf("limit %d: %w", filter.Limit, ErrInvalidPagination)
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, ErrInvalidLoadStatus
	}

	actor, err := s.userService.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}

	switch actor.Role {
	case entities.RoleDriver:
		assigned := entities.LoadAssigned
		filter.CreatedBy = nil
		filter.AssignedTo = &actor.ID
		filter.Status = &assigned
	case entities.RoleShipper:
		filter.CreatedBy = &actor.ID
		filter.AssignedTo = nil
	default:
		return nil, fmt.Errorf("%w: unknown role %q", policy.ErrAccessDenied, actor.Role)
	}

	loads, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get loads: %w", err)
	}
	return loads, nil
}

// UpdateLoad меняет габариты, вес и адреса груза, пока он в статусе NEW.
func (s *Load) UpdateLoad(ctx context.Context, loadID, shipperID uuid.UUID, loadModify entities.LoadModify) (*entities.Load, error) {
	if loadModify.Dimensions != nil && loadModify.Dimensions.Empty() {
		loadModify.Dimensions = nil
	}
	if loadModify.Dimensions == nil &&
		loadModify.Payload == nil &&
		loadModify.PickupAddress == nil &&
		loadModify.DeliveryAddress == nil {
		return nil, ErrEmptyModify
	}
	if err := validateModify(loadModify); err != nil {
		return nil, err
	}

	var updated *entities.Load
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		load, err := s.repository.GetByIDForUpdate(ctx, loadID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}
		if err := policy.LoadOwnedBy(load, shipperID); err != nil {
			return err
		}
		if err := policy.LoadEditable(load); err != nil {
			return err
		}

		// непереданные габариты берем из заблокированной строки
		var dimensions *entities.DimensionsModify
		if loadModify.Dimensions != nil {
			merged := loadModify.Dimensions.MergeInto(load.Dimensions)
			dimensions = &entities.DimensionsModify{
				Width:  &merged.Width,
				Length: &merged.Length,
				Height: &merged.Height,
			}
		}

		// статус, назначение и создателя через этот метод не меняем
		updated, err = s.repository.Update(ctx, entities.LoadModify{
			ID:              &load.ID,
			Dimensions:      dimensions,
			Payload:         loadModify.Payload,
			PickupAddress:   loadModify.PickupAddress,
			DeliveryAddress: loadModify.DeliveryAddress,
		})
		if err != nil {
			return fmt.Errorf("update load: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Load) DeleteLoad(ctx context.Context, loadID, shipperID uuid.UUID) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		load, err := s.repository.GetByIDForUpdate(ctx, loadID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}
		if err := policy.LoadOwnedBy(load, shipperID); err != nil {
			return err
		}
		if err := policy.LoadEditable(load); err != nil {
			return err
		}

		if err := s.repository.Delete(ctx, load.ID); err != nil {
			return fmt.Errorf("delete load: %w", err)
		}
		return nil
	})
}
