// Package fleet считает грузы и машины по статусам для метрик.
package fleet

import (
	"context"
	"fmt"

	"freight/internal/entities"
)

type Service struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
	}
}

// Snapshot читает оба счетчика из одного снимка базы.
func (s *Service) Snapshot(ctx context.Context) (*entities.FleetSnapshot, error) {
	var snapshot entities.FleetSnapshot

	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		loads, err := s.repository.CountLoadsByStatus(ctx)
		if err != nil {
			return fmt.Errorf("count loads: %w", err)
		}
		trucks, err := s.repository.CountTrucksByStatus(ctx)
		if err != nil {
			return fmt.Errorf("count trucks: %w", err)
		}

		snapshot.LoadsByStatus = loads
		snapshot.TrucksByStatus = trucks
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}
