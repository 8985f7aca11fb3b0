// Package user - чтение пользователей. Сами записи создает внешний сервис
// авторизации, здесь только поиск и проверка роли.
package user

import (
	"context"
	"fmt"

	"freight/internal/entities"
	"freight/internal/service/policy"
	"github.com/google/uuid"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	usr, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return usr, nil
}

// GetWithRole возвращает пользователя, только если у него нужная роль.
func (s *Service) GetWithRole(ctx context.Context, id uuid.UUID, role entities.UserRole) (*entities.User, error) {
	usr, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.RequireRole(usr, role); err != nil {
		return nil, err
	}
	return usr, nil
}
