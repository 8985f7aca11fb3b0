package matcher

import (
	"context"
	"fmt"

	"freight/internal/entities"
)

// Matcher подбирает машину под груз. Сам ничего не пишет: кандидат
// приходит из репозитория уже заблокированным в текущей транзакции.
type Matcher struct {
	repository Repository
}

func New(repository Repository) *Matcher {
	return &Matcher{
		repository: repository,
	}
}

// FindEligibleTruck возвращает самую раннюю по created_at (затем по id)
// машину, которая может взять груз, или ErrNoEligibleTruck.
func (m *Matcher) FindEligibleTruck(ctx context.Context, load *entities.Load) (*entities.Truck, error) {
	truck, err := m.repository.FindEligible(ctx, load)
	if err != nil {
		return nil, fmt.Errorf("find eligible truck: %w", err)
	}

	// запрос и предикат должны совпадать, но ответ репозитория все равно
	// проверяем тем же CanCarry
	if !truck.CanCarry(load) {
		return nil, fmt.Errorf("%w: candidate %s cannot carry load %s", ErrNoEligibleTruck, truck.ID, load.ID)
	}

	return truck, nil
}
