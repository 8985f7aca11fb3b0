package fleet

import (
	"context"
	"fmt"

	"freight/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CountLoadsByStatus(ctx context.Context) (map[entities.LoadStatus]int64, error) {
	counts, err := r.countByStatus(ctx, `SELECT status, COUNT(*) FROM loads GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("unexpected fleet repository loads error: %w", err)
	}

	res := make(map[entities.LoadStatus]int64, len(entities.LoadStatuses))
	for _, status := range entities.LoadStatuses {
		res[status] = counts[status.String()]
	}
	return res, nil
}

func (r *Repository) CountTrucksByStatus(ctx context.Context) (map[entities.TruckStatus]int64, error) {
	counts, err := r.countByStatus(ctx, `SELECT status, COUNT(*) FROM trucks GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("unexpected fleet repository trucks error: %w", err)
	}

	res := make(map[entities.TruckStatus]int64, len(entities.TruckStatuses))
	for _, status := range entities.TruckStatuses {
		res[status] = counts[status.String()]
	}
	return res, nil
}

func (r *Repository) countByStatus(ctx context.Context, query string) (map[string]int64, error) {
	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
