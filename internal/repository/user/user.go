package user

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/entities"
	service "freight/internal/service/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	query := `SELECT id, role, email, username, first_name, last_name, created_at
		FROM users
		WHERE id = $1`

	var userDB UserDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&userDB.ID,
			&userDB.Role,
			&userDB.Email,
			&userDB.Username,
			&userDB.FirstName,
			&userDB.LastName,
			&userDB.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&userDB), nil
}
