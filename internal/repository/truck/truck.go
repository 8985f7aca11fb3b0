package truck

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/matcher"
	service "freight/internal/service/truck"
	userservice "freight/internal/service/user"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, truck *entities.Truck) error {
	truckDB := FromDomain(truck)

	builder := qb.
		Insert("trucks").
		Columns("id", "created_by", "name", "type", "status", "width", "length", "height", "payload").
		Values(
			truckDB.ID, truckDB.CreatedBy, truckDB.Name, truckDB.Type, truckDB.Status,
			truckDB.Width, truckDB.Length, truckDB.Height, truckDB.Payload,
		).
		Suffix("RETURNING created_at, updated_at")

	err := r.querier.QueryRowBuilder(ctx, builder).Scan(&truck.CreatedAt, &truck.UpdatedAt)
	if err != nil {
		if repository.ViolatesForeignKey(err) {
			return userservice.ErrUserNotFound
		}
		return fmt.Errorf("unexpected truck repository create error: %w", err)
	}
	return nil
}

func (r *Repository) CountByCreator(ctx context.Context, driverID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM trucks WHERE created_by = $1`

	var count int
	if err := r.querier.QueryRow(ctx, query, driverID).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected truck repository count error: %w", err)
	}
	return count, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Truck, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate блокирует строку машины до конца текущей транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Truck, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entities.Truck, error) {
	builder := qb.
		Select(truckColumns...).
		From("trucks").
		Where(sq.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	var truckDB TruckDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(truckDB.scanDest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrTruckNotFound
		}
		return nil, fmt.Errorf("unexpected truck repository getbyid error: %w", err)
	}

	return ToDomain(&truckDB), nil
}

func (r *Repository) ListByCreator(ctx context.Context, driverID uuid.UUID) ([]entities.Truck, error) {
	builder := qb.
		Select(truckColumns...).
		From("trucks").
		Where(sq.Eq{"created_by": driverID}).
		OrderBy("created_at", "id")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository list error: %w", err)
	}
	defer rows.Close()

	truckModels := make([]TruckDB, 0, 8)
	for rows.Next() {
		var truckDB TruckDB
		if err := rows.Scan(truckDB.scanDest()...); err != nil {
			return nil, fmt.Errorf("unexpected truck repository list error: %w", err)
		}
		truckModels = append(truckModels, truckDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected truck repository list error: %w", err)
	}

	return ToDomainList(truckModels), nil
}

func (r *Repository) Update(ctx context.Context, truckModify entities.TruckModify) (*entities.Truck, error) {
	if truckModify.ID == nil {
		return nil, fmt.Errorf("unexpected truck repository update error: empty id")
	}

	builder := qb.Update("trucks")

	// опциональные поля
	if truckModify.Name != nil {
		builder = builder.Set("name", *truckModify.Name)
	}
	if truckModify.Type != nil {
		builder = builder.Set("type", truckModify.Type.String())
	}
	if truckModify.Status != nil {
		builder = builder.Set("status", truckModify.Status.String())
	}
	if truckModify.Capacity != nil {
		builder = builder.
			Set("width", truckModify.Capacity.Width).
			Set("length", truckModify.Capacity.Length).
			Set("height", truckModify.Capacity.Height).
			Set("payload", truckModify.Capacity.Payload)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *truckModify.ID}).
		Suffix("RETURNING " + joinColumns(truckColumns))

	var truckDB TruckDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(truckDB.scanDest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrTruckNotFound
		}
		return nil, fmt.Errorf("unexpected truck repository update error: %w", err)
	}

	return ToDomain(&truckDB), nil
}

// UpdateStatus меняет статус, только если машина все еще в статусе from.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entities.TruckStatus) error {
	query := `
		UPDATE trucks
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3`

	tag, err := r.querier.Exec(ctx, query, to.String(), id, from.String())
	if err != nil {
		return fmt.Errorf("unexpected truck repository updatestatus error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrTruckStateChanged
	}
	return nil
}

func (r *Repository) SetAssignee(ctx context.Context, id, driverID uuid.UUID) error {
	query := `UPDATE trucks SET assigned_to = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.querier.Exec(ctx, query, driverID, id)
	if err != nil {
		if repository.ViolatesUnique(err, repository.ConstraintTruckAssignee) {
			return service.ErrConflict
		}
		return fmt.Errorf("unexpected truck repository setassignee error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrTruckNotFound
	}
	return nil
}

func (r *Repository) ClearAssignee(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE trucks SET assigned_to = NULL, updated_at = NOW() WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected truck repository clearassignee error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrTruckNotFound
	}
	return nil
}

// ClearAssigneeByDriver снимает водителя с любой его активной машины.
// Отсутствие такой машины не ошибка.
func (r *Repository) ClearAssigneeByDriver(ctx context.Context, driverID uuid.UUID) error {
	query := `UPDATE trucks SET assigned_to = NULL, updated_at = NOW() WHERE assigned_to = $1`

	if _, err := r.querier.Exec(ctx, query, driverID); err != nil {
		return fmt.Errorf("unexpected truck repository clearassigneebydriver error: %w", err)
	}
	return nil
}

// FindEligible ищет первую подходящую под груз машину и блокирует ее.
// Строки, уже заблокированные параллельными назначениями, пропускаются.
func (r *Repository) FindEligible(ctx context.Context, load *entities.Load) (*entities.Truck, error) {
	builder := qb.
		Select(truckColumns...).
		From("trucks").
		Where(sq.And{
			sq.NotEq{"assigned_to": nil},
			sq.Eq{"status": entities.TruckInService.String()},
			sq.GtOrEq{"payload": load.Payload},
			sq.GtOrEq{"width": load.Dimensions.Width},
			sq.GtOrEq{"length": load.Dimensions.Length},
			sq.GtOrEq{"height": load.Dimensions.Height},
		}).
		OrderBy("created_at", "id").
		Limit(1).
		Suffix("FOR UPDATE SKIP LOCKED")

	var truckDB TruckDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(truckDB.scanDest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, matcher.ErrNoEligibleTruck
		}
		return nil, fmt.Errorf("unexpected truck repository findeligible error: %w", err)
	}

	return ToDomain(&truckDB), nil
}

func (r *Repository) HasOnLoadByCreator(ctx context.Context, driverID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM trucks WHERE created_by = $1 AND status = $2)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, driverID, entities.TruckOnLoad.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected truck repository hasonload error: %w", err)
	}
	return exists, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM trucks WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected truck repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrTruckNotFound
	}
	return nil
}
