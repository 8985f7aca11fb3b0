package load

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/entities"
	"freight/internal/repository"
	service "freight/internal/service/load"
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

func (r *Repository) Create(ctx context.Context, load *entities.Load) error {
	loadDB := FromDomain(load)

	builder := qb.
		Insert("loads").
		Columns(
			"id", "created_by", "status", "state",
			"width", "length", "height", "payload",
			"pickup_address", "delivery_address",
		).
		Values(
			loadDB.ID, loadDB.CreatedBy, loadDB.Status, loadDB.State,
			loadDB.Width, loadDB.Length, loadDB.Height, loadDB.Payload,
			loadDB.PickupAddress, loadDB.DeliveryAddress,
		).
		Suffix("RETURNING created_at, updated_at")

	err := r.querier.QueryRowBuilder(ctx, builder).Scan(&load.CreatedAt, &load.UpdatedAt)
	if err != nil {
		if repository.ViolatesForeignKey(err) {
			return userservice.ErrUserNotFound
		}
		return fmt.Errorf("unexpected load repository create error: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Load, error) {
	load, err := r.getByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	logs, err := r.logsByLoadIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	load.Logs = logs[id]

	return load, nil
}

// GetByIDForUpdate блокирует строку груза до конца текущей транзакции.
// Журнал не читается.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Load, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entities.Load, error) {
	builder := qb.
		Select(loadColumns...).
		From("loads").
		Where(sq.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	var loadDB LoadDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(loadDB.scanDest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrLoadNotFound
		}
		return nil, fmt.Errorf("unexpected load repository getbyid error: %w", err)
	}

	return ToDomain(&loadDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.LoadFilter) ([]entities.Load, error) {
	builder := qb.
		Select(loadColumns...).
		From("loads").
		OrderBy("created_at DESC", "id")

	if filter.CreatedBy != nil {
		builder = builder.Where(sq.Eq{"created_by": *filter.CreatedBy})
	}
	if filter.AssignedTo != nil {
		builder = builder.Where(sq.Eq{"assigned_to": *filter.AssignedTo})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository list error: %w", err)
	}
	defer rows.Close()

	loads := make([]entities.Load, 0, filter.Limit)
	ids := make([]uuid.UUID, 0, filter.Limit)
	for rows.Next() {
		var loadDB LoadDB
		if err := rows.Scan(loadDB.scanDest()...); err != nil {
			return nil, fmt.Errorf("unexpected load repository list error: %w", err)
		}
		loads = append(loads, *ToDomain(&loadDB))
		ids = append(ids, loadDB.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected load repository list error: %w", err)
	}

	if len(ids) == 0 {
		return loads, nil
	}

	logs, err := r.logsByLoadIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range loads {
		loads[i].Logs = logs[loads[i].ID]
	}

	return loads, nil
}

func (r *Repository) Update(ctx context.Context, loadModify entities.LoadModify) (*entities.Load, error) {
	if loadModify.ID == nil {
		return nil, fmt.Errorf("unexpected load repository update error: empty id")
	}

	builder := qb.Update("loads")

	// опциональные поля
	if loadModify.AssignedTo != nil {
		builder = builder.Set("assigned_to", *loadModify.AssignedTo)
	}
	if loadModify.TruckID != nil {
		builder = builder.Set("truck_id", *loadModify.TruckID)
	}
	if loadModify.Status != nil {
		builder = builder.Set("status", loadModify.Status.String())
	}
	if loadModify.State != nil {
		builder = builder.Set("state", loadModify.State.String())
	}
	if d := loadModify.Dimensions; d != nil {
		if d.Width != nil {
			builder = builder.Set("width", *d.Width)
		}
		if d.Length != nil {
			builder = builder.Set("length", *d.Length)
		}
		if d.Height != nil {
			builder = builder.Set("height", *d.Height)
		}
	}
	if loadModify.Payload != nil {
		builder = builder.Set("payload", *loadModify.Payload)
	}
	if loadModify.PickupAddress != nil {
		builder = builder.Set("pickup_address", *loadModify.PickupAddress)
	}
	if loadModify.DeliveryAddress != nil {
		builder = builder.Set("delivery_address", *loadModify.DeliveryAddress)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *loadModify.ID}).
		Suffix("RETURNING " + joinColumns(loadColumns))

	var loadDB LoadDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(loadDB.scanDest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrLoadNotFound
		}
		return nil, fmt.Errorf("unexpected load repository update error: %w", err)
	}

	return ToDomain(&loadDB), nil
}

func (r *Repository) AppendLog(ctx context.Context, loadID uuid.UUID, message string) error {
	query := `INSERT INTO load_logs (load_id, message) VALUES ($1, $2)`

	_, err := r.querier.Exec(ctx, query, loadID, message)
	if err != nil {
		return fmt.Errorf("unexpected load repository appendlog error: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM loads WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected load repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrLoadNotFound
	}
	return nil
}

func (r *Repository) logsByLoadIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]entities.LoadLog, error) {
	query := `
		SELECT load_id, message, created_at
		FROM load_logs
		WHERE load_id = ANY($1)
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository logs error: %w", err)
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]LoadLogDB, len(ids))
	for rows.Next() {
		var logDB LoadLogDB
		if err := rows.Scan(&logDB.LoadID, &logDB.Message, &logDB.CreatedAt); err != nil {
			return nil, fmt.Errorf("unexpected load repository logs error: %w", err)
		}
		grouped[logDB.LoadID] = append(grouped[logDB.LoadID], logDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected load repository logs error: %w", err)
	}

	res := make(map[uuid.UUID][]entities.LoadLog, len(grouped))
	for id, logs := range grouped {
		res[id] = ToDomainLogs(logs)
	}
	return res, nil
}
