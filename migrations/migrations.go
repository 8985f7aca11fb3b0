// Package migrations хранит схему базы и применяет ее через goose.
// Используется cmd/migrate и интеграционными тестами репозиториев.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// NewProvider возвращает goose provider поверх database/sql обертки пула.
// Закрывать нужно возвращаемый *sql.DB, пул остается жить.
func NewProvider(pool *pgxpool.Pool) (*goose.Provider, *sql.DB, error) {
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("goose provider: %w", err)
	}
	return provider, db, nil
}

// Up накатывает все новые миграции.
func Up(ctx context.Context, pool *pgxpool.Pool) error {
	provider, db, err := NewProvider(pool)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
