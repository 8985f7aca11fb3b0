//go:build integration

package integration_test

import (
	"context"
	"log"
	"net"
	"sync"
	"testing"
	"time"

	"freight/internal/pkg/config"
	"freight/internal/pkg/postgres"
	"freight/migrations"
	"freight/pkg/logger/zap_adapter"
	"freight/pkg/querier"
	"freight/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage = "postgres:16-alpine"
	dbName        = "freight"
	dbUser        = "freight"
	dbPassword    = "freight"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	setupOnce       sync.Once
)

// setup поднимает один контейнер postgres на весь пакет тестов и
// накатывает миграции. Контейнер убирает ryuk после выхода процесса.
func setup() {
	setupOnce.Do(func() {
		ctx := context.Background()

		container, err := tcpostgres.Run(ctx,
			postgresImage,
			tcpostgres.WithDatabase(dbName),
			tcpostgres.WithUsername(dbUser),
			tcpostgres.WithPassword(dbPassword),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("failed to start postgres container: %v", err)
		}

		endpoint, err := container.Endpoint(ctx, "")
		if err != nil {
			log.Fatalf("failed to get postgres endpoint: %v", err)
		}
		host, port, err := net.SplitHostPort(endpoint)
		if err != nil {
			log.Fatalf("failed to parse postgres endpoint: %v", err)
		}

		cfg := &config.Database{
			Host:     host,
			Port:     port,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  "disable",
		}

		connPool, err := postgres.NewConnPool(ctx, zap_adapter.NewNop(), cfg)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}

		if err := migrations.Up(ctx, connPool); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		poolInstance = connPool
		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})
}

func GetQuerier() *querier.Querier {
	setup()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	setup()
	return tx.New(poolInstance)
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()
	if setupSql == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE load_logs, loads, trucks, users RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

// InsertUser создает пользователя напрямую, в сервисе пользователей нет записи.
func InsertUser(t *testing.T, role string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := GetQuerier().Exec(context.Background(), `
		INSERT INTO users (id, role, email, username)
		VALUES ($1, $2, $3, $4)`,
		id, role, id.String()+"@example.com", "user-"+id.String()[:8],
	)
	require.NoError(t, err)
	return id
}
