package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"freight/internal/pkg/config"
	"freight/internal/pkg/dotenv"
	"freight/internal/pkg/postgres"
	"freight/migrations"
	"freight/pkg/logger"
	"freight/pkg/logger/zap_adapter"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

func main() {
	if err := dotenv.LoadFile(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := buildCLI(zapLogger).ExecuteContext(ctx); err != nil {
		zapLogger.Error("migrate failed", logger.NewField("error", err))
		stop()
		_ = zapLogger.Sync()
		os.Exit(1) //nolint:gocritic // отложенные вызовы выполнены выше вручную
	}
}

func buildCLI(log logger.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Применение миграций схемы freight",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Накатить все новые миграции",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(cmd.Context(), log, func(ctx context.Context, provider *goose.Provider) error {
					results, err := provider.Up(ctx)
					if err != nil {
						return fmt.Errorf("up: %w", err)
					}
					for _, res := range results {
						log.Info("migration applied",
							logger.NewField("version", res.Source.Version),
							logger.NewField("duration", res.Duration.String()),
						)
					}
					if len(results) == 0 {
						log.Info("no migrations to apply")
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Откатить последнюю миграцию",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(cmd.Context(), log, func(ctx context.Context, provider *goose.Provider) error {
					res, err := provider.Down(ctx)
					if err != nil {
						return fmt.Errorf("down: %w", err)
					}
					log.Info("migration rolled back", logger.NewField("version", res.Source.Version))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Показать состояние миграций",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(cmd.Context(), log, func(ctx context.Context, provider *goose.Provider) error {
					statuses, err := provider.Status(ctx)
					if err != nil {
						return fmt.Errorf("status: %w", err)
					}
					for _, st := range statuses {
						fmt.Fprintf(cmd.OutOrStdout(), "%05d\t%s\t%s\n", st.Source.Version, st.State, st.Source.Path)
					}
					return nil
				})
			},
		},
	)

	return rootCmd
}

func withProvider(ctx context.Context, log logger.Logger, fn func(context.Context, *goose.Provider) error) error {
	dbConfig, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, log, dbConfig)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	provider, db, err := migrations.NewProvider(pool)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, provider)
}
