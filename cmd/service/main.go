package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "freight/internal/app"
	"freight/internal/handlers/rest/healthcheck_head"
	"freight/internal/handlers/rest/load_delete"
	"freight/internal/handlers/rest/load_get"
	"freight/internal/handlers/rest/load_info_put"
	"freight/internal/handlers/rest/load_post_patch"
	"freight/internal/handlers/rest/load_state_patch"
	"freight/internal/handlers/rest/loads_get"
	"freight/internal/handlers/rest/loads_post"
	"freight/internal/handlers/rest/ping_get"
	"freight/internal/handlers/rest/truck_assign_patch"
	"freight/internal/handlers/rest/truck_delete"
	"freight/internal/handlers/rest/truck_get"
	"freight/internal/handlers/rest/truck_put"
	"freight/internal/handlers/rest/truck_unassign_patch"
	"freight/internal/handlers/rest/trucks_get"
	"freight/internal/handlers/rest/trucks_post"
	"freight/internal/pkg/config"
	"freight/internal/pkg/dotenv"
	metrics_system "freight/internal/pkg/metrics"
	"freight/internal/pkg/middlewares/auth"
	"freight/internal/pkg/middlewares/graceful_shutdown"
	"freight/internal/pkg/middlewares/metrics"
	"freight/internal/pkg/middlewares/rate_limiter"
	"freight/internal/pkg/middlewares/timeout"
	"freight/internal/pkg/postgres"
	"freight/pkg/logger"
	"freight/pkg/logger/zap_adapter"
	"freight/pkg/token_bucket"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// логгер зависит от LOG_LEVEL, поэтому окружение читаем до него
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting freight application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background(), это часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer func() {
		stop()
		businessApp.BackgroundWorkers.Wait()
	}()

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(log, &isShuttingDown, businessApp),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал при выключенном pprof, кейс никогда не сработает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, app.DBPinger)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	api := router.NewRoute().Subrouter()
	api.Use(auth.Middleware(log, app.IdentityResolver))

	api.Handle("/loads", loads_post.New(log, app.ServiceLoad)).Methods("POST")
	api.Handle("/loads", loads_get.New(log, app.ServiceLoad)).Methods("GET")
	api.Handle("/loads/{id}", load_get.New(log, app.ServiceLoad)).Methods("GET")
	api.Handle("/loads/{id}", load_delete.New(log, app.ServiceLoad)).Methods("DELETE")
	api.Handle("/loads/{id}/info", load_info_put.New(log, app.ServiceLoad)).Methods("PUT")
	api.Handle("/loads/{id}/post", load_post_patch.New(log, app.ServiceAssignment)).Methods("PATCH")
	api.Handle("/loads/{id}/state", load_state_patch.New(log, app.ServiceDelivery)).Methods("PATCH")

	api.Handle("/trucks", trucks_post.New(log, app.ServiceTruck)).Methods("POST")
	api.Handle("/trucks", trucks_get.New(log, app.ServiceTruck)).Methods("GET")
	api.Handle("/trucks/{id}", truck_get.New(log, app.ServiceTruck)).Methods("GET")
	api.Handle("/trucks/{id}", truck_put.New(log, app.ServiceTruck)).Methods("PUT")
	api.Handle("/trucks/{id}", truck_delete.New(log, app.ServiceTruck)).Methods("DELETE")
	api.Handle("/trucks/{id}/assign", truck_assign_patch.New(log, app.ServiceTruck)).Methods("PATCH")
	api.Handle("/trucks/{id}/unassign", truck_unassign_patch.New(log, app.ServiceTruck)).Methods("PATCH")

	return router
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, app.DBPinger)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
