//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"freight/internal/handlers/rest/healthcheck_head"
	"freight/internal/handlers/rest/load_delete"
	"freight/internal/handlers/rest/load_get"
	"freight/internal/handlers/rest/load_info_put"
	"freight/internal/handlers/rest/load_post_patch"
	"freight/internal/handlers/rest/load_state_patch"
	"freight/internal/handlers/rest/loads_get"
	"freight/internal/handlers/rest/loads_post"
	"freight/internal/handlers/rest/truck_assign_patch"
	"freight/internal/handlers/rest/truck_delete"
	"freight/internal/handlers/rest/truck_get"
	"freight/internal/handlers/rest/truck_put"
	"freight/internal/handlers/rest/truck_unassign_patch"
	"freight/internal/handlers/rest/trucks_get"
	"freight/internal/handlers/rest/trucks_post"
	"freight/internal/handlers/tasks/fleet_metrics"
	"freight/internal/pkg/config"
	"freight/internal/pkg/identity"
	"freight/internal/pkg/middlewares/auth"

	fleetRepo "freight/internal/repository/fleet"
	loadRepo "freight/internal/repository/load"
	truckRepo "freight/internal/repository/truck"
	userRepo "freight/internal/repository/user"
	assignmentService "freight/internal/service/assignment"
	deliveryService "freight/internal/service/delivery"
	fleetService "freight/internal/service/fleet"
	loadService "freight/internal/service/load"
	matcherService "freight/internal/service/matcher"
	truckService "freight/internal/service/truck"
	userService "freight/internal/service/user"

	"freight/pkg/background"
	"freight/pkg/logger"
	"freight/pkg/querier"
	"freight/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FleetMetricsInterval time.Duration

type Application struct {
	ServiceLoad       ServiceLoad
	ServiceTruck      ServiceTruck
	ServiceAssignment ServiceAssignment
	ServiceDelivery   ServiceDelivery
	IdentityResolver  auth.IdentityResolver
	DBPinger          healthcheck_head.Pinger
	BackgroundWorkers *background.Worker
}

type ServiceLoad interface {
	loads_post.Service
	loads_get.Service
	load_get.Service
	load_info_put.Service
	load_delete.Service
}

type ServiceTruck interface {
	trucks_post.Service
	trucks_get.Service
	truck_get.Service
	truck_put.Service
	truck_assign_patch.Service
	truck_unassign_patch.Service
	truck_delete.Service
}

type ServiceAssignment interface {
	load_post_patch.Service
}

type ServiceDelivery interface {
	load_state_patch.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideAuthConfig,
		provideFleetMetricsInterval,

		provideUserRepository,
		provideLoadRepository,
		provideTruckRepository,
		provideFleetRepository,

		provideServiceUser,
		provideServiceMatcher,
		provideServiceLoad,
		provideServiceTruck,
		provideServiceAssignment,
		provideServiceDelivery,
		provideServiceFleet,
		provideIdentityResolver,

		provideFleetMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLoad), new(*loadService.Load)),
		wire.Bind(new(ServiceTruck), new(*truckService.Truck)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Coordinator)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(auth.IdentityResolver), new(*identity.JWTResolver)),
		wire.Bind(new(healthcheck_head.Pinger), new(*pgxpool.Pool)),

		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(matcherService.Repository), new(*truckRepo.Repository)),
		wire.Bind(new(loadService.Repository), new(*loadRepo.Repository)),
		wire.Bind(new(truckService.Repository), new(*truckRepo.Repository)),
		wire.Bind(new(assignmentService.LoadRepository), new(*loadRepo.Repository)),
		wire.Bind(new(assignmentService.TruckRepository), new(*truckRepo.Repository)),
		wire.Bind(new(assignmentService.TruckMatcher), new(*matcherService.Matcher)),
		wire.Bind(new(deliveryService.LoadRepository), new(*loadRepo.Repository)),
		wire.Bind(new(deliveryService.TruckRepository), new(*truckRepo.Repository)),
		wire.Bind(new(fleetService.Repository), new(*fleetRepo.Repository)),

		wire.Bind(new(loadService.UserService), new(*userService.Service)),
		wire.Bind(new(truckService.UserService), new(*userService.Service)),
		wire.Bind(new(identity.UserService), new(*userService.Service)),

		wire.Bind(new(loadService.TxManager), new(*tx.Manager)),
		wire.Bind(new(truckService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(fleetService.TxManager), new(*tx.Manager)),

		wire.Bind(new(fleet_metrics.Service), new(*fleetService.Service)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAuthConfig(cfg *config.Config) *config.Auth {
	return &cfg.Auth
}

func provideFleetMetricsInterval(cfg *config.Config) FleetMetricsInterval {
	return FleetMetricsInterval(cfg.Tasks.FleetMetricsInterval)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideLoadRepository(querier *querier.Querier) *loadRepo.Repository {
	return loadRepo.New(querier)
}

func provideTruckRepository(querier *querier.Querier) *truckRepo.Repository {
	return truckRepo.New(querier)
}

func provideFleetRepository(querier *querier.Querier) *fleetRepo.Repository {
	return fleetRepo.New(querier)
}

func provideServiceUser(repository userService.Repository) *userService.Service {
	return userService.New(repository)
}

func provideServiceMatcher(repository matcherService.Repository) *matcherService.Matcher {
	return matcherService.New(repository)
}

func provideServiceLoad(
	repository loadService.Repository,
	users loadService.UserService,
	txManager loadService.TxManager,
) *loadService.Load {
	return loadService.New(repository, users, txManager)
}

func provideServiceTruck(
	repository truckService.Repository,
	users truckService.UserService,
	txManager truckService.TxManager,
) *truckService.Truck {
	return truckService.New(repository, users, txManager)
}

func provideServiceAssignment(
	loadRepository assignmentService.LoadRepository,
	truckRepository assignmentService.TruckRepository,
	matcher assignmentService.TruckMatcher,
	txManager assignmentService.TxManager,
) *assignmentService.Coordinator {
	return assignmentService.New(loadRepository, truckRepository, matcher, txManager)
}

func provideServiceDelivery(
	loadRepository deliveryService.LoadRepository,
	truckRepository deliveryService.TruckRepository,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(loadRepository, truckRepository, txManager)
}

func provideServiceFleet(
	repository fleetService.Repository,
	txManager fleetService.TxManager,
) *fleetService.Service {
	return fleetService.New(repository, txManager)
}

func provideIdentityResolver(cfg *config.Auth, users identity.UserService) *identity.JWTResolver {
	return identity.NewJWTResolver(cfg, users)
}

func provideFleetMetricsTask(
	log logger.Logger,
	service fleet_metrics.Service,
	interval FleetMetricsInterval,
) *fleet_metrics.FleetMetrics {
	return fleet_metrics.NewFleetMetrics(log, service, time.Duration(interval))
}

func provideTaskList(
	fleetMetricsTask *fleet_metrics.FleetMetrics,
) []background.Task {
	return []background.Task{
		fleetMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
