//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	orderevents "courier-rating/internal/gateway/kafka/orderevents"
	"courier-rating/internal/handlers/kafka-consumer/order_status_changed"
	code_get "courier-rating/internal/handlers/rest/code_get"
	courier_post "courier-rating/internal/handlers/rest/courier_post"
	couriers_get "courier-rating/internal/handlers/rest/couriers_get"
	login_post "courier-rating/internal/handlers/rest/login_post"
	order_assign_post "courier-rating/internal/handlers/rest/order_assign_post"
	order_delete "courier-rating/internal/handlers/rest/order_delete"
	order_get "courier-rating/internal/handlers/rest/order_get"
	order_post "courier-rating/internal/handlers/rest/order_post"
	order_put "courier-rating/internal/handlers/rest/order_put"
	order_status_put "courier-rating/internal/handlers/rest/order_status_put"
	orders_get "courier-rating/internal/handlers/rest/orders_get"
	rating_post "courier-rating/internal/handlers/rest/rating_post"
	user_delete "courier-rating/internal/handlers/rest/user_delete"
	user_put "courier-rating/internal/handlers/rest/user_put"
	"courier-rating/internal/handlers/tasks/code_cleanup"
	"courier-rating/internal/handlers/tasks/mirror_resync"
	"courier-rating/internal/mirror"
	"courier-rating/internal/pkg/config"
	"courier-rating/internal/pkg/kafka"

	orderRepo "courier-rating/internal/repository/order"
	userRepo "courier-rating/internal/repository/user"
	orderService "courier-rating/internal/service/order"
	"courier-rating/internal/service/ratingcode"
	userService "courier-rating/internal/service/user"
	orderStorage "courier-rating/internal/storage/order"
	userStorage "courier-rating/internal/storage/user"

	"courier-rating/pkg/background"
	"courier-rating/pkg/logger"
	"courier-rating/pkg/querier"
	"courier-rating/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	MirrorResyncInterval time.Duration
	CodeCleanupInterval  time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceUser       ServiceUser
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_put.Service
	order_get.Service
	orders_get.Service
	order_delete.Service
	order_assign_post.Service
	order_status_put.Service
	code_get.Service
	rating_post.Service
}

type ServiceUser interface {
	login_post.Service
	courier_post.Service
	couriers_get.Service
	user_put.Service
	user_delete.Service
	user_delete.PasswordConfirmer

	// EnsureAdmin создает стартового администратора при запуске сервиса.
	EnsureAdmin(ctx context.Context, username, password, name string) error
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMirrorResyncInterval,
		provideCodeCleanupInterval,

		provideOrderRepository,
		provideUserRepository,
		provideOrderMirror,
		provideUserMirror,
		provideOrderStorage,
		provideUserStorage,

		provideCodeRegistry,
		provideOrderEventsGateway,
		provideServiceUser,
		provideServiceOrder,

		provideMirrorResyncTask,
		provideCodeCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceUser), new(*userService.User)),

		wire.Bind(new(orderService.Repository), new(*orderStorage.Store)),
		wire.Bind(new(orderService.CourierProvider), new(*userService.User)),
		wire.Bind(new(orderService.CodeRegistry), new(*ratingcode.Registry)),
		wire.Bind(new(orderService.EventPublisher), new(*orderevents.Gateway)),
		wire.Bind(new(userService.Repository), new(*userStorage.Store)),
		wire.Bind(new(userService.AssignmentChecker), new(*orderStorage.Store)),
		wire.Bind(new(ratingcode.OrderFinder), new(*orderStorage.Store)),

		wire.Bind(new(mirror_resync.TxManager), new(*tx.Manager)),
		wire.Bind(new(mirror_resync.OrderSource), new(*orderRepo.Repository)),
		wire.Bind(new(mirror_resync.UserSource), new(*userRepo.Repository)),
		wire.Bind(new(mirror_resync.OrderMirror), new(*mirror.Orders)),
		wire.Bind(new(mirror_resync.UserMirror), new(*mirror.Users)),
		wire.Bind(new(code_cleanup.Registry), new(*ratingcode.Registry)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderRefresher order_status_changed.Refresher
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideOrderRepository,
		provideOrderMirror,
		provideOrderStorage,

		wire.Bind(new(order_status_changed.Refresher), new(*orderStorage.Store)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideOrderMirror(cfg *config.Config) (*mirror.Orders, error) {
	return mirror.NewOrders(cfg.Mirror.Dir)
}

func provideUserMirror(cfg *config.Config) (*mirror.Users, error) {
	return mirror.NewUsers(cfg.Mirror.Dir)
}

func provideOrderStorage(
	log logger.Logger,
	remote *orderRepo.Repository,
	orders *mirror.Orders,
) *orderStorage.Store {
	return orderStorage.New(remote, orders, log)
}

func provideUserStorage(
	log logger.Logger,
	remote *userRepo.Repository,
	users *mirror.Users,
) *userStorage.Store {
	return userStorage.New(remote, users, log)
}

func provideCodeRegistry(cfg *config.Config, orders ratingcode.OrderFinder) *ratingcode.Registry {
	return ratingcode.New(orders, ratingcode.NewSystemClock(), cfg.RatingCodes.TTL)
}

func provideOrderEventsGateway(
	log logger.Logger,
	producer *kafka.Producer,
	cfg *config.Config,
) *orderevents.Gateway {
	return orderevents.New(log, producer, cfg.Kafka.Topic)
}

func provideServiceUser(
	repository userService.Repository,
	assignments userService.AssignmentChecker,
) *userService.User {
	return userService.New(repository, assignments)
}

func provideServiceOrder(
	repository orderService.Repository,
	couriers orderService.CourierProvider,
	codes orderService.CodeRegistry,
	events orderService.EventPublisher,
) *orderService.Order {
	return orderService.New(repository, couriers, codes, events)
}

func provideMirrorResyncInterval(cfg *config.Config) MirrorResyncInterval {
	return MirrorResyncInterval(cfg.Tasks.MirrorResyncInterval)
}

func provideCodeCleanupInterval(cfg *config.Config) CodeCleanupInterval {
	return CodeCleanupInterval(cfg.Tasks.CodeCleanupInterval)
}

func provideMirrorResyncTask(
	log logger.Logger,
	txManager mirror_resync.TxManager,
	orders mirror_resync.OrderSource,
	users mirror_resync.UserSource,
	orderMirror mirror_resync.OrderMirror,
	userMirror mirror_resync.UserMirror,
	interval MirrorResyncInterval,
) *mirror_resync.MirrorResync {
	return mirror_resync.NewMirrorResync(log, txManager, orders, users, orderMirror, userMirror, time.Duration(interval))
}

func provideCodeCleanupTask(
	log logger.Logger,
	registry code_cleanup.Registry,
	interval CodeCleanupInterval,
) *code_cleanup.CodeCleanup {
	return code_cleanup.NewCodeCleanup(log, registry, time.Duration(interval))
}

func provideTaskList(
	mirrorResyncTask *mirror_resync.MirrorResync,
	codeCleanupTask *code_cleanup.CodeCleanup,
) []background.Task {
	return []background.Task{
		mirrorResyncTask,
		codeCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
