package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "courier-rating/internal/app"
	"courier-rating/internal/entities"
	"courier-rating/internal/handlers/rest/code_get"
	"courier-rating/internal/handlers/rest/courier_post"
	"courier-rating/internal/handlers/rest/couriers_get"
	"courier-rating/internal/handlers/rest/healthcheck_head"
	"courier-rating/internal/handlers/rest/login_post"
	"courier-rating/internal/handlers/rest/order_assign_post"
	"courier-rating/internal/handlers/rest/order_delete"
	"courier-rating/internal/handlers/rest/order_get"
	"courier-rating/internal/handlers/rest/order_post"
	"courier-rating/internal/handlers/rest/order_put"
	"courier-rating/internal/handlers/rest/order_status_put"
	"courier-rating/internal/handlers/rest/orders_get"
	"courier-rating/internal/handlers/rest/ping_get"
	"courier-rating/internal/handlers/rest/rating_post"
	"courier-rating/internal/handlers/rest/user_delete"
	"courier-rating/internal/handlers/rest/user_put"
	"courier-rating/internal/pkg/config"
	"courier-rating/internal/pkg/dotenv"
	"courier-rating/internal/pkg/kafka"
	metrics_system "courier-rating/internal/pkg/metrics"
	"courier-rating/internal/pkg/middlewares/authn"
	"courier-rating/internal/pkg/middlewares/graceful_shutdown"
	"courier-rating/internal/pkg/middlewares/metrics"
	"courier-rating/internal/pkg/middlewares/rate_limiter"
	"courier-rating/internal/pkg/middlewares/timeout"
	"courier-rating/internal/pkg/postgres"
	"courier-rating/pkg/logger"
	"courier-rating/pkg/logger/zap_adapter"
	"courier-rating/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
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

	mainLog.Info("starting courier-rating application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
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

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewProducer(log, cfg.Kafka.Sarama.Version, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	err = businessApp.ServiceUser.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword, "Administrator")
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
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
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
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
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
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

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	authed := authn.Middleware(log, cfg.Auth.JWTSecret)
	adminOnly := authn.RequireRole(log, entities.RoleAdmin)

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// Публичный контур: вход и оценка доставки по коду.
	router.Handle("/login", login_post.New(log, app.ServiceUser, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)).Methods("POST")
	router.Handle("/rating/{code}", code_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/rating", rating_post.New(log, app.ServiceOrder)).Methods("POST")

	// Заказы: чтение доступно обеим ролям, правки только администратору,
	// смену статуса хендлер сам ограничивает заказами курьера.
	router.Handle("/orders", authed(orders_get.New(log, app.ServiceOrder))).Methods("GET")
	router.Handle("/orders", authed(adminOnly(order_post.New(log, app.ServiceOrder)))).Methods("POST")
	router.Handle("/orders/{id}", authed(order_get.New(log, app.ServiceOrder))).Methods("GET")
	router.Handle("/orders/{id}", authed(adminOnly(order_put.New(log, app.ServiceOrder)))).Methods("PUT")
	router.Handle("/orders/{id}", authed(adminOnly(order_delete.New(log, app.ServiceOrder, app.ServiceUser)))).Methods("DELETE")
	router.Handle("/orders/{id}/assign", authed(adminOnly(order_assign_post.New(log, app.ServiceOrder)))).Methods("POST")
	router.Handle("/orders/{id}/status", authed(order_status_put.New(log, app.ServiceOrder))).Methods("PUT")

	// Учетные записи.
	router.Handle("/couriers", authed(adminOnly(couriers_get.New(log, app.ServiceUser)))).Methods("GET")
	router.Handle("/couriers", authed(adminOnly(courier_post.New(log, app.ServiceUser)))).Methods("POST")
	router.Handle("/users/{id}", authed(user_put.New(log, app.ServiceUser))).Methods("PUT")
	router.Handle("/users/{id}", authed(adminOnly(user_delete.New(log, app.ServiceUser, app.ServiceUser)))).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
