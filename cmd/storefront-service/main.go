package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/storefront-search/internal/catalog"
	"github.com/iyhunko/storefront-search/internal/config"
	httpAPI "github.com/iyhunko/storefront-search/internal/http"
	"github.com/iyhunko/storefront-search/internal/http/controller"
	"github.com/iyhunko/storefront-search/internal/http/middleware"
	"github.com/iyhunko/storefront-search/internal/logger"
	"github.com/iyhunko/storefront-search/internal/metrics"
	"github.com/iyhunko/storefront-search/internal/payment"
	"github.com/iyhunko/storefront-search/internal/repository"
	reporedis "github.com/iyhunko/storefront-search/internal/repository/redis"
	"github.com/iyhunko/storefront-search/internal/repository/sql"
	"github.com/iyhunko/storefront-search/internal/search"
	"github.com/iyhunko/storefront-search/internal/service"
	sqspkg "github.com/iyhunko/storefront-search/internal/sqs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)
	logger.InitJSONLogger(conf.DebugMode)
	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := sql.StartDB(ctx, conf.Database)
	handleErr("starting database", err)
	defer db.Close()

	eventRepository := sql.NewEventRepository(db)

	// Store state lives in Postgres by default. With Redis the checkout event and the
	// cart clear can no longer share a transaction.
	var (
		state    repository.StateRepository
		recorder service.CheckoutRecorder
	)
	switch conf.StateBackend {
	case config.StateBackendRedis:
		client, err := reporedis.NewClient(ctx, conf.Redis)
		handleErr("connecting to redis", err)
		defer client.Close()
		redisState := reporedis.NewStateRepository(client)
		state = redisState
		recorder = service.NewSequentialCheckoutRecorder(eventRepository, redisState)
	default:
		state = sql.NewStateRepository(db)
		recorder = sql.NewTransactionalRepository(db)
	}

	products := catalog.Build(catalog.NewSequence(), catalog.NewFakerGenerator(conf.Catalog.Seed), catalog.DefaultSpecs())
	slog.Info("Catalog built", slog.Int("products", products.Len()), slog.Uint64("seed", conf.Catalog.Seed))
	engine := search.NewEngine(products, search.DefaultOptions())

	sqsClient, err := sqspkg.NewClient(ctx, conf.AWS)
	handleErr("creating SQS client", err)
	sqsPublisher := sqspkg.NewPublisher(sqsClient, conf.AWS.SQSQueueURL)

	storeService := service.NewStoreService(state, products)
	catalogService := service.NewCatalogService(products, engine, storeService)
	checkoutService := service.NewCheckoutService(storeService, payment.NewGateway(conf.Payment), recorder)

	outboxWorker := service.NewOutboxWorker(eventRepository, sqsPublisher, conf.Outbox.Interval)
	go outboxWorker.Start(ctx)

	router := httpAPI.InitRouter(gin.New(), httpAPI.Controllers{
		Base:     controller.New(),
		Catalog:  controller.NewCatalogController(catalogService),
		Store:    controller.NewStoreController(storeService),
		Checkout: controller.NewCheckoutController(checkoutService),
	}, middleware.NewRateLimiter(conf.SearchLimit))
	httpServer := &http.Server{
		Addr:              ":" + conf.HTTPServer.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		slog.Info("HTTP server starting", slog.String("port", conf.HTTPServer.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			handleErr("listening to HTTP requests", err)
		}
	}()

	metricsServer := metrics.StartMetricsServer(conf)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	slog.Info("Shutting down gracefully...")

	outboxWorker.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", slog.Any("err", err))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Metrics server shutdown failed", slog.Any("err", err))
	}
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
