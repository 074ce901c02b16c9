package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/app"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/config"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/handler"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/jobs"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/kvstore"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/metrics"
	internalRedis "github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/redis"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository/kv"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)
	metrics.Register()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the database driver can be instrumented.
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		var err error
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize New Relic")
			nrApp = nil
		} else {
			log.Info().Str("app", cfg.NewRelic.AppName).Msg("New Relic enabled")
		}
	}

	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	log.Info().Msg("connected to PostgreSQL")

	store := kvstore.NewPostgresStore(db)
	if err := store.InitSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize collections schema")
	}

	// Redis is optional: without it the engine loses the placement lock
	// and idempotency replay but stays correct via the version check.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, continuing without it")
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info().Msg("connected to Redis")
		}
	}

	deps := wireDependencies(store, redisClient)

	if cfg.Seed.Path != "" {
		if err := app.ApplySeed(ctx, cfg.Seed.Path, deps.seedRepos); err != nil {
			log.Fatal().Err(err).Str("path", cfg.Seed.Path).Msg("failed to apply seed file")
		}
	}

	var runner *jobs.Runner
	if cfg.Jobs.Enabled {
		runner = jobs.NewRunner(cfg.Jobs, deps.bookingRepo, deps.partnerRepo, deps.settlement)
		runner.Start()
	}

	server := newServer(deps, redisClient, nrApp, cfg)

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	if runner != nil {
		runner.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// dependencies holds the wired handlers plus the pieces main needs
// directly for seeding and jobs.
type dependencies struct {
	bookingHandler     *handler.BookingHandler
	carHandler         *handler.CarHandler
	partnerHandler     *handler.PartnerHandler
	customerHandler    *handler.CustomerHandler
	transactionHandler *handler.TransactionHandler
	invoiceHandler     *handler.InvoiceHandler
	bookingRepo        *kv.BookingRepository
	partnerRepo        *kv.PartnerRepository
	settlement         *service.SettlementService
	seedRepos          app.SeedRepos
}

// wireDependencies wires repositories, services and handlers.
func wireDependencies(store kvstore.Store, redisClient *redis.Client) *dependencies {
	var lockStore internalRedis.LockStoreInterface
	var cacheStore internalRedis.CacheStoreInterface
	if redisClient != nil {
		lockStore = internalRedis.NewLockStore(redisClient)
		cacheStore = internalRedis.NewCacheStore(redisClient)
	}

	carRepo := kv.NewCarRepository(store)
	bookingRepo := kv.NewBookingRepository(store)
	partnerRepo := kv.NewPartnerRepository(store)
	customerRepo := kv.NewCustomerRepository(store)
	driverRepo := kv.NewDriverRepository(store)
	pricingRepo := kv.NewPricingRepository(store)
	transactionRepo := kv.NewTransactionRepository(store)
	invoiceRepo := kv.NewInvoiceRepository(store)

	pricingService := service.NewPricingService(pricingRepo)
	schedulerService := service.NewSchedulerService(bookingRepo)
	bookingService := service.NewBookingService(
		bookingRepo, carRepo, customerRepo, driverRepo, pricingRepo,
		invoiceRepo, pricingService, lockStore, cacheStore,
	)
	settlementService := service.NewSettlementService(partnerRepo, carRepo, bookingRepo, transactionRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, bookingRepo, customerRepo)
	fleetService := service.NewFleetService(carRepo, partnerRepo, customerRepo, driverRepo, transactionRepo, cacheStore)

	return &dependencies{
		bookingHandler:     handler.NewBookingHandler(bookingService),
		carHandler:         handler.NewCarHandler(fleetService, schedulerService),
		partnerHandler:     handler.NewPartnerHandler(fleetService, settlementService),
		customerHandler:    handler.NewCustomerHandler(fleetService),
		transactionHandler: handler.NewTransactionHandler(fleetService),
		invoiceHandler:     handler.NewInvoiceHandler(invoiceService),
		bookingRepo:        bookingRepo,
		partnerRepo:        partnerRepo,
		settlement:         settlementService,
		seedRepos: app.SeedRepos{
			Cars:      carRepo,
			Partners:  partnerRepo,
			Customers: customerRepo,
			Drivers:   driverRepo,
			Pricing:   pricingRepo,
		},
	}
}

// newServer builds the HTTP server around the router.
func newServer(deps *dependencies, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	router := app.NewRouter(app.RouterDeps{
		BookingHandler:     deps.bookingHandler,
		CarHandler:         deps.carHandler,
		PartnerHandler:     deps.partnerHandler,
		CustomerHandler:    deps.customerHandler,
		TransactionHandler: deps.transactionHandler,
		InvoiceHandler:     deps.invoiceHandler,
		RedisClient:        redisClient,
		NewRelicApp:        nrApp,
	})

	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

// setupLogging configures the global zerolog logger.
func setupLogging(level string) {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
