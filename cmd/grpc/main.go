package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-sales-service/config"
	"github.com/fekuna/omnipos-sales-service/internal/auth"
	"github.com/fekuna/omnipos-sales-service/internal/server"
	"github.com/fekuna/omnipos-sales-service/internal/server/router"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
	"github.com/fekuna/omnipos-sales-service/pkg/broker"
	"github.com/fekuna/omnipos-sales-service/pkg/cache"
	"github.com/fekuna/omnipos-sales-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-sales-service/pkg/i18n"
	"github.com/fekuna/omnipos-sales-service/pkg/lock"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/fekuna/omnipos-sales-service/pkg/search"

	customerH "github.com/fekuna/omnipos-sales-service/internal/customer/handler"
	customerUCPkg "github.com/fekuna/omnipos-sales-service/internal/customer/usecase"

	invH "github.com/fekuna/omnipos-sales-service/internal/inventory/handler"
	invListenerPkg "github.com/fekuna/omnipos-sales-service/internal/inventory/listener"
	invSchedulerPkg "github.com/fekuna/omnipos-sales-service/internal/inventory/scheduler"
	invUCPkg "github.com/fekuna/omnipos-sales-service/internal/inventory/usecase"

	ledgerUCPkg "github.com/fekuna/omnipos-sales-service/internal/ledger/usecase"

	prodH "github.com/fekuna/omnipos-sales-service/internal/product/handler"
	prodUCPkg "github.com/fekuna/omnipos-sales-service/internal/product/usecase"

	quoteH "github.com/fekuna/omnipos-sales-service/internal/quote/handler"
	quoteUCPkg "github.com/fekuna/omnipos-sales-service/internal/quote/usecase"

	saleH "github.com/fekuna/omnipos-sales-service/internal/sale/handler"
	saleUCPkg "github.com/fekuna/omnipos-sales-service/internal/sale/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.IsDevelopment(),
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	i18n.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Storage backend
	var (
		repos *repositories
		tx    storage.Transactor
	)
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

		if cfg.Postgres.AutoMigrate {
			if err := storage.Migrate(ctx, db); err != nil {
				appLogger.Fatal("Could not apply migrations", zap.Error(err))
			}
		}
		repos = newPostgresRepositories(db)
		tx = storage.NewPGTransactor(db)
	default:
		repos = newMemoryRepositories(memdb.New())
		tx = storage.NoTxTransactor{}
		appLogger.Warn("Using in-memory store; data is lost on restart")
	}

	// 4. Redis cache and locks
	var redisClient *cache.RedisClient
	if cfg.Redis.Enabled {
		var err error
		redisClient, err = cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	var locker lock.Locker = lock.NewLocal()
	if cfg.Lock.Backend == config.LockRedis {
		locker = lock.NewRedis(redisClient.Client, cfg.Lock.TTL, cfg.Lock.Backoff)
	}

	// 5. Kafka
	var publisher broker.Publisher = broker.NopPublisher{}
	var restockConsumer *broker.KafkaConsumer
	if cfg.Kafka.Enabled {
		publisher = broker.NewProducer(&broker.Config{Brokers: cfg.Kafka.Brokers})
		restockConsumer = broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.RestockTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer restockConsumer.Close()
		appLogger.Info("Connected to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers))
	}
	defer publisher.Close()

	// 6. Elasticsearch
	var esClient *search.Client
	if cfg.Elastic.Enabled {
		var err error
		esClient, err = search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Elasticsearch, search falls back to the store", zap.Error(err))
			esClient = nil
		} else {
			appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}

	// 7. Initialize UseCases
	prodUC := prodUCPkg.NewProductUseCase(repos.product, locker, redisClient, esClient, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(repos.inventory, locker, tx, prodUC, appLogger)
	ledgerUC := ledgerUCPkg.NewLedgerUseCase(repos.ledger, repos.customer, locker, tx, publisher, cfg.Kafka.PaymentsTopic, appLogger)
	customerUC := customerUCPkg.NewCustomerUseCase(repos.customer, ledgerUC, locker, appLogger)
	saleUC := saleUCPkg.NewSaleUseCase(saleUCPkg.Dependencies{
		Repo:          repos.sale,
		Products:      repos.inventory,
		Stock:         invUC,
		Customers:     repos.customer,
		Ledger:        ledgerUC,
		Sequences:     repos.sequence,
		Locker:        locker,
		Tx:            tx,
		Catalog:       prodUC,
		Publisher:     publisher,
		Topic:         cfg.Kafka.SalesTopic,
		CommitTimeout: cfg.Sales.CommitTimeout,
	}, appLogger)
	quoteUC := quoteUCPkg.NewQuoteUseCase(repos.quote, repos.inventory, repos.sequence, locker, tx, appLogger)

	// 8. Background workers
	if restockConsumer != nil {
		go invListenerPkg.NewInventoryListener(restockConsumer, invUC, appLogger).Start(ctx)
	}

	lowStock := invSchedulerPkg.NewScheduler(cfg.Scheduler.LowStockCron, invUC, publisher, cfg.Kafka.LowStockTopic, appLogger)
	if err := lowStock.Start(); err != nil {
		appLogger.Fatal("Could not start low stock scheduler", zap.Error(err))
	}
	defer lowStock.Stop()

	// 9. Servers
	authn := &auth.Authenticator{
		Secret:       cfg.JWT.SecretKey,
		AllowHeaders: cfg.IsDevelopment(),
	}

	grpcServer := server.NewGRPCServer(authn, cfg.Server.RequestTimeout, server.Services{
		Product:   prodH.NewProductHandler(prodUC, appLogger),
		Inventory: invH.NewInventoryHandler(invUC, appLogger),
		Customer:  customerH.NewCustomerHandler(customerUC, ledgerUC, appLogger),
		Sale:      saleH.NewSaleHandler(saleUC, appLogger),
		Quote:     quoteH.NewQuoteHandler(quoteUC, appLogger),
	})

	lis, err := net.Listen("tcp", withColon(cfg.Server.GRPCPort))
	if err != nil {
		appLogger.Fatal("failed to listen", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:              withColon(cfg.Server.HTTPPort),
		Handler:           router.New(saleUC, ledgerUC, authn, cfg.Server.RequestTimeout, appLogger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info("Starting gRPC server", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve gRPC", zap.Error(err))
		}
	}()
	go func() {
		appLogger.Info("Starting HTTP gateway", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve HTTP", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn("HTTP shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func withColon(port string) string {
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
