package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ramsey-B/clover/config"
	"github.com/Ramsey-B/clover/internal/repositories/areaactivity"
	"github.com/Ramsey-B/clover/internal/repositories/employee"
	"github.com/Ramsey-B/clover/internal/repositories/legacy"
	"github.com/Ramsey-B/clover/internal/repositories/project"
	areaactivityservice "github.com/Ramsey-B/clover/internal/services/areaactivity"
	employeeservice "github.com/Ramsey-B/clover/internal/services/employee"
	"github.com/Ramsey-B/clover/internal/services/migration"
	projectservice "github.com/Ramsey-B/clover/internal/services/project"
	"github.com/Ramsey-B/clover/pkg/database"
	"github.com/Ramsey-B/clover/pkg/docstore"
	"github.com/Ramsey-B/clover/pkg/events"
	"github.com/Ramsey-B/clover/pkg/kafka"
	"github.com/Ramsey-B/clover/pkg/middleware"
	"github.com/Ramsey-B/clover/pkg/redis"
	areaactivityroutes "github.com/Ramsey-B/clover/pkg/routes/areaactivity"
	"github.com/Ramsey-B/clover/pkg/routes/health"
	migrationroutes "github.com/Ramsey-B/clover/pkg/routes/migration"
	projectroutes "github.com/Ramsey-B/clover/pkg/routes/project"
	"github.com/Ramsey-B/clover/pkg/startup"
	"github.com/Ramsey-B/clover/pkg/tracing"
	"github.com/Ramsey-B/clover/pkg/tracing/exporters"
)

func main() {
	cfg, err := config.Load(".env", ".env.local")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, syncLogger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer syncLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.WithError(err).Error("clover stopped with error")
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) (ectologger.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.PrettyLogs {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := zapCfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return zapadapter.NewZapEctoLogger(zapLogger, nil), func() { _ = zapLogger.Sync() }, nil
}

func run(ctx context.Context, cfg config.Config, logger ectologger.Logger) error {
	shutdownTracing, err := setupTracing(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.WithError(err).Warn("failed to flush traces")
		}
	}()

	checker := health.NewChecker(cfg.Version)
	deps := startup.NewStartup(logger, cfg.StartupMaxAttempts)

	var mongoDep *mongoDependency
	if cfg.StoreBackend == config.StoreBackendMongo {
		mongoDep = &mongoDependency{
			cfg: docstore.Config{
				URI:            cfg.MongoURI,
				Database:       cfg.MongoDatabase,
				ConnectTimeout: cfg.MongoConnectTimeout,
			},
			logger: logger,
		}
		deps.AddDependency(mongoDep)
		deps.AddDependency(&indexDependency{mongo: mongoDep, logger: logger})
		checker.AddCheck("mongo", mongoDep)
	}

	var opts []migration.Option
	if cfg.RedisEnabled {
		client := redis.NewClient(redis.Config{
			Addr:        cfg.RedisAddr(),
			Password:    cfg.RedisPassword,
			DB:          cfg.RedisDB,
			DialTimeout: 5 * time.Second,
		}, logger)
		deps.AddDependency(&redisDependency{client: client})
		checker.AddCheck("redis", client)
		if cfg.MigrationLockEnabled {
			locker := redis.NewLocker(client, cfg.AppName+":lock:")
			opts = append(opts, migration.WithLocker(redis.NewProjectLocker(locker, cfg.MigrationLockTTL)))
		}
	}

	if cfg.KafkaEnabled {
		producer := kafka.NewProducer(kafka.ProducerConfig{
			Brokers:      cfg.KafkaBrokers,
			Topic:        cfg.KafkaOutputTopic,
			BatchSize:    cfg.KafkaBatchSize,
			BatchTimeout: time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond,
			RequiredAcks: cfg.KafkaRequiredAcks,
			Compression:  cfg.KafkaCompression,
		}, logger)
		deps.AddDependency(&kafkaDependency{producer: producer})
		opts = append(opts, migration.WithPublisher(events.NewEmitter(producer, logger)))
	}

	if err := deps.Start(ctx); err != nil {
		return fmt.Errorf("failed to start dependencies: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := deps.Stop(stopCtx); err != nil {
			logger.WithError(err).Warn("failed to stop dependencies")
		}
	}()

	projectStore, employeeStore, areaStore := newStores(cfg, mongoDep, logger)

	projectRepo := project.NewRepository(projectStore, logger)
	employeeRepo := employee.NewRepository(employeeStore, logger)
	areaRepo := areaactivity.NewRepository(areaStore, logger)

	projects := projectservice.NewService(projectRepo, employeeRepo, logger)
	employees := employeeservice.NewService(employeeRepo, logger)
	areas := areaactivityservice.NewService(areaRepo, logger)

	sources := legacy.NewFactory(database.Options{
		Driver:       cfg.LegacyDBDriver,
		MaxOpenConns: cfg.LegacyDBMaxOpenConns,
		PingTimeout:  10 * time.Second,
	}, cfg.LegacyDBQueryTimeout, logger)
	migrations := migration.NewService(sources, projects, employees, areas, logger, opts...)

	e := newServer(cfg, logger)
	checker.RegisterRoutes(e)
	api := e.Group("/api/v1")
	migrationroutes.Register(api.Group("/migrations"), migrationroutes.NewHandler(migrations, cfg.LegacyDBConnectionString))
	projectroutes.Register(api.Group("/projects"), projectroutes.NewHandler(projects))
	areaactivityroutes.Register(api.Group("/area-activities"), areaactivityroutes.NewHandler(areas))
	if cfg.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           e,
		ReadTimeout:       time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting %s on %s", cfg.AppName, server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()
	checker.SetReady(true)

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			return err
		}
	}

	checker.SetReady(false)
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newStores(cfg config.Config, mongoDep *mongoDependency, logger ectologger.Logger) (
	docstore.Store[project.ProjectDocument],
	docstore.Store[employee.EmployeeDocument],
	docstore.Store[areaactivity.AreaActivityDocument],
) {
	if cfg.StoreBackend == config.StoreBackendMemory {
		logger.Warn("Using in-memory document store, data is lost on restart")
		return docstore.NewMemory[project.ProjectDocument](),
			docstore.NewMemory[employee.EmployeeDocument](),
			docstore.NewMemory[areaactivity.AreaActivityDocument]()
	}

	db := mongoDep.client.Database()
	return docstore.NewCollection[project.ProjectDocument](db, project.Collection, logger),
		docstore.NewCollection[employee.EmployeeDocument](db, employee.Collection, logger),
		docstore.NewCollection[areaactivity.AreaActivityDocument](db, areaactivity.Collection, logger)
}

func setupTracing(ctx context.Context, cfg config.Config, logger ectologger.Logger) (func(context.Context) error, error) {
	var exporter sdktrace.SpanExporter = exporters.NewLogExporter(logger)
	if cfg.TracingEnabled && cfg.OTLPEndpoint != "" {
		otlp, err := exporters.NewOTLPExporter(ctx, exporters.OTLPConfig{
			Endpoint: cfg.OTLPEndpoint,
			Protocol: cfg.OTLPProtocol,
			Insecure: cfg.OTLPInsecure,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		exporter = otlp
	}
	return tracing.Setup(cfg.AppName, exporter), nil
}

func newServer(cfg config.Config, logger ectologger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.Error(logger)

	e.Use(echomiddleware.Recover())
	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))
	return e
}
