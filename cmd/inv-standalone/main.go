package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	apicontract "github.com/tuanvumaihuynh/inventory-hub/api-contract"
	"github.com/tuanvumaihuynh/inventory-hub/internal/config"
	"github.com/tuanvumaihuynh/inventory-hub/internal/event"
	"github.com/tuanvumaihuynh/inventory-hub/internal/http"
	"github.com/tuanvumaihuynh/inventory-hub/internal/hub"
	"github.com/tuanvumaihuynh/inventory-hub/internal/journal"
	"github.com/tuanvumaihuynh/inventory-hub/internal/log"
	"github.com/tuanvumaihuynh/inventory-hub/internal/mutator"
	"github.com/tuanvumaihuynh/inventory-hub/internal/relay"
	"github.com/tuanvumaihuynh/inventory-hub/internal/repository"
	"github.com/tuanvumaihuynh/inventory-hub/internal/service"
	"github.com/tuanvumaihuynh/inventory-hub/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-hub/internal/storage/file"
	"github.com/tuanvumaihuynh/inventory-hub/internal/storage/mq"
	"github.com/tuanvumaihuynh/inventory-hub/internal/telemetry"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/cmdutil"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running standalone application: %v\n", err)
		os.Exit(1)
	}
}

type Config struct {
	Log      config.Log
	HTTP     config.HTTP
	Storage  config.Storage
	Postgres config.Postgres
	Kafka    config.Kafka
	Otel     config.Otel
	Hub      config.Hub
	Mutator  config.Mutator
}

func (c *Config) Validate() error {
	return errors.Join(c.Storage.Validate(), c.Hub.Validate(), c.Mutator.Validate())
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	if cfg.HTTP.Swagger {
		if _, err := apicontract.Load(ctx); err != nil {
			return fmt.Errorf("error loading api contract: %w", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store, err := newSnapshotStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.close()

	validate, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	h := hub.New(cfg.Hub, logger, hub.NewMetrics(registry))
	cleanupHub := h.Run(ctx)
	defer cleanupHub()

	productService, err := service.NewProductService(ctx, cfg.Storage, logger, store.SnapshotStore,
		journal.New(journal.DefaultCapacity), h, validate)
	if err != nil {
		return fmt.Errorf("error creating product service: %w", err)
	}

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	wg.Go(func() {
		svc := http.New(cfg.HTTP, logger, registry, productService, h)
		if store.health != nil {
			svc.AddHealthCheck("storage", store.health)
		}
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running http service: %w", err))
		}

		logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	if cfg.Mutator.Enabled {
		wg.Go(func() {
			svc := mutator.NewService(cfg.Mutator, logger, productService)
			cleanup := svc.Run(ctx)
			logger.InfoContext(ctx, "mutator service started", slog.Duration("interval", cfg.Mutator.Interval))

			<-interruptChan

			logger.InfoContext(ctx, "mutator service is shutting down")
			cleanup()

			logger.InfoContext(ctx, "mutator service is stopped")
		})
	}

	if cfg.Kafka.Enabled {
		kafkaProducer, err := mq.NewKafkaProducer(ctx, cfg.Kafka)
		if err != nil {
			return fmt.Errorf("error creating kafka producer: %w", err)
		}
		defer kafkaProducer.Close()

		kafkaConsumer, err := mq.NewKafkaConsumer(ctx, cfg.Kafka, logger)
		if err != nil {
			return fmt.Errorf("error creating kafka consumer: %w", err)
		}

		wg.Go(func() {
			svc := relay.NewService(cfg.Kafka.ChangesTopic, logger, kafkaProducer)
			cleanup, err := svc.Run(h)
			if err != nil {
				panic(fmt.Errorf("error running relay service: %w", err))
			}
			logger.InfoContext(ctx, "relay service started", slog.String("topic", cfg.Kafka.ChangesTopic))

			<-interruptChan

			logger.InfoContext(ctx, "relay service is shutting down")
			cleanup()

			logger.InfoContext(ctx, "relay service is stopped")
		})

		wg.Go(func() {
			svc := event.New(cfg.Kafka.StockTopic, logger, kafkaConsumer, productService)
			cleanup, err := svc.Run(ctx)
			if err != nil {
				panic(fmt.Errorf("error running event service: %w", err))
			}
			logger.InfoContext(ctx, "event service started", slog.String("topic", cfg.Kafka.StockTopic))

			<-interruptChan

			logger.InfoContext(ctx, "event service is shutting down")
			cleanup()

			logger.InfoContext(ctx, "event service is stopped")
		})
	}

	wg.Wait()

	return nil
}

type snapshotStore struct {
	service.SnapshotStore

	health http.HealthChecker
	close  func()
}

func newSnapshotStore(ctx context.Context, cfg Config) (snapshotStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
		if err != nil {
			return snapshotStore{}, fmt.Errorf("error creating pgx pool: %w", err)
		}
		dbClient := db.NewClient(pgxPool)
		return snapshotStore{
			SnapshotStore: repository.NewSnapshotRepository(dbClient),
			health:        dbClient,
			close:         pgxPool.Close,
		}, nil
	default:
		return snapshotStore{
			SnapshotStore: file.NewStore(cfg.Storage.FilePath),
			close:         func() {},
		}, nil
	}
}
