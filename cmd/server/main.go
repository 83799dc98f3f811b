package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"appointments-api/internal/appointment/handler"
	appmetrics "appointments-api/internal/appointment/metrics"
	"appointments-api/internal/appointment/service"
	"appointments-api/internal/appointment/store"
	"appointments-api/internal/appointment/store/cache"
	"appointments-api/internal/merge"
	mergemetrics "appointments-api/internal/merge/metrics"
	"appointments-api/internal/platform/config"
	"appointments-api/internal/platform/httpserver"
	"appointments-api/internal/platform/kafka"
	"appointments-api/internal/platform/logger"
	"appointments-api/internal/platform/redis"
	httptransport "appointments-api/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var checks []httptransport.HealthCheck

	// Appointment store: Postgres when configured, in-memory otherwise.
	var appointmentStore service.Store = store.NewInMemoryStore()
	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres connect failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		pgStore := store.NewPostgresStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Error("postgres schema setup failed", "error", err)
			os.Exit(1)
		}
		appointmentStore = pgStore
		checks = append(checks, httptransport.HealthCheck{Name: "postgres", Check: pool.Ping})
	} else {
		log.Warn("POSTGRES_DSN not set, using in-memory appointment store")
	}

	serviceOpts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(appmetrics.New()),
		service.WithPageLimits(cfg.DefaultItemsPerPage, cfg.MaxItemsPerPage),
	}

	// Optional redis cache for single-record lookups. Mutations route through
	// the decorator too so each write invalidates its cached copy.
	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		cachedStore := cache.New(appointmentStore, redisClient.Client, cfg.CacheTTL, log)
		serviceOpts = append(serviceOpts, service.WithRecordCache(cachedStore))
		checks = append(checks, httptransport.HealthCheck{Name: "redis", Check: redisClient.Health})
	}

	// Merge publisher: Kafka when brokers are configured.
	var publisher service.MergePublisher = &merge.LogPublisher{Logger: log}
	kafkaClient, err := kafka.NewClient(cfg.KafkaBrokers)
	if err != nil {
		log.Error("kafka connect failed", "error", err)
		os.Exit(1)
	}
	if kafkaClient != nil {
		defer kafkaClient.Close()
		if err := kafka.EnsureTopic(ctx, kafkaClient, cfg.MergeTopic, 1); err != nil {
			log.Error("kafka topic setup failed", "topic", cfg.MergeTopic, "error", err)
			os.Exit(1)
		}
		publisher, err = merge.NewPublisher(kafkaClient, cfg.MergeTopic, cfg.PublishTimeout, log,
			merge.WithMetrics(mergemetrics.New()))
		if err != nil {
			log.Error("merge publisher setup failed", "error", err)
			os.Exit(1)
		}
		checks = append(checks, httptransport.HealthCheck{Name: "kafka", Check: kafkaClient.Ping})
	} else {
		log.Warn("KAFKA_BROKERS not set, merge events will be logged and dropped")
	}

	appointmentService, err := service.New(appointmentStore, publisher, serviceOpts...)
	if err != nil {
		log.Error("appointment service setup failed", "error", err)
		os.Exit(1)
	}

	router := httptransport.NewRouter(handler.New(appointmentService, log), checks...)
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting appointments-api", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
