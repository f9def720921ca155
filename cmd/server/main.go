package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"people-registry/internal/person"
	personmetrics "people-registry/internal/person/metrics"
	personservice "people-registry/internal/person/service"
	"people-registry/internal/person/store"
	"people-registry/internal/platform/config"
	"people-registry/internal/platform/httpserver"
	"people-registry/internal/platform/logger"
	"people-registry/internal/platform/metrics"
	httptransport "people-registry/internal/transport/http"
	"people-registry/pkg/platform/audit/publisher"
	auditmemory "people-registry/pkg/platform/audit/store/memory"
)

const auditBufferSize = 1024

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := metrics.NewWithRegisterer(reg)
	personMetrics := personmetrics.NewWithRegisterer(reg)

	auditPublisher := publisher.NewPublisher(
		auditmemory.NewInMemoryStore(),
		publisher.WithAsyncBuffer(auditBufferSize),
		publisher.WithLogger(log),
	)
	defer auditPublisher.Close()

	registry := person.NewRegistry()
	if cfg.SeedBootstrapPerson {
		seeded := store.SeedBootstrapPerson(ctx, registry)
		log.Info("seeded bootstrap person", "person_id", seeded.ID.String())
	}

	personService := person.NewService(registry,
		personservice.WithLogger(log),
		personservice.WithMetrics(personMetrics),
		personservice.WithAuditPublisher(auditPublisher),
	)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		Metrics:        httpMetrics,
		Gatherer:       reg,
		RequestTimeout: cfg.RequestTimeout,
		Modules: []httptransport.RouteRegistrar{
			person.NewHandler(personService, log, personMetrics),
		},
	})

	srv := httpserver.New(cfg.Addr, router, log, cfg.RequestTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting people-registry", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
