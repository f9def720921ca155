package person

import (
	"log/slog"

	"people-registry/internal/person/handler"
	"people-registry/internal/person/metrics"
	"people-registry/internal/person/service"
	"people-registry/internal/person/store"
)

// Service exposes person registration and lookup.
type Service = service.Service

// Handler wires HTTP endpoints to the person service.
type Handler = handler.Handler

// Registry is the in-memory person store.
type Registry = store.InMemory

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return store.NewInMemory()
}

// NewService constructs the person service over a registry.
func NewService(registry service.Registry, opts ...service.Option) *Service {
	return service.New(registry, opts...)
}

// NewHandler constructs the HTTP handler for the person routes.
func NewHandler(s *Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return handler.New(s, logger, m)
}
