package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"people-registry/internal/person/metrics"
	"people-registry/internal/person/models"
	id "people-registry/pkg/domain"
	dErrors "people-registry/pkg/domain-errors"
	"people-registry/pkg/platform/audit"
	"people-registry/pkg/platform/sentinel"
	"people-registry/pkg/requestcontext"
)

const tracerName = "people-registry/internal/person/service"

// Registry is the store port. Insert cannot fail once input is validated;
// FindByID returns sentinel.ErrNotFound for unknown IDs.
type Registry interface {
	Insert(ctx context.Context, p models.NewPerson) *models.Person
	FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error)
	List(ctx context.Context) []*models.Person
	Count(ctx context.Context) int
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service orchestrates person registration and lookup.
type Service struct {
	registry       Registry
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service.
func New(registry Registry, opts ...Option) *Service {
	s := &Service{
		registry: registry,
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a validated person and returns the stored record.
func (s *Service) Create(ctx context.Context, p models.NewPerson) (*models.Person, error) {
	start := time.Now()
	defer s.metrics.ObserveOperation("create", start)

	ctx, span := s.tracer.Start(ctx, "person.Create")
	defer span.End()

	person := s.registry.Insert(ctx, p)
	span.SetAttributes(attribute.String("person.id", person.ID.String()))

	s.metrics.IncrementPersonsCreated(s.registry.Count(ctx))
	s.emitAudit(ctx, audit.EventPersonCreated, person)
	s.logger.InfoContext(ctx, "person created",
		"person_id", person.ID.String(),
		"request_id", requestcontext.RequestID(ctx),
	)
	return person, nil
}

// Get returns the person with the given ID or a CodeNotFound error.
func (s *Service) Get(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	start := time.Now()
	defer s.metrics.ObserveOperation("get", start)

	ctx, span := s.tracer.Start(ctx, "person.Get",
		trace.WithAttributes(attribute.String("person.id", personID.String())))
	defer span.End()

	person, err := s.registry.FindByID(ctx, personID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			span.SetAttributes(attribute.Bool("person.found", false))
			return nil, dErrors.New(dErrors.CodeNotFound, "person not found")
		}
		span.RecordError(err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load person")
	}
	span.SetAttributes(attribute.Bool("person.found", true))
	return person, nil
}

// List returns every stored person ordered by ID.
func (s *Service) List(ctx context.Context) ([]*models.Person, error) {
	start := time.Now()
	defer s.metrics.ObserveOperation("list", start)

	ctx, span := s.tracer.Start(ctx, "person.List")
	defer span.End()

	persons := s.registry.List(ctx)
	span.SetAttributes(attribute.Int("person.count", len(persons)))
	return persons, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	start := time.Now()
	defer s.metrics.ObserveOperation("count", start)

	ctx, span := s.tracer.Start(ctx, "person.Count")
	defer span.End()

	return s.registry.Count(ctx), nil
}

// emitAudit never fails the operation; the record is already stored.
func (s *Service) emitAudit(ctx context.Context, event audit.AuditEvent, person *models.Person) {
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		Category:  event.Category(),
		Timestamp: requestcontext.Now(ctx),
		PersonID:  person.ID,
		Action:    string(event),
		Subject:   person.Nick,
		RequestID: requestcontext.RequestID(ctx),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"action", string(event),
			"person_id", person.ID.String(),
			"error", err,
		)
	}
}
