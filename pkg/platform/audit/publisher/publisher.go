package publisher

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	id "people-registry/pkg/domain"
	audit "people-registry/pkg/platform/audit"
)

var errBufferFull = errors.New("audit buffer full")

// Publisher writes audit events to a store, either inline or through a
// bounded buffer drained by one background goroutine.
type Publisher struct {
	store  audit.Store
	logger *slog.Logger

	buffer    chan audit.Event
	done      chan struct{}
	closeOnce sync.Once
}

type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to async mode with a buffer of size
// events. When the buffer is full Emit returns an error instead of blocking.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		if size > 0 {
			p.buffer = make(chan audit.Event, size)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	if p.buffer != nil {
		p.done = make(chan struct{})
		go p.drain()
	}
	return p
}

// Emit records an event, stamping it with the current time when unset.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}

	if p.buffer == nil {
		return p.store.Append(ctx, event)
	}

	select {
	case p.buffer <- event:
		return nil
	default:
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.logger.WarnContext(ctx, "audit event dropped",
		"action", event.Action,
		"person_id", event.PersonID.String(),
	)
	return errBufferFull
}

// List returns the events recorded for one person.
func (p *Publisher) List(ctx context.Context, personID id.PersonID) ([]audit.Event, error) {
	return p.store.ListByPerson(ctx, personID)
}

// Close stops accepting async events and blocks until the buffer is drained.
// Emit must not be called after Close.
func (p *Publisher) Close() {
	if p.buffer == nil {
		return
	}
	p.closeOnce.Do(func() {
		close(p.buffer)
		<-p.done
	})
}

func (p *Publisher) drain() {
	defer close(p.done)
	for event := range p.buffer {
		if err := p.store.Append(context.Background(), event); err != nil {
			p.logger.Error("failed to persist audit event",
				"action", event.Action,
				"error", err,
			)
		}
	}
}
