package audit

import (
	"context"
	"time"

	id "people-registry/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose so sinks can
// apply different retention.
type EventCategory string

const (
	// CategoryCompliance covers events that record personal data entering the system.
	CategoryCompliance EventCategory = "compliance"
	// CategoryOperations covers routine activity that may be sampled.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from the service layer to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	PersonID  id.PersonID
	Action    string
	// Subject is a human-readable handle for the record (the nickname), never the full name.
	Subject   string
	RequestID string
}

type AuditEvent string

const (
	EventPersonCreated AuditEvent = "person_created"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventPersonCreated: CategoryCompliance,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByPerson(ctx context.Context, personID id.PersonID) ([]Event, error)
}
