package memory

import (
	"context"
	"slices"
	"sync"

	id "people-registry/pkg/domain"
	audit "people-registry/pkg/platform/audit"
)

// InMemoryStore is an append-only audit log. Events are kept in arrival
// order with a per-person index into the log.
type InMemoryStore struct {
	mu       sync.RWMutex
	log      []audit.Event
	byPerson map[id.PersonID][]int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byPerson: make(map[id.PersonID][]int)}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byPerson[event.PersonID] = append(s.byPerson[event.PersonID], len(s.log))
	s.log = append(s.log, event)
	return nil
}

func (s *InMemoryStore) ListByPerson(_ context.Context, personID id.PersonID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	positions := s.byPerson[personID]
	events := make([]audit.Event, 0, len(positions))
	for _, pos := range positions {
		events = append(events, s.log[pos])
	}
	return events, nil
}

// ListAll returns every recorded event in arrival order.
func (s *InMemoryStore) ListAll(_ context.Context) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.log), nil
}

func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.log)
}
