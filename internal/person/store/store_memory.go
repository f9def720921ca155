package store

import (
	"context"
	"slices"
	"sync"

	"people-registry/internal/person/models"
	id "people-registry/pkg/domain"
	"people-registry/pkg/platform/sentinel"
)

// ErrNotFound is returned when a person ID is not in the registry.
var ErrNotFound = sentinel.ErrNotFound

// InMemory is the process-wide person registry.
//
// A single RWMutex guards the whole map: lookups, listing and counting share
// the read lock, insertion takes the write lock. No I/O happens while either
// lock is held. Stored records are never handed out directly; every read
// returns a copy.
type InMemory struct {
	mu      sync.RWMutex
	persons map[id.PersonID]*models.Person
	newID   func() id.PersonID
}

// NewInMemory creates an empty registry that assigns UUIDv7 identifiers.
func NewInMemory() *InMemory {
	return &InMemory{
		persons: make(map[id.PersonID]*models.Person),
		newID:   id.NewPersonID,
	}
}

// Insert assigns a fresh ID, stores the record and returns a copy of it.
// Input is already validated, so insertion cannot fail.
func (s *InMemory) Insert(_ context.Context, p models.NewPerson) *models.Person {
	person := p.Build(s.newID())

	s.mu.Lock()
	s.persons[person.ID] = person
	s.mu.Unlock()

	return person.Clone()
}

func (s *InMemory) FindByID(_ context.Context, personID id.PersonID) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if person, ok := s.persons[personID]; ok {
		return person.Clone(), nil
	}
	return nil, ErrNotFound
}

// List returns a snapshot of every record ordered by ID, which for UUIDv7
// is creation order.
func (s *InMemory) List(_ context.Context) []*models.Person {
	s.mu.RLock()
	persons := make([]*models.Person, 0, len(s.persons))
	for _, person := range s.persons {
		persons = append(persons, person.Clone())
	}
	s.mu.RUnlock()

	slices.SortFunc(persons, func(a, b *models.Person) int {
		return a.ID.Compare(b.ID)
	})
	return persons
}

func (s *InMemory) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.persons)
}
