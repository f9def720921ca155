package models

import (
	"slices"

	id "people-registry/pkg/domain"
)

// NewPerson is the validated payload accepted by the registry. Every field
// has already passed its Parse function, so building a Person from it cannot fail.
//
// A nil Stack means no stack was provided; an empty, non-nil Stack means the
// caller explicitly sent an empty list.
type NewPerson struct {
	Name      Name
	Nick      Nick
	Birthdate Date
	Stack     []Tech
}

// Person is a stored registry record.
//
// Invariants:
//   - ID is assigned by the registry and never changes
//   - Name and Nick are at most 100 characters
//   - every Stack entry is at most 32 characters
//   - Stack is nil when no stack was recorded
//   - records are never mutated after insertion
type Person struct {
	ID        id.PersonID `json:"id"`
	Name      string      `json:"nome"`
	Nick      string      `json:"apelido"`
	Birthdate Date        `json:"nascimento"`
	Stack     []string    `json:"stack"`
}

// Build assembles the Person stored under personID.
func (n NewPerson) Build(personID id.PersonID) *Person {
	var stack []string
	if n.Stack != nil {
		stack = make([]string, len(n.Stack))
		for i, tech := range n.Stack {
			stack[i] = tech.String()
		}
	}
	return &Person{
		ID:        personID,
		Name:      n.Name.String(),
		Nick:      n.Nick.String(),
		Birthdate: n.Birthdate,
		Stack:     stack,
	}
}

// Clone returns a deep copy so callers cannot reach stored state.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Stack = slices.Clone(p.Stack)
	return &cp
}
