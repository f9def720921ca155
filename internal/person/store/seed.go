package store

import (
	"context"
	"time"

	"people-registry/internal/person/models"
)

// SeedBootstrapPerson inserts the demo record the service has always shipped
// with, so a fresh instance has something to look up.
func SeedBootstrapPerson(ctx context.Context, s *InMemory) *models.Person {
	return s.Insert(ctx, models.NewPerson{
		Name:      "Vitor Trimer",
		Nick:      "VTR",
		Birthdate: models.NewDate(1995, time.June, 10),
		Stack:     []models.Tech{"Swift", "Rust"},
	})
}
