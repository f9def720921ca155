package store

import (
	"context"
	"testing"
	"time"

	"people-registry/internal/person/models"
)

func BenchmarkInsert(b *testing.B) {
	s := NewInMemory()
	ctx := context.Background()
	p := models.NewPerson{Name: "bench", Nick: "bench", Birthdate: models.NewDate(2000, time.January, 1)}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Insert(ctx, p)
		}
	})
}

func BenchmarkFindByIDParallel(b *testing.B) {
	s := NewInMemory()
	ctx := context.Background()
	created := s.Insert(ctx, models.NewPerson{Name: "bench", Nick: "bench"})

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := s.FindByID(ctx, created.ID); err != nil {
				b.Fatal(err)
			}
		}
	})
}
