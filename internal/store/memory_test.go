package store

import (
	"context"
	"errors"
	"testing"
)

func TestInMemoryRepositoryCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	rec := &Record{
		Link:        "https://cdn.example/deck.pptx",
		Title:       "Deck",
		Description: "A deck",
		OwnerID:     "owner-1",
		FileKey:     "presentations/deck.pptx",
	}

	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rec.ID == "" {
		t.Error("Create() should assign an ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Create() should assign CreatedAt")
	}

	got, err := repo.FindByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Link != rec.Link || got.OwnerID != rec.OwnerID {
		t.Errorf("FindByID() = %+v, want %+v", got, rec)
	}
}

func TestInMemoryRepositoryFindByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	for _, owner := range []string{"a", "b", "a"} {
		if err := repo.Create(ctx, &Record{OwnerID: owner}); err != nil {
			t.Fatal(err)
		}
	}

	records, err := repo.FindByOwner(ctx, "a")
	if err != nil {
		t.Fatalf("FindByOwner() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(records))
	}
	for _, rec := range records {
		if rec.OwnerID != "a" {
			t.Errorf("got record for owner %q", rec.OwnerID)
		}
	}
}

func TestInMemoryRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	rec := &Record{OwnerID: "a"}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.FindByID(ctx, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() after delete = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() twice = %v, want ErrNotFound", err)
	}
}
