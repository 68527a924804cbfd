package user

import (
	"context"
	"errors"
	"testing"

	"agathiya-store/internal/domain"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Load(_ context.Context, bucket string) ([]byte, error) {
	if raw, ok := m.data[bucket]; ok {
		return raw, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) Save(_ context.Context, bucket string, value []byte) error {
	m.data[bucket] = value
	return nil
}

func TestInsertAndGetByEmail(t *testing.T) {
	repo := New(newMemStore(), nil)
	ctx := context.Background()

	if _, err := repo.GetByEmail(ctx, "asha@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := repo.Insert(ctx, domain.User{Email: "asha@example.com", Name: "Asha"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	u, err := repo.GetByEmail(ctx, "ASHA@Example.com")
	if err != nil {
		t.Fatalf("lookup should be case-insensitive: %v", err)
	}
	if u.Name != "Asha" {
		t.Fatalf("unexpected user %+v", u)
	}
}

func TestInsertDuplicateEmail(t *testing.T) {
	repo := New(newMemStore(), nil)
	ctx := context.Background()

	if err := repo.Insert(ctx, domain.User{Email: "asha@example.com"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Insert(ctx, domain.User{Email: "Asha@Example.com"}); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestCount(t *testing.T) {
	repo := New(newMemStore(), nil)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}

	if err := repo.Insert(ctx, domain.User{Email: "asha@example.com"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Insert(ctx, domain.User{Email: "ravi@example.com"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
}
