package order

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

func TestInsertPrependsNewest(t *testing.T) {
	repo := New(newMemStore(), nil)
	ctx := context.Background()

	if err := repo.Insert(ctx, domain.Order{ID: "AG-OLDEST"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Insert(ctx, domain.Order{ID: "AG-NEWEST"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "AG-NEWEST" || orders[1].ID != "AG-OLDEST" {
		t.Fatalf("expected newest first, got %+v", orders)
	}
}

func TestSetStatus(t *testing.T) {
	repo := New(newMemStore(), nil)
	ctx := context.Background()

	if err := repo.SetStatus(ctx, "AG-MISSIN", domain.StatusDelivered); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := repo.Insert(ctx, domain.Order{ID: "AG-AAAAAA", Status: domain.StatusPending}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.SetStatus(ctx, "AG-AAAAAA", domain.StatusDelivered); err != nil {
		t.Fatalf("set status: %v", err)
	}

	o, err := repo.GetByID(ctx, "AG-AAAAAA")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if o.Status != domain.StatusDelivered {
		t.Fatalf("status not persisted: %+v", o)
	}
}

func TestGetByIDUnknown(t *testing.T) {
	repo := New(newMemStore(), nil)
	if _, err := repo.GetByID(context.Background(), "AG-MISSIN"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
