package cartcache

import (
	"context"

	"agathiya-store/internal/domain"
)

// Repository holds the single authoritative copy of each session cart.
// Carts are transient: they expire and are never written to the order
// store.
type Repository interface {
	Get(ctx context.Context, owner string) (*domain.Cart, error)
	Save(ctx context.Context, owner string, cart domain.Cart) error
	Clear(ctx context.Context, owner string) error
}
