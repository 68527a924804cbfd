package order

import (
	"context"

	"agathiya-store/internal/domain"
)

// Repository persists placed orders. Orders are stored newest-first and
// never deleted.
type Repository interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Insert(ctx context.Context, o domain.Order) error
	SetStatus(ctx context.Context, id string, status domain.OrderStatus) error
}
