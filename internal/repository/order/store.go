package order

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"agathiya-store/internal/domain"
	"agathiya-store/internal/repository/bucket"
)

type bucketRepo struct {
	store  bucket.Store
	logger *log.Logger
}

// New returns a Repository over the orders bucket.
func New(store bucket.Store, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &bucketRepo{store: store, logger: logger}
}

func (r *bucketRepo) List(ctx context.Context) ([]domain.Order, error) {
	return r.load(ctx)
}

func (r *bucketRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Insert prepends so List stays reverse-chronological without sorting.
func (r *bucketRepo) Insert(ctx context.Context, o domain.Order) error {
	orders, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append([]domain.Order{o}, orders...))
}

func (r *bucketRepo) SetStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	orders, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			return r.save(ctx, orders)
		}
	}
	return domain.ErrNotFound
}

func (r *bucketRepo) load(ctx context.Context) ([]domain.Order, error) {
	raw, err := r.store.Load(ctx, bucket.Orders)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		r.logger.Printf("order repo: decode bucket error=%v", err)
		return nil, err
	}
	return orders, nil
}

func (r *bucketRepo) save(ctx context.Context, orders []domain.Order) error {
	if orders == nil {
		orders = []domain.Order{}
	}
	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, bucket.Orders, raw)
}
