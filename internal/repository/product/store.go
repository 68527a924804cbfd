package product

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

// New returns a Repository over the products bucket. Mutations rewrite
// the whole bucket; concurrent writers are last-writer-wins.
func New(store bucket.Store, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &bucketRepo{store: store, logger: logger}
}

func (r *bucketRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.load(ctx)
}

func (r *bucketRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *bucketRepo) Insert(ctx context.Context, p domain.Product) error {
	products, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == p.ID {
			return domain.ErrAlreadyExists
		}
	}
	return r.save(ctx, append(products, p))
}

func (r *bucketRepo) Update(ctx context.Context, p domain.Product) error {
	products, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			return r.save(ctx, products)
		}
	}
	return domain.ErrNotFound
}

func (r *bucketRepo) Delete(ctx context.Context, id string) error {
	products, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return domain.ErrNotFound
	}
	return r.save(ctx, kept)
}

func (r *bucketRepo) load(ctx context.Context) ([]domain.Product, error) {
	raw, err := r.store.Load(ctx, bucket.Products)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		r.logger.Printf("product repo: decode bucket error=%v", err)
		return nil, err
	}
	return products, nil
}

func (r *bucketRepo) save(ctx context.Context, products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, bucket.Products, raw)
}
