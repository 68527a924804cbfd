package seed

import (
	"context"
	"fmt"
	"time"

	"agathiya-store/internal/domain"
	"agathiya-store/internal/repository/bucket"
	productrepo "agathiya-store/internal/repository/product"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Apply inserts the starter catalog when the products bucket is empty.
// Running it against a populated store is a no-op.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	store := bucket.NewPostgres(pool, nil)
	products := productrepo.New(store, nil)

	existing, err := products.List(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	starter := []domain.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Organic Himalayan Honey",
			Description: "Pure wildflower honey collected from the high-altitude forests.",
			Price:       450,
			Unit:        domain.UnitPack,
			Category:    domain.CategorySpices,
			ImageURL:    "https://images.unsplash.com/photo-1587049352846-4a222e784d38?auto=format&fit=crop&q=80&w=400",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Fresh Spinach Leaves",
			Description: "Farm-fresh, pesticides-free organic spinach harvested daily.",
			Price:       40,
			Unit:        domain.UnitKilogram,
			Category:    domain.CategoryVegetables,
			ImageURL:    "https://images.unsplash.com/photo-1576045057995-568f588f82fb?auto=format&fit=crop&q=80&w=400",
			CreatedAt:   now,
		},
	}

	for _, p := range starter {
		if err := products.Insert(ctx, p); err != nil {
			return fmt.Errorf("insert product %s: %w", p.Name, err)
		}
	}
	return nil
}
