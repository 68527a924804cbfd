package user

import (
	"context"

	"agathiya-store/internal/domain"
)

// Repository persists registered accounts.
type Repository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, u domain.User) error
	Count(ctx context.Context) (int, error)
}
