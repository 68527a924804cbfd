package user

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"

	"agathiya-store/internal/domain"
	"agathiya-store/internal/repository/bucket"
)

type bucketRepo struct {
	store  bucket.Store
	logger *log.Logger
}

// New returns a Repository over the users bucket. Emails are compared
// case-insensitively.
func New(store bucket.Store, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &bucketRepo{store: store, logger: logger}
}

func (r *bucketRepo) List(ctx context.Context) ([]domain.User, error) {
	return r.load(ctx)
}

func (r *bucketRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *bucketRepo) Insert(ctx context.Context, u domain.User) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, u.Email) {
			return domain.ErrAlreadyExists
		}
	}
	return r.save(ctx, append(users, u))
}

func (r *bucketRepo) Count(ctx context.Context) (int, error) {
	users, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}

func (r *bucketRepo) load(ctx context.Context) ([]domain.User, error) {
	raw, err := r.store.Load(ctx, bucket.Users)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		r.logger.Printf("user repo: decode bucket error=%v", err)
		return nil, err
	}
	return users, nil
}

func (r *bucketRepo) save(ctx context.Context, users []domain.User) error {
	if users == nil {
		users = []domain.User{}
	}
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, bucket.Users, raw)
}
