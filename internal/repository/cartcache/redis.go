package cartcache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"agathiya-store/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:"

type redisRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis returns a Repository storing carts as JSON values with the
// given TTL. An expired or missing cart reads back as empty.
func NewRedis(client *redis.Client, ttl time.Duration) Repository {
	return &redisRepo{client: client, ttl: ttl}
}

func (r *redisRepo) Get(ctx context.Context, owner string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, keyPrefix+owner).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &domain.Cart{}, nil
		}
		return nil, err
	}
	var cart domain.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *redisRepo) Save(ctx context.Context, owner string, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+owner, data, r.ttl).Err()
}

func (r *redisRepo) Clear(ctx context.Context, owner string) error {
	return r.client.Del(ctx, keyPrefix+owner).Err()
}
