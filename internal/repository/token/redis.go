package token

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"agathiya-store/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "token:"

type redisRepo struct {
	client *redis.Client
}

// NewRedis returns a Repository storing tokens as JSON values whose TTL
// matches the token expiry.
func NewRedis(client *redis.Client) Repository {
	return &redisRepo{client: client}
}

func (r *redisRepo) Create(ctx context.Context, t Token) error {
	ttl := time.Until(t.ExpiresAt)
	if ttl <= 0 {
		return errors.New("token already expired")
	}
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	ok, err := r.client.SetNX(ctx, keyPrefix+t.Token, data, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAlreadyExists
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, token string) (*Token, error) {
	data, err := r.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var t Token
	if err := json.Unmarshal([]byte(data), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *redisRepo) Delete(ctx context.Context, token string) error {
	deleted, err := r.client.Del(ctx, keyPrefix+token).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return nil
}
