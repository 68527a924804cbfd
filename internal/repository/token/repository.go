package token

import (
	"context"
	"time"
)

// Token binds an opaque session token to an account until it expires.
type Token struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Repository stores issued tokens. Create fails with ErrAlreadyExists on
// a token collision so issuers can retry with a fresh value.
type Repository interface {
	Create(ctx context.Context, t Token) error
	Get(ctx context.Context, token string) (*Token, error)
	Delete(ctx context.Context, token string) error
}
