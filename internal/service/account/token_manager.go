package account

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"agathiya-store/internal/domain"
	tokenrepo "agathiya-store/internal/repository/token"
)

type tokenMeta struct {
	Email string
	Role  string
}

type tokenManager struct {
	repo tokenrepo.Repository
}

func newTokenManager(repo tokenrepo.Repository) *tokenManager {
	return &tokenManager{repo: repo}
}

func (m *tokenManager) Issue(ctx context.Context, email, role string, ttl time.Duration) (string, error) {
	expiresAt := time.Now().Add(ttl)
	for i := 0; i < 5; i++ {
		tok, err := randomToken()
		if err != nil {
			return "", err
		}
		err = m.repo.Create(ctx, tokenrepo.Token{
			Token:     tok,
			Email:     email,
			Role:      role,
			ExpiresAt: expiresAt,
		})
		if err == nil {
			return tok, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("token collision")
}

func (m *tokenManager) Validate(ctx context.Context, tok string) (tokenMeta, bool) {
	meta, err := m.repo.Get(ctx, tok)
	if err != nil {
		return tokenMeta{}, false
	}
	if time.Now().After(meta.ExpiresAt) {
		_ = m.repo.Delete(ctx, tok)
		return tokenMeta{}, false
	}
	return tokenMeta{Email: meta.Email, Role: meta.Role}, true
}

func (m *tokenManager) Revoke(ctx context.Context, tok string) error {
	return m.repo.Delete(ctx, tok)
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
