// Package auth supplies the bearer credential sent with every request.
package auth

import (
	"context"
	"sync"
	"time"
)

// Token is a bearer credential with an optional expiry.
type Token struct {
	AccessToken string
	// ExpiresAt is zero for credentials that never expire, such as
	// access keys.
	ExpiresAt time.Time
}

// Valid reports whether the token can be sent.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	return t.ExpiresAt.IsZero() || time.Now().Before(t.ExpiresAt)
}

// TokenManager supplies the bearer value for outgoing requests. An empty
// token means no Authorization header is sent.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(token string, expiresAt time.Time)
}

// StaticTokenManager serves a fixed access key. It can be swapped at runtime
// with SetToken, e.g. after generating a credential.
type StaticTokenManager struct {
	mu    sync.RWMutex
	token *Token
}

// NewStaticTokenManager creates a manager for accessKey. An empty key
// disables authentication.
func NewStaticTokenManager(accessKey string) *StaticTokenManager {
	m := &StaticTokenManager{}
	if accessKey != "" {
		m.token = &Token{AccessToken: accessKey}
	}

	return m
}

// GetToken returns the current key, or "" when none is set or it expired.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.token.Valid() {
		return "", nil
	}

	return m.token.AccessToken, nil
}

// SetToken replaces the key. A zero expiresAt never expires.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token == "" {
		m.token = nil

		return
	}

	m.token = &Token{AccessToken: token, ExpiresAt: expiresAt}
}
