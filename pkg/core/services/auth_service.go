package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lexportal/lexmark/pkg/ports"
)

// ErrNotAuthenticated is returned when no usable token exists locally.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrSessionExpired is returned when a token exists but its exp claim has
// passed; the request it would carry is bound to fail.
var ErrSessionExpired = errors.New("session expired")

// legacyTokenKeys are the three storage key names tokens have historically
// been written under, in lookup order. New tokens are saved under the first.
var legacyTokenKeys = []string{"access_token", "accessToken", "token"}

// AuthService resolves the portal bearer token from the local state store.
// It is the single auth accessor injected everywhere a token is needed.
type AuthService struct {
	store ports.TokenStore
}

func NewAuthService(store ports.TokenStore) *AuthService {
	return &AuthService{store: store}
}

// Token scans the legacy key names and returns the first usable value.
// Absent keys and the "null"/"undefined" sentinels left behind by older
// clients count as unauthenticated. A token past its exp claim is skipped;
// if that leaves nothing usable the caller gets ErrSessionExpired so it can
// prompt for a re-login instead of issuing a doomed request.
func (s *AuthService) Token(ctx context.Context) (string, error) {
	expired := false
	for _, key := range legacyTokenKeys {
		value, err := s.store.Get(ctx, key)
		if err != nil {
			log.Printf("WARN: token lookup for %q failed: %v", key, err)
			continue
		}
		if value == "" || value == "null" || value == "undefined" {
			continue
		}
		if s.IsExpired(value) {
			expired = true
			continue
		}
		return value, nil
	}
	if expired {
		return "", ErrSessionExpired
	}
	return "", ErrNotAuthenticated
}

// SaveToken persists a freshly issued token under the canonical key and
// clears the other legacy keys so lookups stay unambiguous.
func (s *AuthService) SaveToken(ctx context.Context, token string) error {
	if err := s.store.Set(ctx, legacyTokenKeys[0], token); err != nil {
		return err
	}
	for _, key := range legacyTokenKeys[1:] {
		if err := s.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// Logout removes the token under every legacy key name.
func (s *AuthService) Logout(ctx context.Context) error {
	for _, key := range legacyTokenKeys {
		if err := s.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// IsExpired inspects the token's exp claim without verifying the signature.
// The server remains the authority; this only lets the CLI prompt for a
// re-login before a request is bound to fail.
func (s *AuthService) IsExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque (non-JWT) tokens are passed through to the server as-is.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Ensure interface compliance
var _ ports.TokenSource = (*AuthService)(nil)
