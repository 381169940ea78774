// Package identity resolves bearer tokens against the external identity
// provider. The engine trusts user ids only from verified tokens; client-sent
// plain ids are never accepted for mutating operations.
package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/saiyam0211/inty-backend/internal/pkg/cache"
	"github.com/saiyam0211/inty-backend/internal/pkg/env"
)

// ErrUnauthorized means the token is missing, expired or otherwise invalid.
var ErrUnauthorized = errors.New("identity token invalid")

// Identity is the verified subject behind a bearer token.
type Identity struct {
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
}

// Verifier resolves a bearer token to a verified identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// HTTPVerifier calls the identity provider's token verification endpoint and
// caches positive results briefly in Redis so hot paths do not round-trip the
// provider for every request.
type HTTPVerifier struct {
	BaseURL    string
	ServiceKey string
	CacheTTL   time.Duration

	HTTPClient *http.Client
}

// NewVerifierFromEnv builds a verifier from IDENTITY_* environment values.
func NewVerifierFromEnv() *HTTPVerifier {
	return &HTTPVerifier{
		BaseURL:    strings.TrimRight(env.GetEnv("IDENTITY_API_URL", ""), "/"),
		ServiceKey: strings.TrimSpace(env.GetEnv("IDENTITY_SERVICE_KEY", "")),
		CacheTTL:   time.Minute,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type verifyResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func (v *HTTPVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrUnauthorized
	}

	cacheKey := tokenCacheKey(token)
	if cached, err := cache.Get(cacheKey); err == nil {
		var id Identity
		if err := json.Unmarshal([]byte(cached), &id); err == nil {
			return &id, nil
		}
	}

	if v.BaseURL == "" {
		return nil, errors.New("IDENTITY_API_URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.BaseURL+"/v1/tokens/verify", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if v.ServiceKey != "" {
		req.Header.Set("X-Service-Key", v.ServiceKey)
	}

	resp, err := v.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider returned %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	var parsed verifyResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	if parsed.UserID == "" {
		return nil, ErrUnauthorized
	}

	id := &Identity{
		UserID:  parsed.UserID,
		IsAdmin: strings.EqualFold(parsed.Role, "admin"),
	}

	if payload, err := json.Marshal(id); err == nil {
		if err := cache.Set(cacheKey, payload, v.CacheTTL); err != nil {
			log.Printf("identity: failed to cache verification result: %v", err)
		}
	}
	return id, nil
}

func tokenCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "identity:token:" + hex.EncodeToString(sum[:])
}
