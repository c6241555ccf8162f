package auth

import (
	"context"
	"crypto/sha256"
	"errors"
	"time"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/coocood/freecache"
)

const (
	DefaultVerifiedTTL = 10 * time.Minute
	verifiedCacheSize  = 1024 * 1024 // 1MB
)

var ErrNoTokenConfigured = errors.New("api token hash not configured")

var _ Checker = (*TokenChecker)(nil)

type Checker interface {
	IsAuthorized(ctx context.Context, token string) (bool, error)
}

// TokenChecker verifies API tokens against the configured bcrypt hash.
// Tokens that passed the check are cached for the verified TTL.
type TokenChecker struct {
	tokenHash  string
	verified   *freecache.Cache
	ttlSeconds int
}

func NewTokenChecker(tokenHash string, verifiedTTL time.Duration) *TokenChecker {
	return &TokenChecker{
		tokenHash:  tokenHash,
		verified:   freecache.NewCache(verifiedCacheSize),
		ttlSeconds: int(verifiedTTL.Seconds()),
	}
}

func (c *TokenChecker) IsAuthorized(ctx context.Context, token string) (_ bool, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "auth.token_check")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if c.tokenHash == "" {
		return false, ErrNoTokenConfigured
	}
	if token == "" {
		return false, nil
	}

	key := sha256.Sum256([]byte(token))
	if _, err := c.verified.Get(key[:]); err == nil {
		return true, nil
	}

	if !pkg.CheckPasswordHash(token, c.tokenHash) {
		return false, nil
	}

	if c.ttlSeconds > 0 {
		// best effort
		_ = c.verified.Set(key[:], []byte{1}, c.ttlSeconds)
	}
	return true, nil
}
