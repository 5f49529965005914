package auth

import (
	"context"
	"crypto/sha256"
	"errors"
	"time"

	"github.com/2beens/healthtracker/internal/telemetry/tracing"
	"github.com/2beens/healthtracker/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const DefaultTTL = time.Hour

var ErrNoTokenConfigured = errors.New("no api token hash configured")

// Checker decides whether a request token grants API access.
type Checker interface {
	IsAuthorized(ctx context.Context, token string) (bool, error)
}

var _ Checker = (*TokenChecker)(nil)

// TokenChecker validates API tokens against a bcrypt hash. Valid tokens are
// remembered for ttl, so the hash is only compared on cache misses.
type TokenChecker struct {
	tokenHash string
	ttl       time.Duration
	cache     *freecache.Cache
}

func NewTokenChecker(tokenHash string, cacheSizeMB int, ttl time.Duration) *TokenChecker {
	return &TokenChecker{
		tokenHash: tokenHash,
		ttl:       ttl,
		cache:     freecache.NewCache(cacheSizeMB * 1024 * 1024),
	}
}

func (c *TokenChecker) IsAuthorized(ctx context.Context, token string) (_ bool, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "auth.token.check")
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
	if _, err := c.cache.Get(key[:]); err == nil {
		return true, nil
	}

	if !pkg.CheckTokenHash(token, c.tokenHash) {
		return false, nil
	}

	if err := c.cache.Set(key[:], []byte{1}, int(c.ttl.Seconds())); err != nil {
		log.Warnf("cache valid token: %s", err)
	}
	return true, nil
}
