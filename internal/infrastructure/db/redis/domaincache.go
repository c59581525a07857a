package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	verdictTTL   = time.Hour
	verdictOK    = "ok"
	verdictBad   = "bad"
	verdictKeyFt = "emaildomain:%s"
)

// DomainVerdictCache remembers recent email-domain validation verdicts
// so repeated signups from the same domain skip live MX resolution.
type DomainVerdictCache struct {
	client *redis.Client
}

// NewDomainVerdictCache creates a cache wrapping the given Redis client.
func NewDomainVerdictCache(client *redis.Client) *DomainVerdictCache {
	return &DomainVerdictCache{client: client}
}

// Lookup returns (valid, found). Both redis.Nil and transport errors
// read as a miss: the caller falls back to a live lookup.
func (c *DomainVerdictCache) Lookup(ctx context.Context, domain string) (bool, bool) {
	v, err := c.client.Get(ctx, c.key(domain)).Result()
	if err != nil {
		return false, false
	}
	return v == verdictOK, true
}

// Store records a verdict for the domain (expires after verdictTTL).
func (c *DomainVerdictCache) Store(ctx context.Context, domain string, valid bool) error {
	v := verdictBad
	if valid {
		v = verdictOK
	}
	return c.client.Set(ctx, c.key(domain), v, verdictTTL).Err()
}

func (c *DomainVerdictCache) key(domain string) string {
	return fmt.Sprintf(verdictKeyFt, domain)
}
