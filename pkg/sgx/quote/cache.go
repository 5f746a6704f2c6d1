package quote

import (
	"context"
	"sync"
	"time"

	"github.com/komsit37/sgx/pkg/sgx/types"
)

// DefaultTTL is the freshness window for cached payloads.
const DefaultTTL = 10 * time.Minute

// CachedFetcher decorates a Fetcher with a TTL cache keyed by canonical
// symbol. Errors are not cached; a failed fetch retries on the next call.
type CachedFetcher struct {
	next Fetcher
	ttl  time.Duration
	size int
	now  func() time.Time

	mu    sync.Mutex
	items map[string]cacheEntry
	order []string // insertion order, oldest at index 0
}

type cacheEntry struct {
	at      time.Time
	payload types.RawPayload
}

func NewCachedFetcher(next Fetcher, ttl time.Duration, size int) *CachedFetcher {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if size <= 0 {
		size = 256
	}
	return &CachedFetcher{next: next, ttl: ttl, size: size, now: time.Now, items: make(map[string]cacheEntry)}
}

func (c *CachedFetcher) Fetch(ctx context.Context, symbol string) (types.RawPayload, error) {
	now := c.now()
	c.mu.Lock()
	if ent, ok := c.items[symbol]; ok {
		if now.Sub(ent.at) <= c.ttl {
			p := ent.payload
			c.mu.Unlock()
			return p, nil
		}
		delete(c.items, symbol)
		c.removeFromOrderLocked(symbol)
	}
	c.mu.Unlock()

	payload, err := c.next.Fetch(ctx, symbol)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.items[symbol] = cacheEntry{at: now, payload: payload}
	c.order = append(c.order, symbol)
	for len(c.items) > c.size && len(c.order) > 0 {
		old := c.order[0]
		c.order = c.order[1:]
		delete(c.items, old)
	}
	c.mu.Unlock()
	return payload, nil
}

func (c *CachedFetcher) removeFromOrderLocked(k string) {
	for i, v := range c.order {
		if v == k {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
