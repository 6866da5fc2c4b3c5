// Package cache decorates the destination decoder with an in-memory
// response cache. The decoder core itself stays cache-free: decoding is
// pure, so identical inputs always produce identical results and the
// decorator can safely cache matched and unmatched outcomes alike.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ryantusi/GMS-Vessel-Tracker/internal/observability"
	"github.com/ryantusi/GMS-Vessel-Tracker/locode"
)

// Decoder is the slice of the locode decoder this package consumes.
type Decoder interface {
	Decode(rawInput string) locode.DecodeResult
}

// CachedDecoder wraps a Decoder with an expiring LRU cache keyed on the raw
// destination string.
type CachedDecoder struct {
	inner   Decoder
	cache   *expirable.LRU[string, locode.DecodeResult]
	metrics *observability.Metrics
}

// New creates a cache decorator around a decoder. A size of 0 disables the
// bound (the LRU grows without eviction); ttl of 0 disables expiry.
func New(inner Decoder, size int, ttl time.Duration, metrics *observability.Metrics) *CachedDecoder {
	return &CachedDecoder{
		inner:   inner,
		cache:   expirable.NewLRU[string, locode.DecodeResult](size, nil, ttl),
		metrics: metrics,
	}
}

// Decode returns the cached result for rawInput, computing and storing it on
// a miss.
func (c *CachedDecoder) Decode(rawInput string) locode.DecodeResult {
	if result, ok := c.cache.Get(rawInput); ok {
		c.metrics.CacheLookups.WithLabelValues("hit").Inc()
		return result
	}
	c.metrics.CacheLookups.WithLabelValues("miss").Inc()

	result := c.inner.Decode(rawInput)
	c.cache.Add(rawInput, result)
	return result
}
