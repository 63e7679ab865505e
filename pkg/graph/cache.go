package graph

import (
	"encoding/binary"
	"math"
)

// Stats describes the cache usage of a computable node.
type Stats struct {
	// Hits is the number of evaluations answered from the cache.
	Hits int
	// Misses is the number of operator invocations.
	Misses int
	// Entries is the number of cached input tuples.
	Entries int
}

// cacheKey is the concatenation of the IEEE-754 bit patterns of an
// input tuple. Distinct values never share a key, so -0 and +0 as well
// as different NaN payloads are kept apart.
type cacheKey string

func newCacheKey(values []float64) cacheKey {
	buf := make([]byte, 0, 8*len(values))
	for _, v := range values {
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return cacheKey(buf)
}

// cache is unbounded, entries are never evicted.
type cache struct {
	entries map[cacheKey]float64
	hits    int
	misses  int
}

func newCache() *cache {
	return &cache{entries: map[cacheKey]float64{}}
}

func (c *cache) get(key cacheKey) (float64, bool) {
	v, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return v, ok
}

func (c *cache) put(key cacheKey, v float64) {
	c.misses++
	c.entries[key] = v
}

func (c *cache) stats() Stats {
	return Stats{
		Hits:    c.hits,
		Misses:  c.misses,
		Entries: len(c.entries),
	}
}
