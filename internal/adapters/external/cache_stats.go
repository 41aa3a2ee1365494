package external

import (
	"sync/atomic"
	"time"

	"breezy.app/internal/ports"
)

// hitCounter tracks cache lookups for the CacheMetrics port
type hitCounter struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func (c *hitCounter) hit()  { c.hits.Add(1) }
func (c *hitCounter) miss() { c.misses.Add(1) }

func (c *hitCounter) snapshot() ports.CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses

	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}
