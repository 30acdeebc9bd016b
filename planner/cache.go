package planner

import (
	"sync"

	"github.com/quickshift/plannercore/catalog"
	"github.com/quickshift/plannercore/pert"
)

// cachedPlan is one entry of the process-wide plan cache: the unified
// catalog (with prerequisites and PERT annotations already applied).
type cachedPlan struct {
	catalog *catalog.Catalog
	pert    *pert.Result
}

// planCache is the process-wide, read-through cache keyed by plan
// signature. Entries are never evicted during
// process lifetime; insertion is mutex-guarded, lookups return the
// shared pointer directly since a *catalog.Catalog is treated as
// immutable once built.
type planCache struct {
	mu      sync.Mutex
	entries map[string]*cachedPlan
}

var globalCache = &planCache{entries: make(map[string]*cachedPlan)}

func (c *planCache) get(signature string) (*cachedPlan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[signature]
	return entry, ok
}

// getOrBuild returns the cached entry for signature, or calls build to
// construct one and caches it. build is called at most once per
// signature even under concurrent callers, since the lock is held for
// the duration of the build.
func (c *planCache) getOrBuild(signature string, build func() (*cachedPlan, error)) (*cachedPlan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[signature]; ok {
		return entry, nil
	}

	entry, err := build()
	if err != nil {
		return nil, err
	}
	c.entries[signature] = entry
	return entry, nil
}

// planSignature derives the cache key from a plan ID and optional sheet
// sub-partition.
func planSignature(planID string, sheet *string) string {
	if sheet == nil || *sheet == "" {
		return planID
	}
	return planID + "#" + *sheet
}
