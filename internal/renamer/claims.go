package renamer

import "sync"

// claimTable records which source owns each destination path in a batch.
// Two replays with identical metadata synthesize the same name; only the
// first to claim it may rename. All methods are goroutine-safe.
type claimTable struct {
	mu     sync.Mutex
	owners map[string]string // destination path → source path that owns it
}

func newClaimTable() *claimTable {
	return &claimTable{owners: make(map[string]string)}
}

// Claim reserves dst for src. It returns false if another source already
// holds dst. Re-claiming by the same source succeeds.
func (c *claimTable) Claim(src, dst string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	owner, exists := c.owners[dst]
	if exists && owner != src {
		return false
	}
	c.owners[dst] = src
	return true
}

// Owner returns the source that claimed dst, if any.
func (c *claimTable) Owner(dst string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	owner, ok := c.owners[dst]
	return owner, ok
}
