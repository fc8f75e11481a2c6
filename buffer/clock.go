package buffer

// selectClock runs the classical circular-scan algorithm: the hand
// advances modulo N, decrementing any unpinned frame's usage count on the
// way and resetting the no-progress counter whenever it does so. A frame
// is returned as soon as the hand lands on one with refcount==0 and
// usage_count==0. If a full cycle passes with no progress — every frame
// pinned the whole way round — it fails.
//
// The header lock on the last frame examined is always released before
// ErrNoUnpinnedBuffers is raised; it is never returned still held on the
// error path.
func (c *Control) selectClock() (*Frame, error) {
	n := c.table.N()
	tryCounter := n

	for {
		f := c.table.Frame(c.nextVictimBuffer)
		c.nextVictimBuffer++
		if c.nextVictimBuffer >= n {
			c.nextVictimBuffer = 0
			c.completePasses++
		}

		f.LockHeader()
		if f.RefCount() == 0 {
			if f.UsageCount() > 0 {
				f.SetUsageCount(f.UsageCount() - 1)
				tryCounter = n
				f.UnlockHeader()
				continue
			}
			return f, nil
		}
		f.UnlockHeader()

		tryCounter--
		if tryCounter == 0 {
			return nil, ErrNoUnpinnedBuffers
		}
	}
}
