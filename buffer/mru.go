package buffer

// selectMRU walks the main queue from its newest end (lastUnpinned) toward
// the head and returns the first frame whose refcount is zero,
// header-locked — mirroring selectLRU in the opposite direction. The
// header lock is released on every non-matching node.
func (c *Control) selectMRU() (*Frame, error) {
	for i := c.lastUnpinned; i != notInList; {
		f := c.table.Frame(i)
		f.LockHeader()
		if f.RefCount() == 0 {
			return f, nil
		}
		f.UnlockHeader()
		i = f.prev
	}
	return nil, ErrNoUnpinnedBuffers
}
