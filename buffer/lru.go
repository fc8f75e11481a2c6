package buffer

// selectLRU walks the main queue from its oldest end (firstUnpinned)
// toward the tail and returns the first frame whose refcount is zero,
// header-locked. The returned frame stays linked in the main queue — the
// caller is expected to pin it, which keeps it out of reach of the next
// scan without requiring a queue removal here. Every node that turns out
// to be pinned has its header lock released before the walk continues.
func (c *Control) selectLRU() (*Frame, error) {
	for i := c.firstUnpinned; i != notInList; {
		f := c.table.Frame(i)
		f.LockHeader()
		if f.RefCount() == 0 {
			return f, nil
		}
		f.UnlockHeader()
		i = f.next
	}
	return nil, ErrNoUnpinnedBuffers
}
