package buffer

// select2Q implements the 2Q policy: with threshold = N/2, once the A1
// (probation) queue has grown to the threshold — or the main queue is
// empty — eviction comes from A1; otherwise it comes from the main queue.
// Either way the first unpinned frame found scanning head-to-tail wins,
// and is removed from whichever queue it was pulled from.
func (c *Control) select2Q() (*Frame, error) {
	threshold := c.table.N() / 2
	sizeA1 := c.queueLen(c.a1Head)

	if sizeA1 >= threshold || c.firstUnpinned == notInList {
		return c.scanAndEvict(&c.a1Head, &c.a1Tail)
	}
	return c.scanAndEvict(&c.firstUnpinned, &c.lastUnpinned)
}

// scanAndEvict walks the queue identified by head/tail from head toward
// tail, returning (header-locked, removed from the queue) the first frame
// with refcount==0.
func (c *Control) scanAndEvict(head, tail *int32) (*Frame, error) {
	for i := *head; i != notInList; {
		f := c.table.Frame(i)
		f.LockHeader()
		if f.RefCount() == 0 {
			c.queueRemove(head, tail, f)
			return f, nil
		}
		next := f.next
		f.UnlockHeader()
		i = next
	}
	return nil, ErrNoUnpinnedBuffers
}
