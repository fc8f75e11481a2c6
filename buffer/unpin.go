package buffer

// OnUnpinned is invoked by the external pin manager precisely when the last
// pin on the frame at frameIndex is released. It is advisory: it takes the
// freelist lock conditionally and returns immediately on contention rather
// than blocking, because a frame missed by one OnUnpinned will still be
// caught by the next CLOCK sweep or queue scan.
func (c *Control) OnUnpinned(frameIndex int32) {
	if !c.mu.TryLock() {
		return
	}
	defer c.mu.Unlock()

	f := c.table.Frame(frameIndex)

	if c.Policy() == Policy2Q {
		c.onUnpinned2Q(f)
		return
	}
	c.moveToMainTail(f)
}

// moveToMainTail is the CLOCK/LRU/MRU branch of the unpin hook: f is
// spliced out of the main queue if it is already linked into it (from any
// position — middle, head, or tail), then appended at the tail.
//
// f is "in the main queue" whenever it has a live link on either side, or
// it is the queue's sole element (both links nil but it is the head); that
// third case is what distinguishes a lone tail-or-head member from a frame
// that was never queued at all.
func (c *Control) moveToMainTail(f *Frame) {
	inMain := f.prev != notInList || f.next != notInList || c.firstUnpinned == f.id
	if inMain {
		c.queueRemove(&c.firstUnpinned, &c.lastUnpinned, f)
	}
	c.queueAppend(&c.firstUnpinned, &c.lastUnpinned, f)
}

// onUnpinned2Q is the three-way 2Q dispatch:
//  1. already in main: move to main tail
//  2. in A1: promote to main tail
//  3. otherwise: first sighting, append to A1 tail
func (c *Control) onUnpinned2Q(f *Frame) {
	if c.queueContains(c.firstUnpinned, f) {
		c.queueRemove(&c.firstUnpinned, &c.lastUnpinned, f)
		c.queueAppend(&c.firstUnpinned, &c.lastUnpinned, f)
		return
	}
	if c.queueContains(c.a1Head, f) {
		c.queueRemove(&c.a1Head, &c.a1Tail, f)
		c.queueAppend(&c.firstUnpinned, &c.lastUnpinned, f)
		return
	}
	c.queueAppend(&c.a1Head, &c.a1Tail, f)
}
