package buffer

// The freelist is a singly-linked stack over Frame.freeNext, head-popped by
// allocation and head-pushed by release. Every method here assumes the
// caller already holds the freelist lock: freeNext is freelist-lock
// protected even though each frame additionally has its own header lock.

// tryPopFree pops frames off the freelist head until it finds one with
// RefCount()==0 and UsageCount()==0 (checked under that frame's header
// lock), or the list drains. Frames that fail the check are simply
// discarded from the freelist — this can only happen if something re-used
// the frame after it was queued for release, an ordinary race rather than
// an error.
//
// Returns the winning frame with its header lock still held, or nil.
func (c *Control) tryPopFree() *Frame {
	for c.firstFreeBuffer >= 0 {
		f := c.table.Frame(c.firstFreeBuffer)
		c.firstFreeBuffer = f.freeNext
		f.freeNext = notInList

		f.LockHeader()
		if f.RefCount() == 0 && f.UsageCount() == 0 {
			return f
		}
		f.UnlockHeader()
	}
	return nil
}

// pushFree pushes f onto the freelist head. It is idempotent: a frame
// already linked into the freelist (freeNext != notInList) is left alone.
func (c *Control) pushFree(f *Frame) {
	if f.freeNext != notInList {
		return
	}
	f.freeNext = c.firstFreeBuffer
	if f.freeNext < 0 {
		c.lastFreeBuffer = f.id
	}
	c.firstFreeBuffer = f.id
}
