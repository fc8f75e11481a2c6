package buffer

// GetBuffer is the strategy façade's main entry point. If strategy is
// non-nil, the ring is tried first; a ring hit is returned with
// lockHeld=false since it never touched the freelist lock. Otherwise the
// freelist lock is acquired and the freelist is drained before falling
// back to the active policy's SelectVictim. The returned frame is always
// header-locked; lockHeld reports whether the freelist lock is also still
// held (true exactly when the frame came from the freelist or the global
// policy scan) — the caller releases both locks after pinning the frame,
// the freelist one via ReleaseFreelistLock and the frame's own via
// Frame.UnlockHeader.
func (c *Control) GetBuffer(strategy *AccessStrategy) (frame *Frame, lockHeld bool, err error) {
	if strategy != nil {
		if f := strategy.GetFromRing(); f != nil {
			return f, false, nil
		}
	}

	c.mu.Lock()
	c.numBufferAllocs++

	// Signalling the bgwriter may schedule other goroutines, so it must
	// not happen while the freelist lock is held.
	if c.bgwriterLatch != nil {
		latch := c.bgwriterLatch
		c.bgwriterLatch = nil
		c.mu.Unlock()
		latch.Set()
		c.mu.Lock()
	}

	if f := c.tryPopFree(); f != nil {
		if strategy != nil {
			strategy.AddToRing(f)
		}
		return f, true, nil
	}

	f, err := c.SelectVictim()
	if err != nil {
		c.mu.Unlock()
		return nil, false, err
	}
	if strategy != nil {
		strategy.AddToRing(f)
	}
	return f, true, nil
}

// FreeBuffer moves f onto the freelist. Idempotent: freeing an already-free
// frame is a no-op (pushFree).
func (c *Control) FreeBuffer(f *Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pushFree(f)
}

// SyncStart returns a hint for where a background sync scan should begin
// (the CLOCK hand), and optionally copies out completePasses and
// numBufferAllocs. Passing a non-nil allocs resets the allocation counter
// to zero — that read-and-clear is the only reason this operation exists.
func (c *Control) SyncStart(passes, allocs *uint32) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := c.nextVictimBuffer
	if passes != nil {
		*passes = c.completePasses
	}
	if allocs != nil {
		*allocs = c.numBufferAllocs
		c.numBufferAllocs = 0
	}
	return result
}

// NotifyBgWriter stores latch (possibly nil) for the next GetBuffer call to
// signal. The lock is taken solely to make the store visible atomically to
// GetBuffer.
func (c *Control) NotifyBgWriter(latch Latch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bgwriterLatch = latch
}
