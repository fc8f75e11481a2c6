package buffer

import "sync"

// Latch is the wake-up handle the background writer registers so it can be
// notified of allocation activity. This package never inspects it beyond
// calling Set.
type Latch interface {
	Set()
}

// Control is the single, process-wide replacement-strategy state. It lives
// behind one exclusive lock — the freelist lock — plus independent
// per-frame header locks for refcount and usage_count.
//
// The policy selector is read without locking (policy is a plain int32
// written/read with atomic ops): races on which algorithm runs are benign,
// since changing the policy mid-run only affects which branch the next
// GetBuffer takes.
type Control struct {
	mu    sync.Mutex // the freelist lock
	table *FrameTable

	policy policyBits

	nextVictimBuffer int32
	completePasses   uint32
	numBufferAllocs  uint32

	firstFreeBuffer int32
	lastFreeBuffer  int32

	bgwriterLatch Latch

	firstUnpinned int32
	lastUnpinned  int32

	a1Head int32
	a1Tail int32

	initialized bool
}

// NewControl creates process-wide strategy state over table, with policy as
// the initially active replacement algorithm. Use Initialize to thread the
// frame array into the freelist before issuing any GetBuffer calls.
func NewControl(table *FrameTable, policy Policy) *Control {
	c := &Control{table: table}
	c.policy.store(policy)
	c.resetLocked()
	return c
}

// Policy returns the currently active replacement policy.
func (c *Control) Policy() Policy { return c.policy.load() }

// SetPolicy changes the active replacement policy. Safe to call
// concurrently with GetBuffer; see the selector note above.
func (c *Control) SetPolicy(p Policy) { c.policy.store(p) }

// ReleaseFreelistLock releases the freelist lock. Callers use this to drop
// the lock GetBuffer reports as held via its lockHeld return value, once
// they are done pinning the frame it returned.
func (c *Control) ReleaseFreelistLock() { c.mu.Unlock() }

func (c *Control) resetLocked() {
	c.nextVictimBuffer = 0
	c.completePasses = 0
	c.numBufferAllocs = 0
	c.firstFreeBuffer = notInList
	c.lastFreeBuffer = notInList
	c.bgwriterLatch = nil
	c.firstUnpinned = notInList
	c.lastUnpinned = notInList
	c.a1Head = notInList
	c.a1Tail = notInList
}
