package buffer

import "sync"

// notInList is the sentinel freeNext value for a frame that is not on the
// freelist, and the sentinel prev/next value for a frame not on a victim
// queue. Frame indices themselves range over 0..N-1, so -1 is unambiguous.
const notInList int32 = -1

// Frame holds the fields the replacement core itself reads and writes:
// the pin count, the CLOCK usage counter, and the links into the freelist
// and the victim queues. Everything else about a buffer frame — its
// content, its dirty bit, the block it currently holds, how it gets loaded
// from disk — belongs to the buffer descriptor table, which is external to
// this package; this module never touches any of that.
//
// prev/next/freeNext are indices into a FrameTable's frames slice rather
// than pointers, so the victim queues and the freelist are plain arrays
// with no reference cycles — the frames are "owned" by the table, not by
// whichever list currently threads through them.
type Frame struct {
	headerMu sync.Mutex

	id         int32
	refCount   int32
	usageCount int32

	freeNext   int32
	prev, next int32
}

// LockHeader acquires the frame's header spinlock. Header locks are leaf
// locks: never taken while already holding another frame's header lock,
// and either taken alone (OnUnpinned, the access-strategy ring) or while
// already holding the freelist lock (global victim selection).
func (f *Frame) LockHeader() { f.headerMu.Lock() }

// UnlockHeader releases the frame's header spinlock.
func (f *Frame) UnlockHeader() { f.headerMu.Unlock() }

// ID returns the frame's own index (buf_id).
func (f *Frame) ID() int32 { return f.id }

// RefCount returns the frame's pin count. Callers normally hold the header
// lock when this matters for a decision.
func (f *Frame) RefCount() int32 { return f.refCount }

// SetRefCount is used by the external pin manager (and by tests standing in
// for it) to record pins/unpins; this core never increments a refcount
// itself, it only reads it.
func (f *Frame) SetRefCount(n int32) { f.refCount = n }

// UsageCount returns the CLOCK approximation-of-recency counter.
func (f *Frame) UsageCount() int32 { return f.usageCount }

// SetUsageCount is used by the external pin manager (incrementing on
// access) and by CLOCK itself (decrementing during a sweep).
func (f *Frame) SetUsageCount(n int32) { f.usageCount = n }

// inFreelist reports whether the frame is currently linked into the
// freelist. Only meaningful while holding the freelist lock.
func (f *Frame) inFreelist() bool { return f.freeNext != notInList }

// FrameTable is the minimal representation of the descriptor table that
// this core depends on: a fixed array of Frame, indexable by buf_id. A real
// system's descriptor table additionally owns page content, dirty bits,
// and disk I/O; none of that is modeled here because the replacement core
// never touches it.
type FrameTable struct {
	frames []Frame
}

// NewFrameTable allocates a table of n frames, each initially detached
// from every list (not in the freelist, not in any victim queue). Callers
// thread the frames into the freelist via Control.Initialize.
func NewFrameTable(n int32) *FrameTable {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i].id = int32(i)
		frames[i].freeNext = notInList
		frames[i].prev = notInList
		frames[i].next = notInList
	}
	return &FrameTable{frames: frames}
}

// N returns the total frame count.
func (t *FrameTable) N() int32 { return int32(len(t.frames)) }

// Frame is the O(1) lookup from index to descriptor.
func (t *FrameTable) Frame(i int32) *Frame { return &t.frames[i] }
