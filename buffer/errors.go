package buffer

import "errors"

// ErrNoUnpinnedBuffers is the operational failure raised by a policy's
// SelectVictim when every candidate it examined was pinned. The caller may
// retry at a higher level; it is not a process-fatal condition.
var ErrNoUnpinnedBuffers = errors.New("buffer: no unpinned buffers available")

// ErrInvalidPolicy is a programmer error: the active Policy value does not
// match any implemented replacement algorithm.
var ErrInvalidPolicy = errors.New("buffer: invalid replacement policy")

// ErrAlreadyInitialized is returned by Initialize when a secondary attacher
// calls it with isPrimary true on a Control that a primary already set up.
var ErrAlreadyInitialized = errors.New("buffer: strategy control already initialized")
