package buffer

import "sync/atomic"

// Policy selects which replacement algorithm SelectVictim runs. It is a
// tagged enum dispatched by a plain switch rather than an interface: the
// selector is set once at startup in the common case and the branch
// predicts perfectly, and a single Control only ever runs one algorithm at
// a time.
type Policy int32

const (
	// PolicyClock is the classical circular-scan algorithm.
	PolicyClock Policy = iota
	PolicyLRU
	PolicyMRU
	Policy2Q
)

// DefaultPolicy is 2Q.
const DefaultPolicy = Policy2Q

// String returns the diagnostic form of p: "clock", "lru", "mru", or "2q".
func (p Policy) String() string {
	switch p {
	case PolicyClock:
		return "clock"
	case PolicyLRU:
		return "lru"
	case PolicyMRU:
		return "mru"
	case Policy2Q:
		return "2q"
	default:
		return "unknown"
	}
}

// policyBits is Policy stored for lock-free reads: the selector may be read
// concurrently with a store from SetPolicy, and that race is benign.
type policyBits struct {
	v atomic.Int32
}

func (b *policyBits) load() Policy   { return Policy(b.v.Load()) }
func (b *policyBits) store(p Policy) { b.v.Store(int32(p)) }

// SelectVictim runs the active policy's scan over the victim queues and
// returns a header-locked, unpinned frame. Callers must already hold the
// freelist lock and must have drained the freelist first.
func (c *Control) SelectVictim() (*Frame, error) {
	switch c.Policy() {
	case PolicyClock:
		return c.selectClock()
	case PolicyLRU:
		return c.selectLRU()
	case PolicyMRU:
		return c.selectMRU()
	case Policy2Q:
		return c.select2Q()
	default:
		return nil, ErrInvalidPolicy
	}
}
