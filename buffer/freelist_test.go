package buffer

import "testing"

func TestFreelistFastPath(t *testing.T) {
	// After Initialize, all 8 frames are free. GetBuffer(nil) returns
	// frame 0 (head of freelist), leaving firstFreeBuffer=1,
	// lastFreeBuffer=7.
	table := NewFrameTable(8)
	c := NewControl(table, PolicyClock)
	if err := c.Initialize(true); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	f, held, err := c.GetBuffer(nil)
	if err != nil {
		t.Fatalf("GetBuffer: %v", err)
	}
	if f.ID() != 0 {
		t.Errorf("expected frame 0, got %d", f.ID())
	}
	if !held {
		t.Errorf("expected lockHeld=true on the freelist path")
	}
	f.UnlockHeader()
	c.ReleaseFreelistLock()

	if c.firstFreeBuffer != 1 {
		t.Errorf("expected firstFreeBuffer=1, got %d", c.firstFreeBuffer)
	}
	if c.lastFreeBuffer != 7 {
		t.Errorf("expected lastFreeBuffer=7, got %d", c.lastFreeBuffer)
	}
}

func TestPushFreeIdempotent(t *testing.T) {
	// Idempotent release: FreeBuffer(f); FreeBuffer(f) leaves the freelist
	// identical to FreeBuffer(f) alone.
	table := NewFrameTable(4)
	c := NewControl(table, PolicyClock)
	if err := c.Initialize(true); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	f, _, err := c.GetBuffer(nil)
	if err != nil {
		t.Fatalf("GetBuffer: %v", err)
	}
	f.UnlockHeader()
	c.ReleaseFreelistLock()

	c.FreeBuffer(f)
	firstAfterOne := c.firstFreeBuffer
	lastAfterOne := c.lastFreeBuffer

	c.FreeBuffer(f)
	if c.firstFreeBuffer != firstAfterOne || c.lastFreeBuffer != lastAfterOne {
		t.Errorf("second FreeBuffer changed state: first %d->%d last %d->%d",
			firstAfterOne, c.firstFreeBuffer, lastAfterOne, c.lastFreeBuffer)
	}
}

func TestTryPopFreeDiscardsRacingFrames(t *testing.T) {
	// A frame left on the freelist but since pinned (or touched) by
	// someone else is discarded rather than handed out.
	table := NewFrameTable(2)
	c := NewControl(table, PolicyClock)
	if err := c.Initialize(true); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	table.Frame(0).SetRefCount(1) // raced: pinned after being queued free

	c.mu.Lock()
	f := c.tryPopFree()
	c.mu.Unlock()

	if f == nil {
		t.Fatal("expected frame 1 to be returned after frame 0 is discarded")
	}
	if f.ID() != 1 {
		t.Errorf("expected frame 1, got %d", f.ID())
	}
	f.UnlockHeader()
}
