package buffer

import "testing"

func TestQueueAppendAndRemoveFourCases(t *testing.T) {
	table := NewFrameTable(4)
	c := NewControl(table, PolicyClock)

	var head, tail int32 = notInList, notInList
	f0, f1, f2 := table.Frame(0), table.Frame(1), table.Frame(2)

	// Singleton: append then remove leaves the queue empty.
	c.queueAppend(&head, &tail, f0)
	if head != 0 || tail != 0 {
		t.Fatalf("expected singleton head=tail=0, got head=%d tail=%d", head, tail)
	}
	c.queueRemove(&head, &tail, f0)
	if head != notInList || tail != notInList {
		t.Fatalf("expected empty queue after removing singleton, got head=%d tail=%d", head, tail)
	}

	// Build a 3-element queue: 0 -> 1 -> 2 (oldest to newest).
	c.queueAppend(&head, &tail, f0)
	c.queueAppend(&head, &tail, f1)
	c.queueAppend(&head, &tail, f2)
	if head != 0 || tail != 2 {
		t.Fatalf("expected head=0 tail=2, got head=%d tail=%d", head, tail)
	}

	// Remove the middle element.
	c.queueRemove(&head, &tail, f1)
	if head != 0 || tail != 2 {
		t.Fatalf("expected head=0 tail=2 after middle removal, got head=%d tail=%d", head, tail)
	}
	if f0.next != 2 || f2.prev != 0 {
		t.Fatalf("expected 0 and 2 to be spliced together, got f0.next=%d f2.prev=%d", f0.next, f2.prev)
	}

	// Remove the head.
	c.queueRemove(&head, &tail, f0)
	if head != 2 || tail != 2 {
		t.Fatalf("expected head=tail=2 after removing old head, got head=%d tail=%d", head, tail)
	}

	// Remove the last remaining element (now both head and tail).
	c.queueRemove(&head, &tail, f2)
	if head != notInList || tail != notInList {
		t.Fatalf("expected empty queue, got head=%d tail=%d", head, tail)
	}
}

func TestQueueContainsAndLen(t *testing.T) {
	table := NewFrameTable(3)
	c := NewControl(table, PolicyClock)

	var head, tail int32 = notInList, notInList
	for i := int32(0); i < 3; i++ {
		c.queueAppend(&head, &tail, table.Frame(i))
	}

	if c.queueLen(head) != 3 {
		t.Errorf("expected length 3, got %d", c.queueLen(head))
	}
	if !c.queueContains(head, table.Frame(1)) {
		t.Errorf("expected frame 1 to be found in queue")
	}

	other := NewFrameTable(1).Frame(0)
	if c.queueContains(head, other) {
		t.Errorf("did not expect an unrelated frame to be found in queue")
	}
}
