package buffer

// Victim queues are doubly-linked lists threaded through Frame.prev/next,
// shared by whichever queue currently holds the frame: a frame is in at
// most one of main/A1 at a time, so the same two index fields serve both
// victim queues without collision (the freelist uses Frame.freeNext
// instead). All mutation happens under the
// freelist lock; these helpers assume the caller already holds it.
//
// Removal and insertion are expressed once, parametrized over which
// queue's head/tail a call is operating on, rather than duplicated per
// queue — the four splice cases (middle/head/tail/singleton) all fall out
// of the same general logic.

// queueRemove splices f out of the queue identified by head/tail.
func (c *Control) queueRemove(head, tail *int32, f *Frame) {
	if f.prev != notInList {
		c.table.Frame(f.prev).next = f.next
	} else {
		*head = f.next
	}
	if f.next != notInList {
		c.table.Frame(f.next).prev = f.prev
	} else {
		*tail = f.prev
	}
	f.prev = notInList
	f.next = notInList
}

// queueAppend inserts f at the tail of the queue identified by head/tail —
// insertion is always newest-at-tail.
func (c *Control) queueAppend(head, tail *int32, f *Frame) {
	f.prev = *tail
	f.next = notInList
	if *tail != notInList {
		c.table.Frame(*tail).next = f.id
	} else {
		*head = f.id
	}
	*tail = f.id
}

// queueContains reports whether f is linked into the queue starting at
// head, by linear walk.
func (c *Control) queueContains(head int32, f *Frame) bool {
	for i := head; i != notInList; i = c.table.Frame(i).next {
		if c.table.Frame(i) == f {
			return true
		}
	}
	return false
}

// queueLen walks the queue starting at head to compute its length. An
// explicit counter would avoid the walk; this core keeps the simpler,
// O(queue length) form since 2Q's threshold check is the only caller.
func (c *Control) queueLen(head int32) int32 {
	var n int32
	for i := head; i != notInList; i = c.table.Frame(i).next {
		n++
	}
	return n
}
