package game

import "time"

// FrameID identifies a scheduled frame callback. Zero is never issued.
type FrameID uint64

// Scheduler is the host's per-frame timing primitive: a requested callback
// runs once, on the next host frame, with that frame's timestamp.
type Scheduler interface {
	RequestFrame(fn func(ts time.Time)) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a single-slot Scheduler pumped by a shell from its own
// frame callback (a Bubble Tea tick, an Ebiten Update). A new request
// replaces any pending one.
type FrameQueue struct {
	next    FrameID
	pending FrameID
	fn      func(time.Time)
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn func(ts time.Time)) FrameID {
	q.next++
	q.pending = q.next
	q.fn = fn
	return q.pending
}

// CancelFrame implements Scheduler. Cancelling a stale id is a no-op.
func (q *FrameQueue) CancelFrame(id FrameID) {
	if id != 0 && id == q.pending {
		q.pending = 0
		q.fn = nil
	}
}

// Pending reports whether a callback is waiting for the next frame.
func (q *FrameQueue) Pending() bool {
	return q.fn != nil
}

// RunPending runs the waiting callback, if any, with timestamp ts.
// The slot is cleared first so the callback can request the next frame.
func (q *FrameQueue) RunPending(ts time.Time) bool {
	fn := q.fn
	if fn == nil {
		return false
	}
	q.pending = 0
	q.fn = nil
	fn(ts)
	return true
}
