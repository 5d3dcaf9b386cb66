package floating

import (
	"context"
	"sync"
	"time"

	"github.com/grindlemire/go-floating/pkg/debug"
)

// FrameID identifies a requested frame callback. Zero is never issued.
type FrameID uint64

// FrameFunc runs once on the next frame with the frame's timestamp.
type FrameFunc func(now time.Time)

// FrameScheduler schedules callbacks for the next frame.
// A cancelled callback never runs, even if its frame is already due.
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// frameQueue is the bookkeeping shared by the schedulers.
type frameQueue struct {
	mu      sync.Mutex
	next    FrameID
	pending map[FrameID]FrameFunc
	order   []FrameID
}

func (q *frameQueue) request(fn FrameFunc) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pending == nil {
		q.pending = make(map[FrameID]FrameFunc)
	}
	q.next++
	q.pending[q.next] = fn
	q.order = append(q.order, q.next)
	return q.next
}

func (q *frameQueue) cancel(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.pending, id)
}

// due returns the ids requested so far; frames requested while they run wait
// for the following frame.
func (q *frameQueue) due() []FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	ids := make([]FrameID, 0, len(q.order))
	for _, id := range q.order {
		if _, ok := q.pending[id]; ok {
			ids = append(ids, id)
		}
	}
	q.order = nil
	return ids
}

// take removes and returns the callback if it is still pending.
func (q *frameQueue) take(id FrameID) (FrameFunc, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	fn, ok := q.pending[id]
	delete(q.pending, id)
	return fn, ok
}

func (q *frameQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// run fires the given frames, skipping any cancelled in the meantime.
func (q *frameQueue) run(ids []FrameID, now time.Time) int {
	n := 0
	for _, id := range ids {
		fn, ok := q.take(id)
		if !ok {
			continue
		}
		fn(now)
		n++
	}
	return n
}

// ManualScheduler is a deterministic FrameScheduler advanced by Step.
// It is used by tests and simulations; Step must be called from the same
// goroutine that handles events.
type ManualScheduler struct {
	queue frameQueue
	mu    sync.Mutex
	now   time.Time
}

var _ FrameScheduler = (*ManualScheduler)(nil)

// NewManualScheduler creates a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// RequestFrame implements FrameScheduler.
func (s *ManualScheduler) RequestFrame(fn FrameFunc) FrameID {
	return s.queue.request(fn)
}

// CancelFrame implements FrameScheduler.
func (s *ManualScheduler) CancelFrame(id FrameID) {
	s.queue.cancel(id)
}

// Now returns the scheduler's clock.
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Step advances the clock by dt and runs the frames that were pending before
// the call. It returns the number of callbacks that ran.
func (s *ManualScheduler) Step(dt time.Duration) int {
	s.mu.Lock()
	s.now = s.now.Add(dt)
	now := s.now
	s.mu.Unlock()
	return s.queue.run(s.queue.due(), now)
}

// Pending returns the number of frames waiting to run.
func (s *ManualScheduler) Pending() int {
	return s.queue.len()
}

// TickerScheduler fires frames at a fixed interval. Ticks come from a
// background goroutine, but callbacks are handed to post and run wherever the
// host's UI thread executes posted functions.
type TickerScheduler struct {
	queue    frameQueue
	interval time.Duration
	post     func(func())
}

var _ FrameScheduler = (*TickerScheduler)(nil)

// NewTickerScheduler creates a scheduler ticking every interval.
// post must run the function on the UI thread; Loop.Post qualifies.
func NewTickerScheduler(interval time.Duration, post func(func())) *TickerScheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &TickerScheduler{interval: interval, post: post}
}

// RequestFrame implements FrameScheduler.
func (s *TickerScheduler) RequestFrame(fn FrameFunc) FrameID {
	return s.queue.request(fn)
}

// CancelFrame implements FrameScheduler.
func (s *TickerScheduler) CancelFrame(id FrameID) {
	s.queue.cancel(id)
}

// Run ticks until ctx is done.
func (s *TickerScheduler) Run(ctx context.Context) error {
	debug.Log("TickerScheduler started interval=%s", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			ids := s.queue.due()
			if len(ids) == 0 {
				continue
			}
			s.post(func() { s.queue.run(ids, now) })
		}
	}
}
