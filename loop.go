package floating

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Loop is a minimal UI thread: posted functions run one at a time, in order,
// on the goroutine executing Run. Hosts with their own event loop do not
// need it.
type Loop struct {
	queue chan func()
	done  chan struct{}
}

// NewLoop creates a loop with the given queue capacity.
func NewLoop(capacity int) *Loop {
	return &Loop{
		queue: make(chan func(), capacity),
		done:  make(chan struct{}),
	}
}

// Post enqueues fn. It blocks while the queue is full and drops fn once the
// loop has stopped.
func (l *Loop) Post(fn func()) {
	select {
	case l.queue <- fn:
	case <-l.done:
	}
}

// Run executes posted functions until ctx is done. Each worker runs in its own
// goroutine for the lifetime of the loop; the first worker error stops the
// loop and is returned.
func (l *Loop) Run(ctx context.Context, workers ...func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range workers {
		w := w
		g.Go(func() error { return w(ctx) })
	}
	g.Go(func() error {
		defer close(l.done)
		for {
			select {
			case <-ctx.Done():
				return nil
			case fn := <-l.queue:
				fn()
			}
		}
	})
	return g.Wait()
}
