package host

import (
	"context"
)

// Scheduler runs fetch work away from the host and delivers the completion
// it returns back to the host. Completions must run one at a time, on the
// same goroutine that drives the Host.
type Scheduler interface {
	Go(work func(ctx context.Context) func())
}

// Loop is a single-threaded event loop. Queued closures run one at a time
// on the goroutine that calls Run, so a Host driven only through the Loop
// needs no locking.
type Loop struct {
	ctx   context.Context
	queue chan func()
}

// NewLoop creates a loop that stops when ctx is done.
func NewLoop(ctx context.Context) *Loop {
	return &Loop{
		ctx:   ctx,
		queue: make(chan func(), 64),
	}
}

// Run processes queued closures until the loop's context is done.
func (l *Loop) Run() {
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-l.ctx.Done():
			return
		}
	}
}

// Post queues fn. It reports false if the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	if l.ctx.Err() != nil {
		return false
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.ctx.Done():
		return false
	}
}

// Do runs fn on the loop and waits for it to return. It must not be called
// from the loop itself.
func (l *Loop) Do(fn func()) error {
	done := make(chan struct{})
	if !l.Post(func() {
		defer close(done)
		fn()
	}) {
		return l.ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-l.ctx.Done():
		return l.ctx.Err()
	}
}

// Go implements Scheduler. work runs on its own goroutine; the completion it
// returns is queued on the loop. There is no cancellation beyond the loop's
// own context.
func (l *Loop) Go(work func(ctx context.Context) func()) {
	go func() {
		if apply := work(l.ctx); apply != nil {
			l.Post(apply)
		}
	}()
}
