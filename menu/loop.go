// SPDX-License-Identifier: Apache-2.0

package menu

import "sync"

// runLoop is the engine's cooperative scheduler: a serial queue of turns
// executed by a single goroutine. Every mutation of engine state runs as a
// turn, so no further locking discipline is needed inside the engine.
//
// A turn posted from within a turn runs after the remainder of the current
// queue; that ordering is what lets many property requests issued
// back-to-back during reconciliation land in one batched call.
type runLoop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	closed bool

	done chan struct{}
}

func newRunLoop() *runLoop {
	l := &runLoop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go l.run()
	return l
}

// post enqueues fn as a future turn. It reports false once the loop is
// closing; a rejected turn never runs.
func (l *runLoop) post(fn func()) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// call runs fn as a turn and waits for it to finish. If the loop has
// already stopped, fn runs on the caller's goroutine after the final turn
// completes: the loop goroutine is gone, so there is nothing to race with.
func (l *runLoop) call(fn func()) {
	ran := make(chan struct{})
	if !l.post(func() {
		fn()
		close(ran)
	}) {
		<-l.done
		fn()
		return
	}
	<-ran
}

// close enqueues final as the last turn, rejects all subsequent posts, and
// waits for the loop goroutine to drain the queue and exit.
func (l *runLoop) close(final func()) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.closed = true
	l.queue = append(l.queue, final)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	<-l.done
}

func (l *runLoop) run() {
	defer close(l.done)
	for {
		l.mu.Lock()
		queue := l.queue
		l.queue = nil
		closed := l.closed
		l.mu.Unlock()

		for _, fn := range queue {
			fn()
		}

		if closed {
			return
		}
		if len(queue) == 0 {
			<-l.wake
		}
	}
}

// empty reports whether no turns are queued. Used by tests to detect
// quiescence.
func (l *runLoop) empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue) == 0
}
