// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"context"
	"sync"
	"time"
)

// callHandle guards the completion of one tracked remote call. cancelled is
// only touched on the run loop; a completion turn that finds it set must
// not mutate engine state.
type callHandle struct {
	cancel    context.CancelFunc
	cancelled bool
}

// callLedger tracks every in-flight remote call and its cancellation token.
// Calls run on short-lived goroutines; their completions re-enter the
// engine through posted turns, so the ledger itself carries no engine
// state.
type callLedger struct {
	mu     sync.Mutex
	next   int
	active map[int]context.CancelFunc
	closed bool

	wg sync.WaitGroup
}

func newCallLedger() *callLedger {
	return &callLedger{active: make(map[int]context.CancelFunc)}
}

// launch runs fn on its own goroutine with a cancellable context, bounded
// by timeout when timeout is positive. The returned cancel releases the
// token early; the ledger always releases it when fn returns.
func (l *callLedger) launch(timeout time.Duration, fn func(ctx context.Context)) context.CancelFunc {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return func() {}
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	id := l.next
	l.next++
	l.active[id] = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		defer l.release(id)
		fn(ctx)
	}()

	return cancel
}

func (l *callLedger) release(id int) {
	l.mu.Lock()
	cancel, ok := l.active[id]
	if ok {
		delete(l.active, id)
	}
	l.mu.Unlock()
	if ok {
		cancel()
	}
}

// cancelAll cancels every live token and refuses further launches. Already
// running calls unblock through their contexts; their completion turns are
// rejected by the closing run loop.
func (l *callLedger) cancelAll() {
	l.mu.Lock()
	l.closed = true
	cancels := make([]context.CancelFunc, 0, len(l.active))
	for _, c := range l.active {
		cancels = append(cancels, c)
	}
	l.mu.Unlock()

	for _, c := range cancels {
		c()
	}
}

// wait blocks until every launched goroutine has returned.
func (l *callLedger) wait() {
	l.wg.Wait()
}

// idle reports whether no calls are in flight.
func (l *callLedger) idle() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.active) == 0
}
