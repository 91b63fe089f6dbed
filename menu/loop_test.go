// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLoopOrdersTurns(t *testing.T) {
	l := newRunLoop()
	defer l.close(func() {})

	var order []string
	l.call(func() {
		l.post(func() { order = append(order, "a") })
		l.post(func() {
			order = append(order, "b")
			// Nested posts run after the rest of the queue.
			l.post(func() { order = append(order, "d") })
		})
		l.post(func() { order = append(order, "c") })
	})

	var got []string
	l.call(func() { got = append(got, order...) })
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestRunLoopCallIsSynchronous(t *testing.T) {
	l := newRunLoop()
	defer l.close(func() {})

	value := 0
	l.call(func() { value = 42 })
	assert.Equal(t, 42, value)
}

func TestRunLoopCloseRunsFinalLast(t *testing.T) {
	l := newRunLoop()

	var order []string
	require.True(t, l.post(func() { order = append(order, "turn") }))
	l.close(func() { order = append(order, "final") })

	assert.Equal(t, []string{"turn", "final"}, order)

	// Posts after close are rejected and never run.
	assert.False(t, l.post(func() { order = append(order, "late") }))

	// Calls after close run inline on the caller.
	ran := false
	l.call(func() { ran = true })
	assert.True(t, ran)
	assert.Equal(t, []string{"turn", "final"}, order)
}

func TestRunLoopCloseIdempotent(t *testing.T) {
	l := newRunLoop()
	count := 0
	l.close(func() { count++ })
	l.close(func() { count++ })
	assert.Equal(t, 1, count)
}
