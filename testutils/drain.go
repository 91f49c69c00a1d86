// Package testutils holds helpers shared by the tests in this module.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// DrainBlocking expects to receive data in order from ch, then expects
// ch to be closed. Unlike Drain, the producer may still be running;
// each receive waits up to timeout.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Logf("draining: expecting %v", data)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting %v", datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-timer.C:
			t.Errorf("timed out, expecting i=%d %v", i, datum)
			return
		}
		resetTimer(timer, timeout)
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-timer.C:
		t.Error("at the end of draining, channel was not closed in time")
	}
}

// Drain is DrainBlocking for a channel that is already filled with
// the expected data. It will not work if the producer is still sending
// when this is called.
func Drain[T any](t TestT, data []T, ch <-chan T) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting %v", datum)
				continue
			}
			assert.Equal(t, datum, el)
		default:
			t.Errorf("channel was empty, expecting i=%d %v", i, datum)
		}
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	default:
		t.Error("at the end of draining, channel was empty but unclosed")
	}
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		<-t.C
	}
	t.Reset(d)
}
