// Package timer provides the cancellable countdown a quiz question or
// session runs against. The engine owns at most one live handle; every
// transition away from running stops the old handle before a new one is
// scheduled, so a stale timeout can never fire into a newer session.
package timer

import (
	"sync"
	"time"
)

// Handle is one scheduled countdown. Stop is safe to call more than once
// and after the countdown already fired.
type Handle struct {
	stop chan struct{}
	once sync.Once
}

// Stop cancels the countdown. No new callbacks fire after Stop returns;
// a tick already in flight may still complete.
func (h *Handle) Stop() {
	h.once.Do(func() { close(h.stop) })
}

// Schedule starts a countdown of ticks intervals. onTick fires after each
// interval with the remaining count; when it reaches zero onTimeout fires
// instead and the countdown ends. Either callback may be nil.
func Schedule(interval time.Duration, ticks int, onTick func(remaining int), onTimeout func()) *Handle {
	h := &Handle{stop: make(chan struct{})}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		remaining := ticks
		for {
			select {
			case <-h.stop:
				return
			case <-t.C:
				remaining--
				if remaining <= 0 {
					if onTimeout != nil {
						onTimeout()
					}
					return
				}
				if onTick != nil {
					onTick(remaining)
				}
			}
		}
	}()

	return h
}
