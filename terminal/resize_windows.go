//go:build windows

package terminal

import "time"

const resizePollInterval = 250 * time.Millisecond

// WatchResize polls the console size, since Windows consoles do not raise a
// signal on resize. Call stop to end polling.
func WatchResize(t Terminal) (<-chan Size, func()) {
	sizes := make(chan Size, 1)
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(resizePollInterval)
		defer ticker.Stop()
		var last Size
		if w, h, err := t.GetWindowSize(); err == nil {
			last = Size{Width: w, Height: h}
		}
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				w, h, err := t.GetWindowSize()
				if err != nil {
					continue
				}
				if size := (Size{Width: w, Height: h}); size != last {
					last = size
					publishSize(sizes, size)
				}
			}
		}
	}()

	return sizes, func() { close(done) }
}
