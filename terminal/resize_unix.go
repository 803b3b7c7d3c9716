//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// WatchResize reports the new window size every time the process receives
// SIGWINCH. Pending sizes that were not consumed are replaced by newer ones.
// Call stop to unregister the signal handler.
func WatchResize(t Terminal) (<-chan Size, func()) {
	sizes := make(chan Size, 1)
	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigChan, syscall.SIGWINCH)

	go func() {
		for {
			select {
			case <-done:
				return
			case <-sigChan:
				w, h, err := t.GetWindowSize()
				if err != nil {
					continue
				}
				publishSize(sizes, Size{Width: w, Height: h})
			}
		}
	}()

	return sizes, func() {
		signal.Stop(sigChan)
		close(done)
	}
}
