// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"sync"
	"time"
)

// TickerScheduler implements Scheduler on a time.Ticker. Cancel joins
// the firing goroutine: once it returns, fn is not running and will
// not run again. Callers must not invoke cancel from inside fn.
type TickerScheduler struct{}

func (TickerScheduler) Schedule(interval time.Duration, fn func()) (cancel func()) {
	ticker := time.NewTicker(interval)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(stop)
		})
		<-done
	}
}
