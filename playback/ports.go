// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"time"

	"github.com/wowcoders/harmoniq/audio"
)

// Backend starts realtime playback of a buffer. Implementations live
// outside this module (speaker output, web audio bridge, test fakes).
type Backend interface {
	// Play starts rendering buf from offset seconds, stopping on its
	// own after duration seconds (or at the end of the buffer if
	// duration runs past it).
	Play(buf *audio.Buffer, offset, duration float64) (Voice, error)
}

// Voice is one active playback started by a Backend.
type Voice interface {
	// Position returns the current playhead in seconds from the
	// start of the buffer.
	Position() float64
	// Stop halts playback. Stopping a finished voice is a no-op.
	Stop() error
	// Done is closed when the voice reaches its natural end.
	Done() <-chan struct{}
}

// Scheduler fires fn repeatedly at a fixed interval until the
// returned cancel function is called. Cancel must be safe to call
// more than once.
type Scheduler interface {
	Schedule(interval time.Duration, fn func()) (cancel func())
}
