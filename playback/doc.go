// SPDX-License-Identifier: EPL-2.0

// Package playback drives "play region" / "stop" over an injected
// realtime backend.
//
// The controller is a two-state machine, Idle and Playing. Play
// starts a session on the backend and schedules a periodic playhead
// report (pixel space, via the timeline mapper) for external redraw.
// Calling Play during playback stops the current session instead of
// restarting with the new bounds; Stop is idempotent and guarantees
// that no position report is delivered after it returns.
//
//	ctrl := playback.NewController(buf, mapper, backend, playback.TickerScheduler{},
//	    playback.WithPositionCallback(redraw))
//	ctrl.Play(1.5, 3.0)
//	...
//	ctrl.Stop()
//
// The backend and the report scheduler are ports (Backend, Voice,
// Scheduler), so tests substitute fakes and hosts plug in whatever
// audio output they have.
package playback
