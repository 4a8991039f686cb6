// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/wowcoders/harmoniq/audio"
	"github.com/wowcoders/harmoniq/timeline"
)

// State of the controller: Idle or Playing.
type State int

const (
	Idle State = iota
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// DefaultTickInterval is how often the playhead position is reported
// while playing.
const DefaultTickInterval = 50 * time.Millisecond

// Controller drives playback of regions of a single buffer. At most
// one session is alive at a time. While playing, the playhead
// position is reported periodically through the position callback,
// converted to pixel space, for external redraw.
type Controller struct {
	buf     *audio.Buffer
	mapper  *timeline.Mapper
	backend Backend
	sched   Scheduler

	interval   time.Duration
	onPosition func(pixel float64)

	mu    sync.Mutex
	state State
	sess  *session
}

type session struct {
	voice      Voice
	cancelTick func()
	quit       chan struct{}

	// reports tracks position callbacks already past the session
	// check, so teardown can wait them out.
	reports sync.WaitGroup
}

// Option configures a Controller.
type Option func(*Controller)

// WithTickInterval overrides DefaultTickInterval.
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

// WithPositionCallback sets the periodic playhead report. The
// callback receives the playhead converted to pixel space and runs
// outside the controller's lock.
func WithPositionCallback(fn func(pixel float64)) Option {
	return func(c *Controller) { c.onPosition = fn }
}

func NewController(buf *audio.Buffer, mapper *timeline.Mapper, backend Backend, sched Scheduler, opts ...Option) *Controller {
	c := &Controller{
		buf:      buf,
		mapper:   mapper,
		backend:  backend,
		sched:    sched,
		interval: DefaultTickInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Play starts playback of [start, end] (seconds). If a session is
// already playing, Play stops it and returns to Idle without starting
// a new one; callers wanting a restart call Play again.
func (c *Controller) Play(start, end float64) error {
	c.mu.Lock()

	if c.state == Playing {
		sess := c.detachLocked()
		c.mu.Unlock()
		c.teardown(sess)
		return nil
	}

	voice, err := c.backend.Play(c.buf, start, end-start)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("start playback: %w", err)
	}

	sess := &session{
		voice: voice,
		quit:  make(chan struct{}),
	}
	sess.cancelTick = c.sched.Schedule(c.interval, func() { c.tick(sess) })

	c.sess = sess
	c.state = Playing
	c.mu.Unlock()

	go c.watch(sess)

	return nil
}

// Stop halts the active session, cancels its position reports and
// returns the controller to Idle. Once Stop returns, no position
// callback for the stopped session is running or will run: a report
// in flight when Stop is called is waited for. Calling Stop while
// Idle is a no-op.
func (c *Controller) Stop() {
	c.mu.Lock()
	sess := c.detachLocked()
	c.mu.Unlock()
	c.teardown(sess)
}

// detachLocked removes the active session, leaving the controller
// Idle. Teardown happens outside the lock so an in-flight report can
// finish without deadlocking against it.
func (c *Controller) detachLocked() *session {
	sess := c.sess
	if sess == nil {
		return nil
	}
	c.sess = nil
	c.state = Idle
	return sess
}

func (c *Controller) teardown(sess *session) {
	if sess == nil {
		return
	}
	sess.cancelTick()
	close(sess.quit)
	sess.reports.Wait()
	_ = sess.voice.Stop()
}

// tick is the periodic playhead report. The session check under the
// lock swallows late scheduler firings; a report past the check is
// registered on the session so teardown waits for its delivery.
func (c *Controller) tick(sess *session) {
	c.mu.Lock()
	if c.sess != sess {
		c.mu.Unlock()
		return
	}
	sess.reports.Add(1)
	defer sess.reports.Done()
	cb := c.onPosition
	pixel := c.mapper.TimeToPixel(sess.voice.Position())
	c.mu.Unlock()

	if cb != nil {
		cb(pixel)
	}
}

// watch waits for the voice to finish on its own.
func (c *Controller) watch(sess *session) {
	select {
	case <-sess.voice.Done():
		c.finish(sess)
	case <-sess.quit:
	}
}

// finish handles natural completion: cancel the tick, emit one final
// position report, clear the session.
func (c *Controller) finish(sess *session) {
	c.mu.Lock()
	if c.sess != sess {
		c.mu.Unlock()
		return
	}

	c.sess = nil
	c.state = Idle
	sess.reports.Add(1)
	defer sess.reports.Done()

	cb := c.onPosition
	pixel := c.mapper.TimeToPixel(sess.voice.Position())
	c.mu.Unlock()

	sess.cancelTick()
	if cb != nil {
		cb(pixel)
	}
}
