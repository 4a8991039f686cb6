// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"context"
	"fmt"

	"github.com/wowcoders/harmoniq"
	"github.com/wowcoders/harmoniq/audio"
	"github.com/wowcoders/harmoniq/formats/mp3"
	"github.com/wowcoders/harmoniq/playback"
	"github.com/wowcoders/harmoniq/timeline"
)

// Sink receives a finished export for delivery (download, save).
type Sink interface {
	Deliver(data []byte, mimeType, name string) error
}

// Editor owns the selection and playback state for one loaded buffer:
// the pixel/time mapper, the region set, and the playback controller.
// All mutable state is private; hosts drive the editor through
// resolved gesture events and export calls. Editors are not safe for
// concurrent use.
type Editor struct {
	buf     *audio.Buffer
	mapper  *timeline.Mapper
	regions *timeline.RegionSet
	ctrl    *playback.Controller

	render   audio.RenderBackend
	sink     Sink
	onError  func(error)
	playOpts []playback.Option
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithSink sets the delivery sink for exports.
func WithSink(s Sink) EditorOption {
	return func(e *Editor) { e.sink = s }
}

// WithErrorHook sets the callback invoked when a gesture-triggered
// operation fails (playback errors have no return path from a gesture).
func WithErrorHook(fn func(error)) EditorOption {
	return func(e *Editor) { e.onError = fn }
}

// WithRenderBackend replaces the default offline renderer used for
// exports.
func WithRenderBackend(rb audio.RenderBackend) EditorOption {
	return func(e *Editor) { e.render = rb }
}

// WithPlaybackOptions forwards options (position callback, tick
// interval) to the playback controller.
func WithPlaybackOptions(opts ...playback.Option) EditorOption {
	return func(e *Editor) { e.playOpts = append(e.playOpts, opts...) }
}

// NewEditor creates an Editor displaying buf across width pixels.
// backend and sched drive region playback; see the playback package.
func NewEditor(buf *audio.Buffer, width float64, backend playback.Backend, sched playback.Scheduler, opts ...EditorOption) (*Editor, error) {
	mapper, err := timeline.NewMapper(width, buf.Duration())
	if err != nil {
		return nil, fmt.Errorf("new editor: %w", err)
	}

	e := &Editor{
		buf:     buf,
		mapper:  mapper,
		regions: timeline.NewRegionSet(),
		render:  audio.OfflineRenderer{},
	}
	for _, opt := range opts {
		opt(e)
	}

	e.ctrl = playback.NewController(buf, mapper, backend, sched, e.playOpts...)
	return e, nil
}

// Mapper returns the pixel/time mapper.
func (e *Editor) Mapper() *timeline.Mapper { return e.mapper }

// Regions returns the current selection, ascending.
func (e *Editor) Regions() []*timeline.Region { return e.regions.Regions() }

// PlaybackState reports the playback controller state.
func (e *Editor) PlaybackState() playback.State { return e.ctrl.State() }

// RangeDragged handles a resolved drag gesture: the dragged pixel
// range, in either direction, becomes a new region after clamping to
// the display and trimming against existing regions. Returns the
// stored region, or nil if the range was trimmed away.
func (e *Editor) RangeDragged(x1, x2 float64) *timeline.Region {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	x1 = max(x1, 0)
	x2 = min(x2, e.mapper.Width())

	return e.regions.AddRegion(x1, x2)
}

// PointSelected handles a resolved click: if the point falls inside a
// region, playback of that region is toggled (a click during
// playback stops it).
func (e *Editor) PointSelected(x float64) {
	region := e.regions.FindRegionContaining(x)
	if region == nil {
		return
	}

	start := e.mapper.PixelToTime(region.Start)
	end := e.mapper.PixelToTime(region.End)
	if err := e.ctrl.Play(start, end); err != nil {
		e.fail(fmt.Errorf("play region: %w", err))
	}
}

// RangeDoubleClicked handles a resolved double-click: the region
// containing the point is removed. Returns the removed region, or nil.
func (e *Editor) RangeDoubleClicked(x float64) *timeline.Region {
	region := e.regions.FindRegionContaining(x)
	if region == nil {
		return nil
	}
	e.regions.RemoveRegion(region)
	return region
}

// Stop halts any active playback.
func (e *Editor) Stop() { e.ctrl.Stop() }

// ExportWAV extracts the region, encodes it as a RIFF/WAVE byte
// stream and delivers it to the sink under the given file name. With
// mono set, channels are averaged down before encoding. Nothing is
// delivered if extraction or encoding fails.
func (e *Editor) ExportWAV(ctx context.Context, region *timeline.Region, name string, mono bool) error {
	if e.sink == nil {
		return ErrNoSink
	}

	start, end := e.regionTimes(region)
	clip, err := audio.ExtractRange(ctx, e.render, e.buf, start, end)
	if err != nil {
		return fmt.Errorf("export wav: %w", err)
	}
	if mono {
		clip = audio.DownmixMono(clip)
	}

	data, err := harmoniq.EncodeWAV(clip)
	if err != nil {
		return fmt.Errorf("export wav: %w", err)
	}

	if err := e.sink.Deliver(data, "audio/wav", name); err != nil {
		return fmt.Errorf("deliver wav: %w", err)
	}
	return nil
}

// ExportMP3 extracts the region, runs it through the block encoder
// obtained from factory and delivers the compressed stream to the
// sink. Nothing is delivered if extraction or encoding fails.
func (e *Editor) ExportMP3(ctx context.Context, region *timeline.Region, name string, factory mp3.EncoderFactory) error {
	if e.sink == nil {
		return ErrNoSink
	}

	start, end := e.regionTimes(region)
	data, err := harmoniq.ClipMP3(ctx, e.render, e.buf, start, end, factory)
	if err != nil {
		return fmt.Errorf("export mp3: %w", err)
	}

	if err := e.sink.Deliver(data, "audio/mpeg", name); err != nil {
		return fmt.Errorf("deliver mp3: %w", err)
	}
	return nil
}

func (e *Editor) regionTimes(region *timeline.Region) (start, end float64) {
	return e.mapper.PixelToTime(region.Start), e.mapper.PixelToTime(region.End)
}

func (e *Editor) fail(err error) {
	if e.onError != nil {
		e.onError(err)
	}
}
