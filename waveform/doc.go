// SPDX-License-Identifier: EPL-2.0

// Package waveform is the controller behind an interactive waveform
// display: it owns the selection regions, the pixel/time mapping and
// the playback state for one loaded buffer, and turns selected
// regions into exported files.
//
// The host UI resolves raw pointer input into discrete gestures and
// feeds them to the editor:
//
//	editor, _ := waveform.NewEditor(buf, 800, backend, playback.TickerScheduler{},
//	    waveform.WithSink(sink))
//
//	region := editor.RangeDragged(120, 340) // select
//	editor.PointSelected(200)               // play the region under the click
//	editor.RangeDoubleClicked(200)          // deselect
//
//	err := editor.ExportWAV(ctx, region, "clip.wav", false)
//
// Drawing, pointer thresholds and file delivery all stay outside;
// the editor only consumes resolved coordinates and hands finished
// byte streams to its Sink.
//
// Loader decodes source files into buffers using the format registry
// (wav, mp3, ogg, aiff built in) and reports failures through an
// error hook as well as the returned error.
package waveform
