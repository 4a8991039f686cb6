// SPDX-License-Identifier: EPL-2.0

// Package harmoniq extracts user-selected regions of a decoded audio
// waveform and encodes them as standalone files.
//
// The pieces, bottom up:
//   - timeline: pixel/time mapping and the sorted, non-overlapping
//     region set behind the selection UI
//   - audio: decoded buffers, streaming sources, the decoder registry
//     and deterministic sub-range extraction
//   - pcm: float32 to 16-bit PCM conversion and interleaving
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff:
//     container writing and format decoding
//   - playback: the play-region/stop state machine with periodic
//     playhead reports
//   - waveform: the editor controller gluing all of the above to
//     resolved gesture events, plus the format loader
//
// # Quick Start
//
// Load a file, pick a range, export it:
//
//	loader := waveform.NewLoader()
//	buf, err := loader.Load(file, "wav")
//	if err != nil {
//	    return err
//	}
//
//	data, err := harmoniq.ClipWAV(ctx, audio.OfflineRenderer{}, buf, 1.5, 3.0)
//	// data is a complete .wav file
//
// The lossy path needs an external block encoder supplied through
// mp3.EncoderFactory:
//
//	data, err := harmoniq.ClipMP3(ctx, audio.OfflineRenderer{}, buf, 1.5, 3.0, factory)
//
// # Interactive Use
//
// waveform.Editor owns selection and playback state for a host UI; it
// consumes resolved gestures (point selected, range dragged, range
// double-clicked) and delivers exports to a Sink. See the waveform
// package.
//
// # Determinism
//
// Extraction always produces round((end-start) * sampleRate) frames
// and identical inputs yield byte-identical output, so exports are
// reproducible.
package harmoniq
