// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoded-audio building blocks of the
// clip extraction pipeline.
//
// # Source Interface
//
// The Source interface is the streaming decode surface:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Sources deliver whole frames only: ReadSamples never returns a
// count that splits a frame across calls. All format decoders
// implement the interface, so they can be registered in a Registry
// and looked up by format key.
//
// # Buffers
//
// A Buffer is fully decoded PCM, one float32 slice per channel. It is
// the unit the rest of the pipeline works on. ReadAll materializes
// any Source into a Buffer:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, _ := audio.ReadAll(src, 4096)
//	fmt.Println(buf.Duration())
//
// # Extraction
//
// ExtractRange renders a sub-range of a Buffer into a new Buffer
// through a RenderBackend. OfflineRenderer is the bundled backend; it
// renders deterministically and honors context cancellation:
//
//	clip, err := audio.ExtractRange(ctx, audio.OfflineRenderer{}, buf, 1.5, 3.0)
//
// The output length is round((end-start) * sampleRate) frames, always,
// so extraction is reproducible sample for sample.
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Conversion to wire formats lives in the pcm package.
package audio
