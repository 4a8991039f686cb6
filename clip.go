// SPDX-License-Identifier: EPL-2.0

package harmoniq

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wowcoders/harmoniq/audio"
	"github.com/wowcoders/harmoniq/formats/mp3"
	"github.com/wowcoders/harmoniq/formats/wav"
	"github.com/wowcoders/harmoniq/pcm"
)

// EncodeWAV serializes a decoded buffer as a RIFF/WAVE byte stream:
// 44-byte header plus interleaved 16-bit PCM covering every channel.
func EncodeWAV(buf *audio.Buffer) ([]byte, error) {
	channels := make([][]float32, buf.NumChannels())
	for i := range channels {
		channels[i] = buf.Channel(i)
	}
	samples := pcm.Interleave(channels...)

	out := new(bytes.Buffer)
	out.Grow(44 + len(samples)*2)
	if err := wav.Encode(out, buf.SampleRate(), buf.NumChannels(), samples); err != nil {
		return nil, fmt.Errorf("encode wav: %w", err)
	}

	return out.Bytes(), nil
}

// ClipWAV extracts [startTime, endTime) of buf and returns it as a
// lossless RIFF/WAVE byte stream.
//
// This is the whole clip pipeline in one call:
//  1. Render the sub-range into a new buffer through backend
//  2. Convert float32 samples to interleaved 16-bit PCM
//  3. Prepend the canonical container header
//
// The returned bytes are a complete, standalone .wav file.
func ClipWAV(ctx context.Context, backend audio.RenderBackend, buf *audio.Buffer, startTime, endTime float64) ([]byte, error) {
	clip, err := audio.ExtractRange(ctx, backend, buf, startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("clip wav: %w", err)
	}

	return EncodeWAV(clip)
}

// ClipMP3 extracts [startTime, endTime) of buf and compresses it with
// a block encoder obtained from factory at the default bitrate. The
// returned bytes are the concatenated encoder output, trailing flush
// included; on any encoder failure no partial stream is returned.
func ClipMP3(ctx context.Context, backend audio.RenderBackend, buf *audio.Buffer, startTime, endTime float64, factory mp3.EncoderFactory) ([]byte, error) {
	clip, err := audio.ExtractRange(ctx, backend, buf, startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("clip mp3: %w", err)
	}

	data, err := mp3.Encode(clip, factory)
	if err != nil {
		return nil, fmt.Errorf("clip mp3: %w", err)
	}

	return data, nil
}
