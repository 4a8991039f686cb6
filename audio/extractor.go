// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"math"
)

// RenderBackend materializes frames samples of src, starting at the
// source frame nearest offset seconds, into a new buffer with the
// same channel count and sample rate. The render is isolated from any
// realtime playback and must be deterministic: identical inputs yield
// byte-identical output.
type RenderBackend interface {
	Render(ctx context.Context, src *Buffer, offset float64, frames int) (*Buffer, error)
}

// OfflineRenderer is the default RenderBackend. It copies the source
// in fixed-size blocks, checking ctx between blocks, and zero-fills
// any frames past the end of the source.
type OfflineRenderer struct {
	// BlockSize is the number of frames copied per pass; 0 picks a
	// default.
	BlockSize int
}

func (r OfflineRenderer) Render(ctx context.Context, src *Buffer, offset float64, frames int) (*Buffer, error) {
	block := r.BlockSize
	if block <= 0 {
		block = 4096
	}

	channels := src.NumChannels()
	start := int(math.Round(offset * float64(src.SampleRate())))

	data := make([][]float32, channels)
	for c := range channels {
		data[c] = make([]float32, frames)
	}

	for done := 0; done < frames; done += block {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}

		end := min(done+block, frames)
		for c := range channels {
			srcCh := src.Channel(c)
			for f := done; f < end; f++ {
				if i := start + f; i < len(srcCh) {
					data[c][f] = srcCh[i]
				}
			}
		}
	}

	return NewBuffer(src.SampleRate(), data)
}

// ExtractRange renders the sub-range [startTime, endTime) of buf into
// a new buffer through backend. The output has the same channel count
// and sample rate as buf and holds round((endTime-startTime) *
// sampleRate) frames.
//
// The call blocks until the render completes. Bounds outside
// [0, buf.Duration()] or startTime >= endTime fail with ErrOutOfRange
// before any rendering happens.
func ExtractRange(ctx context.Context, backend RenderBackend, buf *Buffer, startTime, endTime float64) (*Buffer, error) {
	if startTime < 0 || startTime >= endTime || endTime > buf.Duration() {
		return nil, fmt.Errorf("extract [%v, %v) of %v: %w",
			startTime, endTime, buf.Duration(), ErrOutOfRange)
	}

	frames := int(math.Round((endTime - startTime) * float64(buf.SampleRate())))

	out, err := backend.Render(ctx, buf, startTime, frames)
	if err != nil {
		return nil, fmt.Errorf("extract range: %w", err)
	}

	return out, nil
}
