// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer holds decoded PCM audio as one float32 slice per channel,
// all of equal length. A Buffer is immutable once produced; the
// processing pipeline only reads it.
type Buffer struct {
	sampleRate int
	channels   [][]float32
}

// NewBuffer wraps per-channel sample data in a Buffer. The channel
// slices are taken over, not copied.
func NewBuffer(sampleRate int, channels [][]float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}
	for _, ch := range channels[1:] {
		if len(ch) != len(channels[0]) {
			return nil, ErrChannelLength
		}
	}

	return &Buffer{
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// SampleRate returns the buffer's sample rate in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// NumChannels returns the number of channels.
func (b *Buffer) NumChannels() int { return len(b.channels) }

// Len returns the number of samples per channel.
func (b *Buffer) Len() int { return len(b.channels[0]) }

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Len()) / float64(b.sampleRate)
}

// Channel returns the sample data of channel i. Callers must not
// modify the returned slice.
func (b *Buffer) Channel(i int) []float32 { return b.channels[i] }

// ReadAll drains src into a Buffer, deinterleaving the stream into
// per-channel sample slices. The source is read to io.EOF; bufSize
// controls the read granularity (0 picks a default) and is rounded
// down to a whole number of frames, matching the Source delivery
// contract. The source is not closed.
func ReadAll(src Source, bufSize int) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}
	if bufSize <= 0 {
		bufSize = 4096
	}
	// Whole frames only, so deinterleaving never splits one.
	bufSize -= bufSize % channels
	if bufSize == 0 {
		bufSize = channels
	}

	data := make([][]float32, channels)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		for i := 0; i+channels <= n; i += channels {
			for c := range channels {
				data[c] = append(data[c], buf[i+c])
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return NewBuffer(src.SampleRate(), data)
}
