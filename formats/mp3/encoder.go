// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/wowcoders/harmoniq/audio"
	"github.com/wowcoders/harmoniq/pcm"
)

// BlockSize is the number of samples per channel fed to the encoder
// per call: one MPEG-1 Layer III granule pair.
const BlockSize = 1152

// DefaultBitrate is the bitrate in kbps used for clip exports.
const DefaultBitrate = 128

// BlockEncoder is the external lossy encoder contract. Left and right
// carry up to BlockSize samples each; the final block may be shorter.
// EncodeBlock may return zero bytes while the encoder buffers input;
// Flush emits whatever remains after the last block.
type BlockEncoder interface {
	EncodeBlock(left, right []int16) ([]byte, error)
	Flush() ([]byte, error)
}

// EncoderFactory creates a BlockEncoder configured for the given
// channel count, sample rate and bitrate (kbps).
type EncoderFactory interface {
	New(channels, sampleRate, bitrate int) (BlockEncoder, error)
}

// Encode runs buf through a block encoder obtained from factory and
// returns the ordered concatenation of every non-empty chunk the
// encoder produced, trailing flush output last. A mono buffer is fed
// to both encoder channels; for buffers with more than two channels
// only the first two are encoded.
//
// Any encoder error aborts the export with ErrEncodingFailed; no
// partial stream is returned.
func Encode(buf *audio.Buffer, factory EncoderFactory) ([]byte, error) {
	if factory == nil {
		return nil, ErrNoEncoder
	}

	channels := min(buf.NumChannels(), 2)

	enc, err := factory.New(channels, buf.SampleRate(), DefaultBitrate)
	if err != nil {
		return nil, fmt.Errorf("%w: init: %w", ErrEncodingFailed, err)
	}

	left := pcm.ToInt16(buf.Channel(0))
	right := left
	if buf.NumChannels() > 1 {
		right = pcm.ToInt16(buf.Channel(1))
	}

	var out []byte

	for start := 0; start < len(left); start += BlockSize {
		end := min(start+BlockSize, len(left))

		chunk, err := enc.EncodeBlock(left[start:end], right[start:end])
		if err != nil {
			return nil, fmt.Errorf("%w: block at %d: %w", ErrEncodingFailed, start, err)
		}
		if len(chunk) > 0 {
			out = append(out, chunk...)
		}
	}

	tail, err := enc.Flush()
	if err != nil {
		return nil, fmt.Errorf("%w: flush: %w", ErrEncodingFailed, err)
	}
	if len(tail) > 0 {
		out = append(out, tail...)
	}

	return out, nil
}
