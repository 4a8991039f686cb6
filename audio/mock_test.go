// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/wowcoders/harmoniq/internal/audiotest"
)

// fakeDecoder satisfies Decoder for registry tests.
type fakeDecoder struct{}

func (fakeDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(8000, 1, 0), nil
}

// mustBuffer builds a Buffer or panics; for test fixtures only.
func mustBuffer(sampleRate int, channels [][]float32) *Buffer {
	buf, err := NewBuffer(sampleRate, channels)
	if err != nil {
		panic(err)
	}
	return buf
}
