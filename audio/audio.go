// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"maps"
	"slices"
	"sync"
)

// Source is a streaming decode surface: interleaved float32 PCM
// pulled on demand. Every format decoder produces one, and ReadAll
// materializes one into a Buffer.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels per frame (1 mono, 2 stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples in [-1, 1] and
	// returns the number of values written. Sources deliver whole
	// frames only: the count is always a multiple of Channels(),
	// rounding the request down when needed. n == 0 with
	// err == io.EOF ends the stream.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases decoder resources.
	Close() error
}

// Decoder turns encoded input into a Source.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys ("wav", "ogg", ...) to decoders. Safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// Register adds or replaces the decoder for a format key.
func (r *Registry) Register(format string, dec Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[format] = dec
}

// Get returns the decoder registered under a format key.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dec, ok := r.codecs[format]
	return dec, ok
}

// Formats returns the registered format keys, sorted.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.codecs))
}
