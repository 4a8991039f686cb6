// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"io"

	"github.com/wowcoders/harmoniq/audio"
	"github.com/wowcoders/harmoniq/formats/aiff"
	"github.com/wowcoders/harmoniq/formats/mp3"
	"github.com/wowcoders/harmoniq/formats/vorbis"
	"github.com/wowcoders/harmoniq/formats/wav"
)

// Loader decodes source audio into buffers via a format registry.
// Decode and load failures are reported through the error hook (if
// set) as well as returned, so a host can surface them to the user
// without wrapping every call site.
type Loader struct {
	registry *audio.Registry
	onError  func(error)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLoaderErrorHook sets the callback invoked with every load or
// decode failure.
func WithLoaderErrorHook(fn func(error)) LoaderOption {
	return func(l *Loader) { l.onError = fn }
}

// WithRegistry replaces the default decoder registry.
func WithRegistry(reg *audio.Registry) LoaderOption {
	return func(l *Loader) { l.registry = reg }
}

// NewLoader creates a Loader with all built-in formats registered:
// "wav", "mp3", "ogg" and "aiff".
func NewLoader(opts ...LoaderOption) *Loader {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	l := &Loader{registry: reg}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Formats returns the format keys the loader accepts, sorted.
func (l *Loader) Formats() []string { return l.registry.Formats() }

// Load decodes r as the given format and materializes it into a
// buffer.
func (l *Loader) Load(r io.Reader, format string) (*audio.Buffer, error) {
	dec, ok := l.registry.Get(format)
	if !ok {
		return nil, l.fail(fmt.Errorf("%w: %q", ErrUnknownFormat, format))
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, l.fail(fmt.Errorf("%w: %v", ErrDecode, err))
	}
	defer src.Close()

	buf, err := audio.ReadAll(src, 0)
	if err != nil {
		return nil, l.fail(fmt.Errorf("%w: %v", ErrLoad, err))
	}

	return buf, nil
}

func (l *Loader) fail(err error) error {
	if l.onError != nil {
		l.onError(err)
	}
	return err
}
