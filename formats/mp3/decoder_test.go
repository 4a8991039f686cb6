// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"io"
	"testing"
)

// fakeMp3Reader simulates gomp3.Decoder output for source tests.
type fakeMp3Reader struct {
	data       []byte
	pos        int
	sampleRate int
}

func (f *fakeMp3Reader) SampleRate() int { return f.sampleRate }

func (f *fakeMp3Reader) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func pcm16le(samples ...int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		out[2*i] = byte(s)
		out[2*i+1] = byte(uint16(s) >> 8)
	}
	return out
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	s := &source{
		dec: &fakeMp3Reader{
			data:       pcm16le(0, 16384, -16384, 32767),
			sampleRate: 44100,
		},
		sampleRate: 44100,
		channels:   2,
	}

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("sample[%d] = %v, want %v", i, dst[i], w)
		}
	}
}

// dribbleReader returns one byte per Read call, like a decoder
// draining an internal frame buffer.
type dribbleReader struct {
	data []byte
	pos  int
}

func (d *dribbleReader) SampleRate() int { return 44100 }

func (d *dribbleReader) Read(p []byte) (int, error) {
	if d.pos >= len(d.data) {
		return 0, io.EOF
	}
	p[0] = d.data[d.pos]
	d.pos++
	return 1, nil
}

func TestSource_ReadSamples_AccumulatesShortReads(t *testing.T) {
	t.Parallel()

	s := &source{
		dec: &dribbleReader{
			data: pcm16le(0, 16384, -16384, 32767),
		},
		sampleRate: 44100,
		channels:   2,
	}

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4 (short reads accumulated)", n)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("sample[%d] = %v, want %v", i, dst[i], w)
		}
	}
}

func TestSource_ReadSamples_DropsPartialFrameAtEOF(t *testing.T) {
	t.Parallel()

	// Six bytes: one whole stereo frame plus half of a second one.
	s := &source{
		dec: &fakeMp3Reader{
			data:       pcm16le(100, 200, 300),
			sampleRate: 44100,
		},
		sampleRate: 44100,
		channels:   2,
	}

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2 (whole frames only)", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() err = %v, want io.EOF", err)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeMp3Reader{sampleRate: 44100},
		sampleRate: 44100,
		channels:   2,
	}

	n, err := s.ReadSamples(make([]float32, 8))
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() err = %v, want io.EOF", err)
	}
}

func TestSource_Properties(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeMp3Reader{sampleRate: 22050},
		sampleRate: 22050,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	if s.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", s.SampleRate())
	}
	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestDecode_InvalidData(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("this is not an mp3 stream")))
	if err == nil {
		t.Error("Decode() succeeded on garbage input, want error")
	}
}
