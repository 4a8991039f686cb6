// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestEncode_ValidFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 200, -200}
	buf := new(bytes.Buffer)

	err := Encode(buf, 8000, 1, samples)
	if err != nil {
		t.Fatalf("Encode() error = %v, want nil", err)
	}

	if buf.Len() < 44 {
		t.Fatalf("WAV file too small: %d bytes", buf.Len())
	}

	data := buf.Bytes()
	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF marker = %q, want \"RIFF\"", string(data[0:4]))
	}
	if string(data[8:12]) != "WAVE" {
		t.Errorf("WAVE marker = %q, want \"WAVE\"", string(data[8:12]))
	}
}

func TestEncode_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	err := Encode(buf, 8000, 1, nil)
	if err != nil {
		t.Fatalf("Encode() error = %v, want nil", err)
	}

	// Should still create valid WAV header
	if buf.Len() != 44 {
		t.Errorf("WAV file size = %d, want 44 (header only)", buf.Len())
	}
}

func TestEncode_CorrectHeader(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400}
	buf := new(bytes.Buffer)

	err := Encode(buf, 44100, 2, samples)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	data := buf.Bytes()

	if string(data[12:16]) != "fmt " {
		t.Errorf("fmt marker = %q, want \"fmt \"", string(data[12:16]))
	}

	fmtSize := binary.LittleEndian.Uint32(data[16:20])
	if fmtSize != 16 {
		t.Errorf("fmt chunk size = %d, want 16", fmtSize)
	}

	audioFormat := binary.LittleEndian.Uint16(data[20:22])
	if audioFormat != 1 {
		t.Errorf("audio format = %d, want 1 (PCM)", audioFormat)
	}

	numChannels := binary.LittleEndian.Uint16(data[22:24])
	if numChannels != 2 {
		t.Errorf("num channels = %d, want 2", numChannels)
	}

	sampleRate := binary.LittleEndian.Uint32(data[24:28])
	if sampleRate != 44100 {
		t.Errorf("sample rate = %d, want 44100", sampleRate)
	}

	// Byte rate = sample rate * channels * 2
	byteRate := binary.LittleEndian.Uint32(data[28:32])
	if byteRate != 44100*2*2 {
		t.Errorf("byte rate = %d, want %d", byteRate, 44100*2*2)
	}

	// Block align = channels * 2
	blockAlign := binary.LittleEndian.Uint16(data[32:34])
	if blockAlign != 4 {
		t.Errorf("block align = %d, want 4", blockAlign)
	}

	bitsPerSample := binary.LittleEndian.Uint16(data[34:36])
	if bitsPerSample != 16 {
		t.Errorf("bits per sample = %d, want 16", bitsPerSample)
	}

	if string(data[36:40]) != "data" {
		t.Errorf("data marker = %q, want \"data\"", string(data[36:40]))
	}

	dataSize := binary.LittleEndian.Uint32(data[40:44])
	if dataSize != uint32(len(samples)*2) {
		t.Errorf("data size = %d, want %d", dataSize, len(samples)*2)
	}
}

func TestEncode_RIFFSize(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400}
	buf := new(bytes.Buffer)

	err := Encode(buf, 8000, 2, samples)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	data := buf.Bytes()
	riffSize := binary.LittleEndian.Uint32(data[4:8])

	// RIFF size is file size minus the "RIFF" marker and size field.
	if want := uint32(buf.Len() - 8); riffSize != want {
		t.Errorf("RIFF size = %d, want %d", riffSize, want)
	}
}

func TestEncode_SampleData(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -200, 300, -400}
	buf := new(bytes.Buffer)

	err := Encode(buf, 8000, 2, samples)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	data := buf.Bytes()
	for i, expected := range samples {
		offset := 44 + (i * 2)
		actual := int16(binary.LittleEndian.Uint16(data[offset : offset+2]))
		if actual != expected {
			t.Errorf("sample[%d] = %d, want %d", i, actual, expected)
		}
	}
}

func TestEncode_ByteOrder(t *testing.T) {
	t.Parallel()

	samples := []int16{0x1234}
	buf := new(bytes.Buffer)

	err := Encode(buf, 8000, 1, samples)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	data := buf.Bytes()
	// Sample should be at byte 44, little-endian: 0x34, 0x12
	if data[44] != 0x34 || data[45] != 0x12 {
		t.Errorf("sample bytes = [%02x %02x], want [34 12]", data[44], data[45])
	}
}

func TestEncode_InvalidChannelCount(t *testing.T) {
	t.Parallel()

	err := Encode(io.Discard, 8000, 0, []int16{1, 2})
	if !errors.Is(err, ErrNoChannels) {
		t.Errorf("Encode() error = %v, want ErrNoChannels", err)
	}
}

func TestEncode_PartialFrame(t *testing.T) {
	t.Parallel()

	err := Encode(io.Discard, 8000, 2, []int16{1, 2, 3})
	if !errors.Is(err, ErrPartialFrame) {
		t.Errorf("Encode() error = %v, want ErrPartialFrame", err)
	}
}

func TestEncode_HeaderRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
		frames     int
	}{
		{name: "mono 8k", sampleRate: 8000, channels: 1, frames: 100},
		{name: "stereo 44.1k", sampleRate: 44100, channels: 2, frames: 1000},
		{name: "quad 48k", sampleRate: 48000, channels: 4, frames: 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			samples := make([]int16, tt.frames*tt.channels)
			for i := range samples {
				samples[i] = int16(i % 500)
			}

			buf := new(bytes.Buffer)
			if err := Encode(buf, tt.sampleRate, tt.channels, samples); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			data := buf.Bytes()
			if got := binary.LittleEndian.Uint16(data[22:24]); got != uint16(tt.channels) {
				t.Errorf("num channels = %d, want %d", got, tt.channels)
			}
			if got := binary.LittleEndian.Uint32(data[24:28]); got != uint32(tt.sampleRate) {
				t.Errorf("sample rate = %d, want %d", got, tt.sampleRate)
			}
			if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(len(samples)*2) {
				t.Errorf("data size = %d, want %d", got, len(samples)*2)
			}
			if buf.Len() != 44+len(samples)*2 {
				t.Errorf("file size = %d, want %d", buf.Len(), 44+len(samples)*2)
			}
		})
	}
}

func TestEncode_DecodeRoundTrip(t *testing.T) {
	t.Parallel()

	original := []int16{0, 100, -100, 32767, -32768, 12345, -6789, 42}
	buf := new(bytes.Buffer)

	if err := Encode(buf, 16000, 2, original); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	dst := make([]float32, len(original))
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(original) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(original))
	}

	for i, want := range original {
		got := dst[i] * 32768.0
		diff := got - float32(want)
		if diff < -1 || diff > 1 {
			t.Errorf("sample[%d] = %v, want about %d", i, got, want)
		}
	}
}

// BenchmarkEncode benchmarks writing one second of stereo audio.
func BenchmarkEncode(b *testing.B) {
	samples := make([]int16, 44100*2)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		buf := new(bytes.Buffer)
		_ = Encode(buf, 44100, 2, samples)
	}
}
