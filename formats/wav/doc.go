// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files.
//
// Encode produces the canonical 44-byte header followed by
// interleaved 16-bit PCM data, all little-endian:
//
//	samples := pcm.Interleave(left, right)
//	err := wav.Encode(file, 44100, 2, samples)
//
// The header always describes the payload truthfully: channel count,
// byte rate, block align and data size are derived from the samples
// actually written.
//
// Decoding is built on github.com/go-audio/wav and accepts PCM
// 16-bit files of any channel count:
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(src, 4096)
package wav
