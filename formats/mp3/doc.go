// SPDX-License-Identifier: EPL-2.0

// Package mp3 adapts an external block-based lossy encoder and
// decodes MP3 input.
//
// # Encoding
//
// The encoder itself is a collaborator supplied by the caller; the
// package defines its contract (BlockEncoder, EncoderFactory) and the
// feeding discipline: PCM16 blocks of 1152 samples per channel, a
// single Flush after the last block, output chunks concatenated in
// order:
//
//	data, err := mp3.Encode(clip, factory)
//
// The default bitrate for clip exports is 128 kbps.
//
// # Decoding
//
// Decoding is built on github.com/hajimehoshi/go-mp3, which always
// produces interleaved stereo:
//
//	src, err := mp3.Decoder{}.Decode(file)
package mp3
