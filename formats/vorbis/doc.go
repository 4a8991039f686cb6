// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into audio sources.
//
// Decoding is built on github.com/jfreymuth/oggvorbis, which already
// produces interleaved float32 samples, so the wrapper only adapts
// frame-aligned reads to the Source contract.
package vorbis
