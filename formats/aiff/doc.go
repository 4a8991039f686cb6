// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into audio sources.
//
// Decoding is built on github.com/go-audio/aiff; only PCM 16-bit
// files are accepted.
package aiff
