// SPDX-License-Identifier: EPL-2.0

// Package pcm converts floating-point samples to signed 16-bit PCM.
package pcm

import "math"

// Float32ToInt16 converts a sample in [-1, 1] to signed 16-bit PCM.
// The value is scaled by 32767, rounded to the nearest integer and
// clamped to the int16 range, so out-of-range input saturates instead
// of wrapping.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * 32767.0)

	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// ToInt16 converts a slice of float32 samples to int16 PCM.
func ToInt16(samples []float32) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = Float32ToInt16(s)
	}
	return out
}

// Interleave converts per-channel float32 sample slices into a single
// interleaved int16 PCM slice (frame by frame, channel order
// preserved). All channels must have equal length; extra samples past
// the shortest channel are ignored.
func Interleave(channels ...[]float32) []int16 {
	if len(channels) == 0 {
		return nil
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) < frames {
			frames = len(ch)
		}
	}

	out := make([]int16, frames*len(channels))
	for f := range frames {
		base := f * len(channels)
		for c, ch := range channels {
			out[base+c] = Float32ToInt16(ch[f])
		}
	}

	return out
}
