// SPDX-License-Identifier: EPL-2.0

package audio

// DownmixMono averages all channels of buf into a new single-channel
// buffer at the same sample rate. A mono buffer is returned as-is.
func DownmixMono(buf *Buffer) *Buffer {
	channels := buf.NumChannels()
	if channels == 1 {
		return buf
	}

	frames := buf.Len()
	out := make([]float32, frames)
	inv := float32(1.0) / float32(channels)

	switch channels {
	case 2: // Stereo (most common)
		left, right := buf.Channel(0), buf.Channel(1)
		for f := range frames {
			out[f] = (left[f] + right[f]) * 0.5
		}
	default:
		for f := range frames {
			sum := float32(0)
			for c := range channels {
				sum += buf.Channel(c)[f]
			}
			out[f] = sum * inv
		}
	}

	mono, _ := NewBuffer(buf.SampleRate(), [][]float32{out})
	return mono
}
