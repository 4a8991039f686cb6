// SPDX-License-Identifier: EPL-2.0

package timeline

// Mapper converts between horizontal pixel positions on the waveform
// display and time offsets into the audio. It is immutable after
// construction.
type Mapper struct {
	width    float64
	duration float64
	scale    float64 // pixels per second
}

// NewMapper creates a Mapper for a display of width pixels showing
// duration seconds of audio.
func NewMapper(width, duration float64) (*Mapper, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if width <= 0 {
		return nil, ErrInvalidWidth
	}

	return &Mapper{
		width:    width,
		duration: duration,
		scale:    width / duration,
	}, nil
}

// Width returns the display width in pixels.
func (m *Mapper) Width() float64 { return m.width }

// Duration returns the mapped audio duration in seconds.
func (m *Mapper) Duration() float64 { return m.duration }

// PixelToTime converts a horizontal pixel position to a time offset
// in seconds.
func (m *Mapper) PixelToTime(x float64) float64 {
	return x / m.scale
}

// TimeToPixel converts a time offset in seconds to a horizontal pixel
// position.
func (m *Mapper) TimeToPixel(t float64) float64 {
	return t * m.scale
}
