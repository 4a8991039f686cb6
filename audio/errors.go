// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrNoChannels        = errors.New("buffer needs at least one channel")
	ErrChannelLength     = errors.New("all channels must have equal length")
	ErrOutOfRange        = errors.New("requested range is outside the buffer")
)
