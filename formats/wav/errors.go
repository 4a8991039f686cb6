package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrNoChannels            = errors.New("channel count must be at least 1")
	ErrPartialFrame          = errors.New("sample count must be a multiple of the channel count")
)
