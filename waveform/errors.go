// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	ErrUnknownFormat = errors.New("no decoder registered for format")
	ErrLoad          = errors.New("loading audio failed")
	ErrDecode        = errors.New("decoding audio failed")
	ErrNoSink        = errors.New("no output sink configured")
)
