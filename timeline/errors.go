// SPDX-License-Identifier: EPL-2.0

package timeline

import "errors"

var (
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidWidth    = errors.New("width must be positive")
)
