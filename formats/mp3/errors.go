// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	ErrEncodingFailed = errors.New("mp3 encoding failed")
	ErrNoEncoder      = errors.New("no block encoder configured")
)
