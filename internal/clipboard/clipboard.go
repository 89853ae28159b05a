// Package clipboard copies transcript text to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrEmpty is returned when there is nothing to copy.
var ErrEmpty = errors.New("clipboard: nothing to copy")

// writeAll is swapped in tests; headless CI has no clipboard.
var writeAll = clipboard.WriteAll

// WriteAll writes text to the clipboard.
func WriteAll(text string) error {
	if text == "" {
		return ErrEmpty
	}
	return writeAll(text)
}

// Available reports whether a clipboard utility was found on this system.
func Available() bool {
	return !clipboard.Unsupported
}
