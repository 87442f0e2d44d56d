// Package keys models Windows virtual-key codes and hotkey modifier flags,
// including parsing from human-readable names such as "A", "F5" or "CTRL".
// Everything in this package is a pure value; it is safe to use from any
// goroutine.
package keys

import "errors"

// ErrUnknownKeyName is returned when a string does not map to any known
// virtual key or modifier.
var ErrUnknownKeyName = errors.New("unknown key name")
