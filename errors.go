package winhotkey

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateCombination is returned when the trigger+modifiers pair
	// is already registered with this manager.
	ErrDuplicateCombination = errors.New("combination already registered")

	// ErrUnknownID is returned for operations on an id with no live
	// registration.
	ErrUnknownID = errors.New("unknown hotkey id")

	// ErrInvalidID is returned by RegisterWithID for ids outside the
	// native id range.
	ErrInvalidID = errors.New("hotkey id out of range")

	// ErrInvalidCombination is returned for combinations the platform
	// cannot register, such as a zero trigger key.
	ErrInvalidCombination = errors.New("invalid key combination")

	// ErrManagerStopped is returned once the manager has shut down, or
	// when its owner thread terminated on a fatal native error.
	ErrManagerStopped = errors.New("hotkey manager stopped")

	// ErrIDSpaceExhausted is returned when no free id remains.
	ErrIDSpaceExhausted = errors.New("hotkey id space exhausted")
)

// NativeError reports a refused native call. Code carries the platform
// error code (a Win32 system error on Windows, zero on the fallback
// backend); Err preserves the underlying error for errors.Is checks.
type NativeError struct {
	Op   string // "register" or "unregister"
	Code uint32
	Err  error
}

func (e *NativeError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("native %s failed (code %d): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("native %s failed: %v", e.Op, e.Err)
}

func (e *NativeError) Unwrap() error { return e.Err }
