// Package winhotkey registers system-wide keyboard shortcuts and dispatches
// callbacks when they fire, regardless of which window has focus.
//
// The Windows hotkey API is thread-affine: the OS thread that registers a
// hotkey is the only one that may unregister it or receive its WM_HOTKEY
// notifications. ThreadSafeManager (the default, created by New) hides this
// behind a dedicated owner goroutine locked to one OS thread; every call is
// marshalled onto that thread through a command channel and its result is
// returned synchronously, so the manager is safe to use from any goroutine.
// SingleThreadManager exposes the unmarshalled core for callers that run
// their own pinned thread.
//
// Callbacks always execute on the owner thread. A callback that blocks
// stalls all further hotkey delivery and command processing until it
// returns; that is the accepted trade-off of single-threaded dispatch.
package winhotkey

import (
	"github.com/rs/zerolog"

	"github.com/0xJWLabs/win-hotkey/keys"
)

// HotkeyID identifies one registered combination within a manager. The
// native API bounds the usable range to [0, 0xBFFF].
type HotkeyID uint16

// maxHotkeyID is the largest id accepted by RegisterHotKey for applications.
const maxHotkeyID HotkeyID = 0xBFFF

// Manager is the public contract shared by both manager variants.
type Manager interface {
	// Register registers a trigger key plus modifiers and returns the
	// allocated id. Fails with ErrDuplicateCombination if an equal
	// combination is already registered, or with a *NativeError if the
	// platform refuses the registration.
	Register(key keys.VirtualKey, mods []keys.Modifier, fn func()) (HotkeyID, error)

	// RegisterExtra is Register with additional keys that must be
	// physically held when the trigger fires. Extra keys are checked at
	// dispatch time, not at OS registration; a trigger with unmet extra
	// keys is silently dropped.
	RegisterExtra(key keys.VirtualKey, mods []keys.Modifier, extra []keys.VirtualKey, fn func()) (HotkeyID, error)

	// RegisterWithID registers under a caller-chosen id. Fails with
	// ErrInvalidID when the id is outside the native range, and without
	// mutating state when the id or the combination is already in use.
	RegisterWithID(id HotkeyID, key keys.VirtualKey, mods []keys.Modifier, fn func()) error

	// Unregister removes a registration. Fails with ErrUnknownID.
	Unregister(id HotkeyID) error

	// EventLoop blocks until the manager stops.
	EventLoop() error

	// Stop unregisters every remaining hotkey and shuts the manager down.
	// Idempotent; after Stop all other operations fail with
	// ErrManagerStopped.
	Stop() error
}

type options struct {
	logger   zerolog.Logger
	noRepeat bool
	backend  backend
	backlog  int
}

// Option configures a manager at construction time.
type Option func(*options)

// WithLogger attaches a zerolog logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithNoRepeat controls whether registrations automatically include
// keys.ModNoRepeat, suppressing retriggers while the combination is held.
// Enabled by default; it only affects registrations made after construction.
func WithNoRepeat(enabled bool) Option {
	return func(o *options) { o.noRepeat = enabled }
}

// withBackend swaps the native boundary, used by tests.
func withBackend(b backend) Option {
	return func(o *options) { o.backend = b }
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   zerolog.Nop(),
		noRepeat: true,
		backlog:  16,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend == nil {
		o.backend = newPlatformBackend()
	}
	return o
}
