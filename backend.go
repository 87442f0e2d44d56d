package winhotkey

import "github.com/0xJWLabs/win-hotkey/keys"

// eventKind discriminates what woke the owner thread.
type eventKind int

const (
	// eventWake is the synthetic self-directed wake signal posted when a
	// command is enqueued or the loop is interrupted.
	eventWake eventKind = iota
	// eventHotkey is a real hotkey trigger carrying the registered id.
	eventHotkey
)

type event struct {
	kind eventKind
	id   HotkeyID
}

// backend is the opaque platform boundary for hotkey registration and event
// retrieval. Prepare, Register, Unregister, Next and Close must only be
// called from the owner thread; Wake may be called from anywhere.
type backend interface {
	// Prepare binds the backend to the calling OS thread and sets up its
	// event queue. Called once before any other method.
	Prepare() error

	// Register asks the platform for a hotkey registration under id.
	Register(id HotkeyID, mods keys.Modifier, key keys.VirtualKey) error

	// Unregister removes a platform registration.
	Unregister(id HotkeyID) error

	// Next blocks until a hotkey trigger or a wake signal arrives. Both
	// share the platform's queue and are drained in arrival order. A
	// returned error is fatal to the owner loop.
	Next() (event, error)

	// Wake interrupts a blocked Next from any thread.
	Wake()

	// KeyHeld samples whether the key is physically held right now.
	KeyHeld(key keys.VirtualKey) bool

	// Close releases platform resources.
	Close() error
}
