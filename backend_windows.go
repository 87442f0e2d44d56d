//go:build windows

package winhotkey

import (
	"errors"
	"syscall"

	"github.com/0xJWLabs/win-hotkey/internal/win32"
	"github.com/0xJWLabs/win-hotkey/keys"
)

// win32Backend is the native boundary on Windows. Hotkeys register against
// the owner thread itself (null window handle), so WM_HOTKEY notifications
// and the WM_NULL wake signal share the thread's message queue and are
// retrieved in arrival order by a single blocking GetMessage.
type win32Backend struct {
	threadID uint32
}

func newPlatformBackend() backend {
	return &win32Backend{}
}

// Prepare captures the owner thread's id as the wake target and forces its
// message queue into existence. Publication of threadID is ordered by the
// constructor handshake; Wake is never called before Prepare returns.
func (b *win32Backend) Prepare() error {
	b.threadID = win32.CurrentThreadID()
	win32.EnsureMessageQueue()
	return nil
}

func (b *win32Backend) Register(id HotkeyID, mods keys.Modifier, key keys.VirtualKey) error {
	if err := win32.RegisterHotKey(int32(id), uint32(mods), uint32(key)); err != nil {
		return &NativeError{Op: "register", Code: errnoCode(err), Err: err}
	}
	return nil
}

func (b *win32Backend) Unregister(id HotkeyID) error {
	if err := win32.UnregisterHotKey(int32(id)); err != nil {
		return &NativeError{Op: "unregister", Code: errnoCode(err), Err: err}
	}
	return nil
}

func (b *win32Backend) Next() (event, error) {
	for {
		var msg win32.MSG
		if err := win32.GetMessage(&msg); err != nil {
			return event{}, err
		}
		switch msg.Message {
		case win32.WMHotkey:
			return event{kind: eventHotkey, id: HotkeyID(msg.WParam)}, nil
		case win32.WMNull:
			return event{kind: eventWake}, nil
		}
		// Other messages in the filter range are not ours; keep waiting.
	}
}

func (b *win32Backend) Wake() {
	win32.PostThreadMessage(b.threadID, win32.WMNull)
}

func (b *win32Backend) KeyHeld(key keys.VirtualKey) bool {
	return win32.KeyDown(uint16(key))
}

func (b *win32Backend) Close() error { return nil }

func errnoCode(err error) uint32 {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}
