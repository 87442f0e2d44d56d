//go:build !windows

package winhotkey

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"

	"github.com/0xJWLabs/win-hotkey/keys"
)

// xhotkeyBackend approximates the native boundary on non-Windows systems on
// top of golang.design/x/hotkey (macOS and X11). Trigger events from every
// registration are funneled into one queue alongside wake signals, so Next
// preserves arrival order the way the Windows thread queue does.
//
// Limitations relative to the native backend: the NoRepeat flag is ignored,
// and physical key-state sampling is unavailable, so extra-key conditions
// always pass.
type xhotkeyBackend struct {
	mu     sync.Mutex
	regs   map[HotkeyID]*xhotkeyReg
	events chan event
}

type xhotkeyReg struct {
	hk   *hotkey.Hotkey
	stop chan struct{}
}

func newPlatformBackend() backend {
	return &xhotkeyBackend{
		regs:   make(map[HotkeyID]*xhotkeyReg),
		events: make(chan event, 64),
	}
}

func (b *xhotkeyBackend) Prepare() error { return nil }

func (b *xhotkeyBackend) Register(id HotkeyID, mods keys.Modifier, key keys.VirtualKey) error {
	xkey, ok := xhotkeyKeys[key]
	if !ok {
		return &NativeError{
			Op:  "register",
			Err: fmt.Errorf("%w: key %s not supported by the fallback backend", ErrInvalidCombination, key),
		}
	}

	hk := hotkey.New(xhotkeyModifiers(mods), xkey)
	if err := hk.Register(); err != nil {
		return &NativeError{Op: "register", Err: err}
	}

	reg := &xhotkeyReg{hk: hk, stop: make(chan struct{})}
	b.mu.Lock()
	b.regs[id] = reg
	b.mu.Unlock()
	go b.forward(id, reg)
	return nil
}

// forward turns keydown events of one registration into queue events until
// the registration is removed.
func (b *xhotkeyBackend) forward(id HotkeyID, reg *xhotkeyReg) {
	for {
		select {
		case <-reg.stop:
			return
		case <-reg.hk.Keydown():
			select {
			case b.events <- event{kind: eventHotkey, id: id}:
			case <-reg.stop:
				return
			}
		}
	}
}

func (b *xhotkeyBackend) Unregister(id HotkeyID) error {
	b.mu.Lock()
	reg, ok := b.regs[id]
	delete(b.regs, id)
	b.mu.Unlock()
	if !ok {
		return &NativeError{Op: "unregister", Err: fmt.Errorf("no fallback registration for id %d", id)}
	}

	close(reg.stop)
	if err := reg.hk.Unregister(); err != nil {
		return &NativeError{Op: "unregister", Err: err}
	}
	return nil
}

func (b *xhotkeyBackend) Next() (event, error) {
	return <-b.events, nil
}

func (b *xhotkeyBackend) Wake() {
	b.events <- event{kind: eventWake}
}

// KeyHeld always reports true: golang.design/x/hotkey offers no global
// key-state sampling, so extra-key conditions cannot be enforced here.
func (b *xhotkeyBackend) KeyHeld(keys.VirtualKey) bool { return true }

func (b *xhotkeyBackend) Close() error { return nil }

// xhotkeyModifiers translates combined modifier flags to the library's
// per-platform modifier values, dropping NoRepeat.
func xhotkeyModifiers(mods keys.Modifier) []hotkey.Modifier {
	out := make([]hotkey.Modifier, 0, 4)
	for _, m := range []keys.Modifier{keys.ModAlt, keys.ModControl, keys.ModShift, keys.ModWin} {
		if mods&m != 0 {
			out = append(out, xhotkeyModifierMap[m])
		}
	}
	return out
}

// xhotkeyKeys maps virtual-key codes to the key constants the fallback
// library defines on every platform it supports.
var xhotkeyKeys = map[keys.VirtualKey]hotkey.Key{
	keys.A: hotkey.KeyA, keys.B: hotkey.KeyB, keys.C: hotkey.KeyC,
	keys.D: hotkey.KeyD, keys.E: hotkey.KeyE, keys.F: hotkey.KeyF,
	keys.G: hotkey.KeyG, keys.H: hotkey.KeyH, keys.I: hotkey.KeyI,
	keys.J: hotkey.KeyJ, keys.K: hotkey.KeyK, keys.L: hotkey.KeyL,
	keys.M: hotkey.KeyM, keys.N: hotkey.KeyN, keys.O: hotkey.KeyO,
	keys.P: hotkey.KeyP, keys.Q: hotkey.KeyQ, keys.R: hotkey.KeyR,
	keys.S: hotkey.KeyS, keys.T: hotkey.KeyT, keys.U: hotkey.KeyU,
	keys.V: hotkey.KeyV, keys.W: hotkey.KeyW, keys.X: hotkey.KeyX,
	keys.Y: hotkey.KeyY, keys.Z: hotkey.KeyZ,

	keys.Digit0: hotkey.Key0, keys.Digit1: hotkey.Key1,
	keys.Digit2: hotkey.Key2, keys.Digit3: hotkey.Key3,
	keys.Digit4: hotkey.Key4, keys.Digit5: hotkey.Key5,
	keys.Digit6: hotkey.Key6, keys.Digit7: hotkey.Key7,
	keys.Digit8: hotkey.Key8, keys.Digit9: hotkey.Key9,

	keys.F1: hotkey.KeyF1, keys.F2: hotkey.KeyF2, keys.F3: hotkey.KeyF3,
	keys.F4: hotkey.KeyF4, keys.F5: hotkey.KeyF5, keys.F6: hotkey.KeyF6,
	keys.F7: hotkey.KeyF7, keys.F8: hotkey.KeyF8, keys.F9: hotkey.KeyF9,
	keys.F10: hotkey.KeyF10, keys.F11: hotkey.KeyF11, keys.F12: hotkey.KeyF12,

	keys.Space:  hotkey.KeySpace,
	keys.Tab:    hotkey.KeyTab,
	keys.Return: hotkey.KeyReturn,
	keys.Escape: hotkey.KeyEscape,
	keys.Delete: hotkey.KeyDelete,
	keys.Left:   hotkey.KeyLeft,
	keys.Right:  hotkey.KeyRight,
	keys.Up:     hotkey.KeyUp,
	keys.Down:   hotkey.KeyDown,
}
