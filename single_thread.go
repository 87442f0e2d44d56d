package winhotkey

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/0xJWLabs/win-hotkey/keys"
)

// SingleThreadManager is the unmarshalled manager core. The native hotkey
// API binds registrations to the registering OS thread, so the caller must
// construct and use a SingleThreadManager from a single goroutine locked to
// its OS thread (runtime.LockOSThread); violating this is undefined at the
// native level and is not detected here. Interrupt and Stop are the only
// methods safe to call from other threads.
//
// Most callers want the ThreadSafeManager returned by New instead.
type SingleThreadManager struct {
	backend  backend
	reg      *registry
	log      zerolog.Logger
	noRepeat bool
	stopped  atomic.Bool
}

// NewSingleThread creates a manager bound to the calling OS thread.
func NewSingleThread(opts ...Option) (*SingleThreadManager, error) {
	o := buildOptions(opts)
	if err := o.backend.Prepare(); err != nil {
		return nil, err
	}
	return newCore(o), nil
}

func newCore(o options) *SingleThreadManager {
	return &SingleThreadManager{
		backend:  o.backend,
		reg:      newRegistry(),
		log:      o.logger,
		noRepeat: o.noRepeat,
	}
}

func (m *SingleThreadManager) Register(key keys.VirtualKey, mods []keys.Modifier, fn func()) (HotkeyID, error) {
	return m.RegisterExtra(key, mods, nil, fn)
}

func (m *SingleThreadManager) RegisterExtra(key keys.VirtualKey, mods []keys.Modifier, extra []keys.VirtualKey, fn func()) (HotkeyID, error) {
	return m.registerCombo(KeyCombination{Key: key, Mods: mods, Extra: extra}, fn)
}

func (m *SingleThreadManager) RegisterWithID(id HotkeyID, key keys.VirtualKey, mods []keys.Modifier, fn func()) error {
	return m.registerComboWithID(id, KeyCombination{Key: key, Mods: mods}, fn)
}

func (m *SingleThreadManager) registerCombo(combo KeyCombination, fn func()) (HotkeyID, error) {
	if m.stopped.Load() {
		return 0, ErrManagerStopped
	}
	if err := combo.validate(); err != nil {
		return 0, err
	}
	id, err := m.reg.allocateID(combo)
	if err != nil {
		return 0, err
	}
	if err := m.backend.Register(id, m.registrationMods(combo), combo.Key); err != nil {
		return 0, err
	}
	m.reg.insert(id, combo, fn)
	m.log.Debug().Uint16("id", uint16(id)).Stringer("combo", combo).Msg("hotkey registered")
	return id, nil
}

func (m *SingleThreadManager) registerComboWithID(id HotkeyID, combo KeyCombination, fn func()) error {
	if m.stopped.Load() {
		return ErrManagerStopped
	}
	if err := combo.validate(); err != nil {
		return err
	}
	if id > maxHotkeyID {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	if _, err := m.reg.lookup(id); err == nil {
		return fmt.Errorf("%w: id %d already in use", ErrDuplicateCombination, id)
	}
	if m.reg.contains(combo) {
		return fmt.Errorf("%w: %s", ErrDuplicateCombination, combo)
	}
	if err := m.backend.Register(id, m.registrationMods(combo), combo.Key); err != nil {
		return err
	}
	m.reg.insert(id, combo, fn)
	m.log.Debug().Uint16("id", uint16(id)).Stringer("combo", combo).Msg("hotkey registered")
	return nil
}

func (m *SingleThreadManager) registrationMods(combo KeyCombination) keys.Modifier {
	mods := combo.modBits()
	if m.noRepeat {
		mods |= keys.ModNoRepeat
	}
	return mods
}

func (m *SingleThreadManager) Unregister(id HotkeyID) error {
	if m.stopped.Load() {
		return ErrManagerStopped
	}
	if _, err := m.reg.lookup(id); err != nil {
		return err
	}
	// The native unregistration and the registry removal form one atomic
	// step relative to other commands; on native failure the entry stays.
	if err := m.backend.Unregister(id); err != nil {
		return err
	}
	m.reg.remove(id)
	m.log.Debug().Uint16("id", uint16(id)).Msg("hotkey unregistered")
	return nil
}

// UnregisterAll removes every live registration, continuing past individual
// native failures and returning the first one encountered.
func (m *SingleThreadManager) UnregisterAll() error {
	var first error
	for _, id := range m.reg.ids() {
		if err := m.backend.Unregister(id); err != nil {
			m.log.Warn().Uint16("id", uint16(id)).Err(err).Msg("unregister failed")
			if first == nil {
				first = err
			}
			continue
		}
		m.reg.remove(id)
	}
	return first
}

// dispatch looks up the id from a trigger event, checks the extra-key
// condition and runs the callback on the calling (owner) thread. Reports
// whether a callback actually ran.
func (m *SingleThreadManager) dispatch(id HotkeyID) bool {
	e, err := m.reg.lookup(id)
	if err != nil {
		m.log.Debug().Uint16("id", uint16(id)).Msg("trigger for unknown hotkey id")
		return false
	}
	for _, vk := range e.combo.Extra {
		if !m.backend.KeyHeld(vk) {
			// Unmet extra-key condition drops this occurrence silently.
			m.log.Debug().Uint16("id", uint16(id)).Stringer("key", vk).Msg("extra key not held, trigger dropped")
			return false
		}
	}
	e.callback()
	return true
}

// HandleHotkey blocks until exactly one hotkey callback has run, returning
// true, or until the wait is interrupted, returning false. Triggers whose
// extra-key condition is unmet do not end the wait.
func (m *SingleThreadManager) HandleHotkey() (bool, error) {
	for {
		ev, err := m.backend.Next()
		if err != nil {
			m.stopped.Store(true)
			return false, err
		}
		switch ev.kind {
		case eventWake:
			return false, nil
		case eventHotkey:
			if m.dispatch(ev.id) {
				return true, nil
			}
		}
	}
}

// EventLoop dispatches hotkeys on the calling thread until interrupted or
// stopped, or until event retrieval fails fatally.
func (m *SingleThreadManager) EventLoop() error {
	for {
		fired, err := m.HandleHotkey()
		if err != nil {
			return err
		}
		if !fired {
			return nil
		}
	}
}

// Interrupt wakes a blocked HandleHotkey/EventLoop without unregistering
// anything. Safe to call from any thread, any number of times.
func (m *SingleThreadManager) Interrupt() {
	m.backend.Wake()
}

// Stop unregisters every remaining hotkey, wakes a blocked event loop and
// marks the manager terminal. Per-entry native failures are logged, not
// returned. Idempotent.
func (m *SingleThreadManager) Stop() error {
	if m.stopped.Swap(true) {
		return nil
	}
	m.UnregisterAll()
	m.backend.Wake()
	return m.backend.Close()
}
