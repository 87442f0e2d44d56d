package winhotkey

import (
	"errors"
	"testing"
	"time"

	"github.com/0xJWLabs/win-hotkey/keys"
)

func newSingleThreadForTest(t *testing.T) (*SingleThreadManager, *fakeBackend) {
	t.Helper()
	fb := newFakeBackend()
	m, err := NewSingleThread(withBackend(fb))
	if err != nil {
		t.Fatalf("NewSingleThread: %v", err)
	}
	return m, fb
}

func TestSingleThreadHandleHotkey(t *testing.T) {
	m, fb := newSingleThreadForTest(t)

	var count int
	id, err := m.Register(keys.A, []keys.Modifier{keys.ModAlt}, func() { count++ })
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	fb.SimTrigger(id)
	fired, err := m.HandleHotkey()
	if err != nil {
		t.Fatalf("HandleHotkey: %v", err)
	}
	if !fired || count != 1 {
		t.Fatalf("fired=%v count=%d, want one dispatch", fired, count)
	}
}

func TestSingleThreadHandleHotkeySkipsUnmetExtras(t *testing.T) {
	m, fb := newSingleThreadForTest(t)

	var count int
	id, err := m.RegisterExtra(keys.A, []keys.Modifier{keys.ModAlt},
		[]keys.VirtualKey{keys.Shift}, func() { count++ })
	if err != nil {
		t.Fatalf("RegisterExtra: %v", err)
	}

	// An unmet trigger must not end the wait; the interrupt does.
	fb.SimTrigger(id)
	m.Interrupt()
	fired, err := m.HandleHotkey()
	if err != nil {
		t.Fatalf("HandleHotkey: %v", err)
	}
	if fired || count != 0 {
		t.Fatalf("fired=%v count=%d, want dropped trigger", fired, count)
	}
}

func TestSingleThreadEventLoopInterrupt(t *testing.T) {
	m, fb := newSingleThreadForTest(t)

	id, err := m.Register(keys.B, []keys.Modifier{keys.ModControl}, func() {})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	fb.SimTrigger(id)

	done := make(chan error, 1)
	go func() { done <- m.EventLoop() }()

	m.Interrupt()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("EventLoop: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("EventLoop did not return after Interrupt")
	}
}

func TestSingleThreadStop(t *testing.T) {
	m, fb := newSingleThreadForTest(t)

	if _, err := m.Register(keys.A, []keys.Modifier{keys.ModAlt}, func() {}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := m.Register(keys.B, []keys.Modifier{keys.ModAlt}, func() {}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := m.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if n := fb.registrationCount(); n != 0 {
		t.Fatalf("expected no leaked registrations after Stop, got %d", n)
	}
	if _, err := m.Register(keys.C, nil, func() {}); !errors.Is(err, ErrManagerStopped) {
		t.Fatalf("register after Stop: got %v, want ErrManagerStopped", err)
	}
	if err := m.Stop(); err != nil {
		t.Fatalf("Stop must be idempotent, got %v", err)
	}
}

func TestSingleThreadUnregisterAll(t *testing.T) {
	m, fb := newSingleThreadForTest(t)

	for _, vk := range []keys.VirtualKey{keys.A, keys.B, keys.C} {
		if _, err := m.Register(vk, []keys.Modifier{keys.ModWin}, func() {}); err != nil {
			t.Fatalf("Register(%v): %v", vk, err)
		}
	}
	if err := m.UnregisterAll(); err != nil {
		t.Fatalf("UnregisterAll: %v", err)
	}
	if n := fb.registrationCount(); n != 0 {
		t.Fatalf("expected empty backend, got %d registrations", n)
	}
}

func TestSingleThreadNoRepeatDefault(t *testing.T) {
	fb := newFakeBackend()
	m, err := NewSingleThread(withBackend(fb))
	if err != nil {
		t.Fatalf("NewSingleThread: %v", err)
	}
	id, err := m.Register(keys.A, []keys.Modifier{keys.ModAlt}, func() {})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	fb.mu.Lock()
	mods := fb.registered[id].mods
	fb.mu.Unlock()
	if mods&keys.ModNoRepeat == 0 {
		t.Fatal("expected NoRepeat to be applied by default")
	}

	fb2 := newFakeBackend()
	m2, err := NewSingleThread(withBackend(fb2), WithNoRepeat(false))
	if err != nil {
		t.Fatalf("NewSingleThread: %v", err)
	}
	id2, err := m2.Register(keys.A, []keys.Modifier{keys.ModAlt}, func() {})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	fb2.mu.Lock()
	mods2 := fb2.registered[id2].mods
	fb2.mu.Unlock()
	if mods2&keys.ModNoRepeat != 0 {
		t.Fatal("NoRepeat applied despite WithNoRepeat(false)")
	}
}
