package winhotkey

import (
	"sync"

	"github.com/0xJWLabs/win-hotkey/keys"
)

// fakeBackend is a scriptable stand-in for the native boundary. Trigger
// events and wake signals share one queue, mirroring the Windows thread
// message queue.
type fakeBackend struct {
	mu         sync.Mutex
	registered map[HotkeyID]fakeRegistration
	held       map[keys.VirtualKey]bool
	failNext   error // next Register call fails with this, one-shot

	events chan event
	fatal  chan error
}

type fakeRegistration struct {
	mods keys.Modifier
	key  keys.VirtualKey
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		registered: make(map[HotkeyID]fakeRegistration),
		held:       make(map[keys.VirtualKey]bool),
		events:     make(chan event, 64),
		fatal:      make(chan error, 1),
	}
}

func (b *fakeBackend) Prepare() error { return nil }

func (b *fakeBackend) Register(id HotkeyID, mods keys.Modifier, key keys.VirtualKey) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failNext; err != nil {
		b.failNext = nil
		return err
	}
	b.registered[id] = fakeRegistration{mods: mods, key: key}
	return nil
}

func (b *fakeBackend) Unregister(id HotkeyID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.registered, id)
	return nil
}

func (b *fakeBackend) Next() (event, error) {
	select {
	case ev := <-b.events:
		return ev, nil
	case err := <-b.fatal:
		return event{}, err
	}
}

func (b *fakeBackend) Wake() {
	b.events <- event{kind: eventWake}
}

func (b *fakeBackend) KeyHeld(key keys.VirtualKey) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.held[key]
}

func (b *fakeBackend) Close() error { return nil }

// SimTrigger queues a hotkey trigger event as the OS would.
func (b *fakeBackend) SimTrigger(id HotkeyID) {
	b.events <- event{kind: eventHotkey, id: id}
}

// SimFatal makes the next blocking wait fail, as if message retrieval broke.
func (b *fakeBackend) SimFatal(err error) {
	b.fatal <- err
}

// SetHeld scripts the sampled physical state of a key.
func (b *fakeBackend) SetHeld(key keys.VirtualKey, held bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.held[key] = held
}

// FailNextRegister makes the next native registration fail with err.
func (b *fakeBackend) FailNextRegister(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failNext = err
}

func (b *fakeBackend) registrationCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.registered)
}

func (b *fakeBackend) isRegistered(id HotkeyID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.registered[id]
	return ok
}
