package winhotkey

import (
	"errors"
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"github.com/0xJWLabs/win-hotkey/keys"
)

type cmdKind int

const (
	cmdRegister cmdKind = iota
	cmdRegisterID
	cmdUnregister
	cmdUnregisterAll
	cmdStop
)

// command is one cross-thread request. reply is single-use: the owner
// thread fulfills it exactly once, or never if the manager dies first, in
// which case the submitter resolves against done instead.
type command struct {
	kind  cmdKind
	id    HotkeyID
	combo KeyCombination
	fn    func()
	reply chan cmdResult
}

type cmdResult struct {
	id  HotkeyID
	err error
}

// ThreadSafeManager runs the hotkey owner loop on a dedicated OS-locked
// background thread and marshals every operation onto it through a command
// channel, so it can be used from any goroutine. Commands submitted from one
// goroutine are processed in submission order.
type ThreadSafeManager struct {
	cmds    chan command
	backend backend
	log     zerolog.Logger

	done  chan struct{}
	once  sync.Once
	cause error // read only after done is closed
}

// New creates the default, thread-safe manager and starts its owner thread.
func New(opts ...Option) (*ThreadSafeManager, error) {
	o := buildOptions(opts)
	t := &ThreadSafeManager{
		cmds:    make(chan command, o.backlog),
		backend: o.backend,
		log:     o.logger,
		done:    make(chan struct{}),
	}

	ready := make(chan error, 1)
	go t.run(o, ready)
	if err := <-ready; err != nil {
		return nil, err
	}
	return t, nil
}

// run is the owner loop. It is the only goroutine that touches the registry
// or performs native calls, and it stays locked to one OS thread for its
// whole life because hotkey registrations are bound to that thread.
func (t *ThreadSafeManager) run(o options, ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := t.backend.Prepare(); err != nil {
		ready <- err
		return
	}
	ready <- nil

	core := newCore(o)
	defer t.backend.Close()

	for {
		ev, err := t.backend.Next()
		if err != nil {
			// Failure of the blocking wait itself is fatal: release
			// what we can and fail all subsequent commands.
			t.log.Error().Err(err).Msg("event retrieval failed, stopping hotkey manager")
			core.UnregisterAll()
			t.terminate(err)
			return
		}
		switch ev.kind {
		case eventWake:
			if t.drain(core) {
				return
			}
		case eventHotkey:
			core.dispatch(ev.id)
		}
	}
}

// drain processes every command currently queued, FIFO. Reports whether a
// Stop command ended the loop.
func (t *ThreadSafeManager) drain(core *SingleThreadManager) bool {
	for {
		select {
		case cmd := <-t.cmds:
			if cmd.kind == cmdStop {
				core.UnregisterAll()
				t.terminate(nil)
				cmd.reply <- cmdResult{}
				return true
			}
			cmd.reply <- t.apply(core, cmd)
		default:
			return false
		}
	}
}

func (t *ThreadSafeManager) apply(core *SingleThreadManager, cmd command) cmdResult {
	switch cmd.kind {
	case cmdRegister:
		id, err := core.registerCombo(cmd.combo, cmd.fn)
		return cmdResult{id: id, err: err}
	case cmdRegisterID:
		return cmdResult{err: core.registerComboWithID(cmd.id, cmd.combo, cmd.fn)}
	case cmdUnregister:
		return cmdResult{err: core.Unregister(cmd.id)}
	case cmdUnregisterAll:
		return cmdResult{err: core.UnregisterAll()}
	}
	return cmdResult{err: errors.New("unknown command")}
}

func (t *ThreadSafeManager) terminate(cause error) {
	t.once.Do(func() {
		t.cause = cause
		close(t.done)
	})
}

// submit enqueues a command, wakes the owner thread and blocks until the
// reply arrives or the manager is gone.
func (t *ThreadSafeManager) submit(cmd command) cmdResult {
	cmd.reply = make(chan cmdResult, 1)
	select {
	case t.cmds <- cmd:
	case <-t.done:
		return cmdResult{err: ErrManagerStopped}
	}
	t.backend.Wake()

	select {
	case res := <-cmd.reply:
		return res
	case <-t.done:
		// The owner may have fulfilled the reply in the same instant it
		// shut down; prefer the real result if so.
		select {
		case res := <-cmd.reply:
			return res
		default:
			return cmdResult{err: ErrManagerStopped}
		}
	}
}

func (t *ThreadSafeManager) Register(key keys.VirtualKey, mods []keys.Modifier, fn func()) (HotkeyID, error) {
	return t.RegisterExtra(key, mods, nil, fn)
}

func (t *ThreadSafeManager) RegisterExtra(key keys.VirtualKey, mods []keys.Modifier, extra []keys.VirtualKey, fn func()) (HotkeyID, error) {
	res := t.submit(command{
		kind:  cmdRegister,
		combo: KeyCombination{Key: key, Mods: mods, Extra: extra},
		fn:    fn,
	})
	return res.id, res.err
}

func (t *ThreadSafeManager) RegisterWithID(id HotkeyID, key keys.VirtualKey, mods []keys.Modifier, fn func()) error {
	return t.submit(command{
		kind:  cmdRegisterID,
		id:    id,
		combo: KeyCombination{Key: key, Mods: mods},
		fn:    fn,
	}).err
}

func (t *ThreadSafeManager) Unregister(id HotkeyID) error {
	return t.submit(command{kind: cmdUnregister, id: id}).err
}

// UnregisterAll removes every live registration without stopping the manager.
func (t *ThreadSafeManager) UnregisterAll() error {
	return t.submit(command{kind: cmdUnregisterAll}).err
}

// EventLoop waits for the background owner thread to exit. It returns the
// fatal native error if one terminated the loop, nil after a clean Stop.
func (t *ThreadSafeManager) EventLoop() error {
	<-t.done
	return t.cause
}

// Stop unregisters every remaining hotkey and shuts down the owner thread.
// Idempotent: stopping an already-stopped manager is a no-op.
func (t *ThreadSafeManager) Stop() error {
	res := t.submit(command{kind: cmdStop})
	if errors.Is(res.err, ErrManagerStopped) {
		return nil
	}
	return res.err
}

var _ Manager = (*ThreadSafeManager)(nil)
var _ Manager = (*SingleThreadManager)(nil)
