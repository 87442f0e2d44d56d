package app

import (
	"context"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"

	winhotkey "github.com/0xJWLabs/win-hotkey"
	"github.com/0xJWLabs/win-hotkey/internal/config"
	"github.com/0xJWLabs/win-hotkey/keys"
)

// StatusUpdater is an interface for updating status (e.g., tray icon)
type StatusUpdater interface {
	SetActive()
	SetPaused()
	SetError()
}

type Config struct {
	Hotkeys       winhotkey.Manager
	Config        *config.Config
	Logger        zerolog.Logger
	StatusUpdater StatusUpdater // Optional - can be nil
}

type App struct {
	hk     winhotkey.Manager
	cfg    *config.Config
	log    zerolog.Logger
	status StatusUpdater

	// Hotkey callbacks run on the manager's owner thread. Calling back
	// into the manager from there would deadlock, so callbacks only
	// enqueue the binding and this channel's worker does the rest.
	actions chan config.Binding

	mu        sync.Mutex
	paused    bool
	active    map[winhotkey.HotkeyID]config.Binding
	suspended []config.Binding

	quit     chan struct{}
	quitOnce sync.Once
}

func New(cfg Config) *App {
	a := &App{
		hk:      cfg.Hotkeys,
		cfg:     cfg.Config,
		log:     cfg.Logger,
		status:  cfg.StatusUpdater,
		actions: make(chan config.Binding, 8),
		active:  make(map[winhotkey.HotkeyID]config.Binding),
		quit:    make(chan struct{}),
	}
	go a.actionLoop()
	return a
}

// RegisterBindings registers every configured binding. Fails on the first
// binding that cannot be parsed or registered.
func (a *App) RegisterBindings() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, b := range a.cfg.Bindings {
		if err := a.registerLocked(b); err != nil {
			return err
		}
	}
	if a.status != nil {
		a.status.SetActive()
	}
	return nil
}

func (a *App) registerLocked(b config.Binding) error {
	combo, err := winhotkey.ParseCombination(b.Keys)
	if err != nil {
		return err
	}
	extra := make([]keys.VirtualKey, 0, len(b.Extra))
	for _, name := range b.Extra {
		vk, err := keys.ParseVirtualKey(name)
		if err != nil {
			return err
		}
		extra = append(extra, vk)
	}

	binding := b
	id, err := a.hk.RegisterExtra(combo.Key, combo.Mods, extra, func() {
		a.enqueue(binding)
	})
	if err != nil {
		return err
	}
	a.active[id] = b
	a.log.Info().Str("keys", b.Keys).Str("action", b.Action).Uint16("id", uint16(id)).Msg("Registered binding")
	return nil
}

// enqueue hands a fired binding to the action worker without blocking the
// dispatch thread. Fires arriving faster than actions complete are dropped.
func (a *App) enqueue(b config.Binding) {
	select {
	case a.actions <- b:
	default:
		a.log.Warn().Str("keys", b.Keys).Msg("Action queue full, dropping trigger")
	}
}

func (a *App) actionLoop() {
	for {
		select {
		case <-a.quit:
			return
		case b := <-a.actions:
			a.perform(b)
		}
	}
}

func (a *App) perform(b config.Binding) {
	a.log.Debug().Str("keys", b.Keys).Str("action", b.Action).Msg("Hotkey fired")

	var err error
	switch b.Action {
	case config.ActionClipboardPreview:
		err = a.clipboardPreview()
	case config.ActionClipboardClear:
		err = clipboard.WriteAll("")
	case config.ActionNotify:
		err = beeep.Notify("win-hotkey", b.Message, "")
	case config.ActionPauseResume:
		a.TogglePause()
	case config.ActionQuit:
		a.RequestQuit()
	}
	if err != nil {
		a.log.Error().Err(err).Str("action", b.Action).Msg("Action failed")
		if a.status != nil {
			a.status.SetError()
		}
	}
}

func (a *App) clipboardPreview() error {
	text, err := clipboard.ReadAll()
	if err != nil {
		return err
	}
	preview := strings.TrimSpace(text)
	if len(preview) > 120 {
		preview = preview[:120] + "..."
	}
	if preview == "" {
		preview = "(clipboard is empty)"
	}
	return beeep.Notify("Clipboard", preview, "")
}

// Pause unregisters every binding except pause-resume and quit, which stay
// live so the user can recover without the tray.
func (a *App) Pause() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.paused {
		return nil
	}
	for id, b := range a.active {
		if b.Action == config.ActionPauseResume || b.Action == config.ActionQuit {
			continue
		}
		if err := a.hk.Unregister(id); err != nil {
			return err
		}
		delete(a.active, id)
		a.suspended = append(a.suspended, b)
	}
	a.paused = true
	a.log.Info().Msg("Bindings paused")
	if a.status != nil {
		a.status.SetPaused()
	}
	return nil
}

// Resume re-registers the bindings removed by Pause.
func (a *App) Resume() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.paused {
		return nil
	}
	for _, b := range a.suspended {
		if err := a.registerLocked(b); err != nil {
			return err
		}
	}
	a.suspended = nil
	a.paused = false
	a.log.Info().Msg("Bindings resumed")
	if a.status != nil {
		a.status.SetActive()
	}
	return nil
}

// TogglePause flips between paused and active, returning the new state.
func (a *App) TogglePause() bool {
	if a.IsPaused() {
		if err := a.Resume(); err != nil {
			a.log.Error().Err(err).Msg("Resume failed")
		}
	} else {
		if err := a.Pause(); err != nil {
			a.log.Error().Err(err).Msg("Pause failed")
		}
	}
	return a.IsPaused()
}

func (a *App) IsPaused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paused
}

// Bindings returns the configured bindings for display.
func (a *App) Bindings() []config.Binding {
	return a.cfg.Bindings
}

// RequestQuit signals that the application should exit. Idempotent.
func (a *App) RequestQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// Done is closed once a quit has been requested.
func (a *App) Done() <-chan struct{} {
	return a.quit
}

// Shutdown stops the hotkey manager, unregistering everything.
func (a *App) Shutdown(ctx context.Context) error {
	a.RequestQuit()
	return a.hk.Stop()
}
