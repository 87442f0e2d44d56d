package tray

import (
	"context"
	"fmt"

	"github.com/getlantern/systray"
	"github.com/rs/zerolog"

	"github.com/0xJWLabs/win-hotkey/internal/app"
	"github.com/0xJWLabs/win-hotkey/internal/config"
)

type UI struct {
	app     *app.App
	cfg     *config.Config
	version string
	commit  string
	log     zerolog.Logger

	// Menu items
	mPause    *systray.MenuItem
	mBindings *systray.MenuItem
}

// Status update methods for the app to call
func (u *UI) SetActive() {
	u.updateStatus("active")
}

func (u *UI) SetPaused() {
	u.updateStatus("paused")
}

func (u *UI) SetError() {
	u.updateStatus("error")
}

func New(application *app.App, cfg *config.Config, log zerolog.Logger, version, commit string) *UI {
	return &UI{
		app:     application,
		cfg:     cfg,
		version: version,
		commit:  commit,
		log:     log,
	}
}

// SetApp sets the app reference (for circular dependency resolution)
func (u *UI) SetApp(application *app.App) {
	u.app = application
}

func (u *UI) Run(ctx context.Context) error {
	systray.Run(u.onReady, u.onExit)
	return nil
}

func (u *UI) onReady() {
	u.updateStatus("active")
	systray.SetTooltip("Global hotkeys")

	// Build menu
	u.mPause = systray.AddMenuItem("Pause Hotkeys", "Temporarily disable all bindings")
	systray.AddSeparator()

	u.mBindings = systray.AddMenuItem("Bindings", "Configured hotkeys")
	u.buildBindingMenu()

	systray.AddSeparator()
	mLogs := systray.AddMenuItem("Open Logs", "View application logs")
	mAbout := systray.AddMenuItem("About", "About win-hotkey")
	mQuit := systray.AddMenuItem("Quit", "Exit application")

	// Event loop
	go u.handleEvents(mLogs, mAbout, mQuit)
}

func (u *UI) handleEvents(mLogs, mAbout, mQuit *systray.MenuItem) {
	for {
		select {
		case <-u.mPause.ClickedCh:
			u.togglePause()
		case <-mLogs.ClickedCh:
			u.openLogs()
		case <-mAbout.ClickedCh:
			u.showAbout()
		case <-u.app.Done():
			// Quit hotkey fired; tear the tray down too.
			systray.Quit()
			return
		case <-mQuit.ClickedCh:
			u.app.RequestQuit()
			systray.Quit()
			return
		}
	}
}

func (u *UI) buildBindingMenu() {
	for _, b := range u.app.Bindings() {
		item := u.mBindings.AddSubMenuItem(bindingLabel(b), "")
		item.Disable()
	}
}

// bindingLabel renders one binding for the menu, e.g. "CTRL+ALT+V (+SHIFT) - notify".
func bindingLabel(b config.Binding) string {
	label := b.Keys
	for _, extra := range b.Extra {
		label += fmt.Sprintf(" (+%s)", extra)
	}
	return fmt.Sprintf("%s - %s", label, b.Action)
}

func (u *UI) togglePause() {
	if u.app.TogglePause() {
		u.mPause.SetTitle("Resume Hotkeys")
		u.updateStatus("paused")
		u.log.Info().Msg("Hotkeys paused from tray")
	} else {
		u.mPause.SetTitle("Pause Hotkeys")
		u.updateStatus("active")
		u.log.Info().Msg("Hotkeys resumed from tray")
	}
}

func (u *UI) openLogs() {
	// TODO: Open log file with default app
	fmt.Println("Open logs...")
}

func (u *UI) showAbout() {
	fmt.Printf("win-hotkey %s (%s)\nGlobal hotkey daemon\n", u.version, u.commit)
}

func (u *UI) onExit() {
	// Cleanup
}

// updateStatus sets the tray title with keyboard emoji and status indicator
func (u *UI) updateStatus(status string) {
	emoji := emojiForStatus(status)
	systray.SetTitle(fmt.Sprintf("⌨️ %s", emoji))
}

// emojiForStatus returns the appropriate status emoji
func emojiForStatus(status string) string {
	switch status {
	case "active":
		return "🟢" // Green - bindings live
	case "paused":
		return "🟡" // Yellow - bindings suspended
	case "error":
		return "⚪️" // White - error
	default:
		return "🟢" // Green - default to active
	}
}
