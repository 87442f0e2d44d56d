package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Actions a binding can trigger.
const (
	ActionClipboardPreview = "clipboard-preview"
	ActionClipboardClear   = "clipboard-clear"
	ActionNotify           = "notify"
	ActionPauseResume      = "pause-resume"
	ActionQuit             = "quit"
)

// Binding ties one key combination to an action.
type Binding struct {
	Keys    string   `json:"keys"`              // e.g. "CTRL+ALT+V"
	Extra   []string `json:"extra,omitempty"`   // keys that must also be held
	Action  string   `json:"action"`            // one of the Action* constants
	Message string   `json:"message,omitempty"` // notification text for "notify"
}

type Config struct {
	Bindings []Binding `json:"bindings"`
	NoRepeat bool      `json:"no_repeat"`
	LogLevel string    `json:"log_level"`
}

// Validate rejects bindings with an unknown action. Key names are checked
// later, at registration time.
func (c *Config) Validate() error {
	for _, b := range c.Bindings {
		switch b.Action {
		case ActionClipboardPreview, ActionClipboardClear, ActionNotify,
			ActionPauseResume, ActionQuit:
		default:
			return fmt.Errorf("binding %q: unknown action %q", b.Keys, b.Action)
		}
	}
	return nil
}

// Load reads the config from disk or returns defaults
func Load() (*Config, error) {
	path := configPath()

	// Default config
	cfg := &Config{
		Bindings: []Binding{
			{Keys: "CTRL+ALT+V", Action: ActionClipboardPreview},
			{Keys: "CTRL+ALT+X", Action: ActionClipboardClear},
			{Keys: "CTRL+ALT+N", Action: ActionNotify, Message: "Hotkeys are live"},
			{Keys: "CTRL+ALT+P", Action: ActionPauseResume},
			{Keys: "CTRL+ALT+Q", Action: ActionQuit},
		},
		NoRepeat: true,
		LogLevel: "info",
	}

	// Load existing config if it exists
	if data, err := os.ReadFile(path); err == nil {
		cfg.Bindings = nil // file bindings replace the defaults entirely
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path := configPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// configPath returns the platform-specific config file path
func configPath() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = os.Getenv("HOME") + "/Library/Application Support"
	case "windows":
		base = os.Getenv("APPDATA")
	default: // linux
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = xdg
		} else {
			base = os.Getenv("HOME") + "/.config"
		}
	}

	return filepath.Join(base, "win-hotkey", "config.json")
}
