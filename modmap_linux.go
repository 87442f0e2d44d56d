//go:build linux

package winhotkey

import (
	"golang.design/x/hotkey"

	"github.com/0xJWLabs/win-hotkey/keys"
)

// X11 exposes Alt as Mod1 and Super as Mod4.
var xhotkeyModifierMap = map[keys.Modifier]hotkey.Modifier{
	keys.ModAlt:     hotkey.Mod1,
	keys.ModControl: hotkey.ModCtrl,
	keys.ModShift:   hotkey.ModShift,
	keys.ModWin:     hotkey.Mod4,
}
