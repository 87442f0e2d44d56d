//go:build darwin

package winhotkey

import (
	"golang.design/x/hotkey"

	"github.com/0xJWLabs/win-hotkey/keys"
)

// macOS maps Alt to Option and the Windows key to Command.
var xhotkeyModifierMap = map[keys.Modifier]hotkey.Modifier{
	keys.ModAlt:     hotkey.ModOption,
	keys.ModControl: hotkey.ModCtrl,
	keys.ModShift:   hotkey.ModShift,
	keys.ModWin:     hotkey.ModCmd,
}
