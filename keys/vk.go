package keys

import (
	"fmt"
	"strconv"
	"strings"
)

// VirtualKey is a Windows virtual-key code. The constants below cover the
// keys commonly used in hotkey combinations; any other code can be expressed
// directly since the type is just the raw keycode.
//
// See: https://learn.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
type VirtualKey uint16

const (
	Back     VirtualKey = 0x08
	Tab      VirtualKey = 0x09
	Clear    VirtualKey = 0x0C
	Return   VirtualKey = 0x0D
	Shift    VirtualKey = 0x10
	Control  VirtualKey = 0x11
	Menu     VirtualKey = 0x12 // ALT key
	Pause    VirtualKey = 0x13
	Capital  VirtualKey = 0x14 // CAPS LOCK key
	Escape   VirtualKey = 0x1B
	Space    VirtualKey = 0x20
	Prior    VirtualKey = 0x21 // PAGE UP key
	Next     VirtualKey = 0x22 // PAGE DOWN key
	End      VirtualKey = 0x23
	Home     VirtualKey = 0x24
	Left     VirtualKey = 0x25
	Up       VirtualKey = 0x26
	Right    VirtualKey = 0x27
	Down     VirtualKey = 0x28
	Select   VirtualKey = 0x29
	Print    VirtualKey = 0x2A
	Execute  VirtualKey = 0x2B
	Snapshot VirtualKey = 0x2C // PRINT SCREEN key
	Insert   VirtualKey = 0x2D
	Delete   VirtualKey = 0x2E
	Help     VirtualKey = 0x2F

	Digit0 VirtualKey = 0x30
	Digit1 VirtualKey = 0x31
	Digit2 VirtualKey = 0x32
	Digit3 VirtualKey = 0x33
	Digit4 VirtualKey = 0x34
	Digit5 VirtualKey = 0x35
	Digit6 VirtualKey = 0x36
	Digit7 VirtualKey = 0x37
	Digit8 VirtualKey = 0x38
	Digit9 VirtualKey = 0x39

	A VirtualKey = 0x41
	B VirtualKey = 0x42
	C VirtualKey = 0x43
	D VirtualKey = 0x44
	E VirtualKey = 0x45
	F VirtualKey = 0x46
	G VirtualKey = 0x47
	H VirtualKey = 0x48
	I VirtualKey = 0x49
	J VirtualKey = 0x4A
	K VirtualKey = 0x4B
	L VirtualKey = 0x4C
	M VirtualKey = 0x4D
	N VirtualKey = 0x4E
	O VirtualKey = 0x4F
	P VirtualKey = 0x50
	Q VirtualKey = 0x51
	R VirtualKey = 0x52
	S VirtualKey = 0x53
	T VirtualKey = 0x54
	U VirtualKey = 0x55
	V VirtualKey = 0x56
	W VirtualKey = 0x57
	X VirtualKey = 0x58
	Y VirtualKey = 0x59
	Z VirtualKey = 0x5A

	LWin  VirtualKey = 0x5B
	RWin  VirtualKey = 0x5C
	Apps  VirtualKey = 0x5D
	Sleep VirtualKey = 0x5F

	Numpad0   VirtualKey = 0x60
	Numpad1   VirtualKey = 0x61
	Numpad2   VirtualKey = 0x62
	Numpad3   VirtualKey = 0x63
	Numpad4   VirtualKey = 0x64
	Numpad5   VirtualKey = 0x65
	Numpad6   VirtualKey = 0x66
	Numpad7   VirtualKey = 0x67
	Numpad8   VirtualKey = 0x68
	Numpad9   VirtualKey = 0x69
	Multiply  VirtualKey = 0x6A
	Add       VirtualKey = 0x6B
	Separator VirtualKey = 0x6C
	Subtract  VirtualKey = 0x6D
	Decimal   VirtualKey = 0x6E
	Divide    VirtualKey = 0x6F

	F1  VirtualKey = 0x70
	F2  VirtualKey = 0x71
	F3  VirtualKey = 0x72
	F4  VirtualKey = 0x73
	F5  VirtualKey = 0x74
	F6  VirtualKey = 0x75
	F7  VirtualKey = 0x76
	F8  VirtualKey = 0x77
	F9  VirtualKey = 0x78
	F10 VirtualKey = 0x79
	F11 VirtualKey = 0x7A
	F12 VirtualKey = 0x7B
	F13 VirtualKey = 0x7C
	F14 VirtualKey = 0x7D
	F15 VirtualKey = 0x7E
	F16 VirtualKey = 0x7F
	F17 VirtualKey = 0x80
	F18 VirtualKey = 0x81
	F19 VirtualKey = 0x82
	F20 VirtualKey = 0x83
	F21 VirtualKey = 0x84
	F22 VirtualKey = 0x85
	F23 VirtualKey = 0x86
	F24 VirtualKey = 0x87

	Numlock VirtualKey = 0x90
	Scroll  VirtualKey = 0x91

	LShift   VirtualKey = 0xA0
	RShift   VirtualKey = 0xA1
	LControl VirtualKey = 0xA2
	RControl VirtualKey = 0xA3
	LMenu    VirtualKey = 0xA4
	RMenu    VirtualKey = 0xA5

	BrowserBack      VirtualKey = 0xA6
	BrowserForward   VirtualKey = 0xA7
	BrowserRefresh   VirtualKey = 0xA8
	BrowserStop      VirtualKey = 0xA9
	BrowserSearch    VirtualKey = 0xAA
	BrowserFavorites VirtualKey = 0xAB
	BrowserHome      VirtualKey = 0xAC

	VolumeMute     VirtualKey = 0xAD
	VolumeDown     VirtualKey = 0xAE
	VolumeUp       VirtualKey = 0xAF
	MediaNextTrack VirtualKey = 0xB0
	MediaPrevTrack VirtualKey = 0xB1
	MediaStop      VirtualKey = 0xB2
	MediaPlayPause VirtualKey = 0xB3

	Oem1      VirtualKey = 0xBA // ';:' on US layouts
	OemPlus   VirtualKey = 0xBB
	OemComma  VirtualKey = 0xBC
	OemMinus  VirtualKey = 0xBD
	OemPeriod VirtualKey = 0xBE
	Oem2      VirtualKey = 0xBF // '/?' on US layouts
	Oem3      VirtualKey = 0xC0 // '`~' on US layouts
	Oem4      VirtualKey = 0xDB // '[{' on US layouts
	Oem5      VirtualKey = 0xDC // '\|' on US layouts
	Oem6      VirtualKey = 0xDD // ']}' on US layouts
	Oem7      VirtualKey = 0xDE // ''"' on US layouts
)

var vkNames = map[string]VirtualKey{
	"BACK":              Back,
	"TAB":               Tab,
	"CLEAR":             Clear,
	"RETURN":            Return,
	"SHIFT":             Shift,
	"CONTROL":           Control,
	"MENU":              Menu,
	"PAUSE":             Pause,
	"CAPITAL":           Capital,
	"ESCAPE":            Escape,
	"SPACE":             Space,
	"PRIOR":             Prior,
	"NEXT":              Next,
	"END":               End,
	"HOME":              Home,
	"LEFT":              Left,
	"UP":                Up,
	"RIGHT":             Right,
	"DOWN":              Down,
	"SELECT":            Select,
	"PRINT":             Print,
	"EXECUTE":           Execute,
	"SNAPSHOT":          Snapshot,
	"INSERT":            Insert,
	"DELETE":            Delete,
	"HELP":              Help,
	"LWIN":              LWin,
	"RWIN":              RWin,
	"APPS":              Apps,
	"SLEEP":             Sleep,
	"NUMPAD0":           Numpad0,
	"NUMPAD1":           Numpad1,
	"NUMPAD2":           Numpad2,
	"NUMPAD3":           Numpad3,
	"NUMPAD4":           Numpad4,
	"NUMPAD5":           Numpad5,
	"NUMPAD6":           Numpad6,
	"NUMPAD7":           Numpad7,
	"NUMPAD8":           Numpad8,
	"NUMPAD9":           Numpad9,
	"MULTIPLY":          Multiply,
	"ADD":               Add,
	"SEPARATOR":         Separator,
	"SUBTRACT":          Subtract,
	"DECIMAL":           Decimal,
	"DIVIDE":            Divide,
	"F1":                F1,
	"F2":                F2,
	"F3":                F3,
	"F4":                F4,
	"F5":                F5,
	"F6":                F6,
	"F7":                F7,
	"F8":                F8,
	"F9":                F9,
	"F10":               F10,
	"F11":               F11,
	"F12":               F12,
	"F13":               F13,
	"F14":               F14,
	"F15":               F15,
	"F16":               F16,
	"F17":               F17,
	"F18":               F18,
	"F19":               F19,
	"F20":               F20,
	"F21":               F21,
	"F22":               F22,
	"F23":               F23,
	"F24":               F24,
	"NUMLOCK":           Numlock,
	"SCROLL":            Scroll,
	"LSHIFT":            LShift,
	"RSHIFT":            RShift,
	"LCONTROL":          LControl,
	"RCONTROL":          RControl,
	"LMENU":             LMenu,
	"RMENU":             RMenu,
	"BROWSER_BACK":      BrowserBack,
	"BROWSER_FORWARD":   BrowserForward,
	"BROWSER_REFRESH":   BrowserRefresh,
	"BROWSER_STOP":      BrowserStop,
	"BROWSER_SEARCH":    BrowserSearch,
	"BROWSER_FAVORITES": BrowserFavorites,
	"BROWSER_HOME":      BrowserHome,
	"VOLUME_MUTE":       VolumeMute,
	"VOLUME_DOWN":       VolumeDown,
	"VOLUME_UP":         VolumeUp,
	"MEDIA_NEXT_TRACK":  MediaNextTrack,
	"MEDIA_PREV_TRACK":  MediaPrevTrack,
	"MEDIA_STOP":        MediaStop,
	"MEDIA_PLAY_PAUSE":  MediaPlayPause,
	"OEM_1":             Oem1,
	"OEM_PLUS":          OemPlus,
	"OEM_COMMA":         OemComma,
	"OEM_MINUS":         OemMinus,
	"OEM_PERIOD":        OemPeriod,
	"OEM_2":             Oem2,
	"OEM_3":             Oem3,
	"OEM_4":             Oem4,
	"OEM_5":             Oem5,
	"OEM_6":             Oem6,
	"OEM_7":             Oem7,
}

// namesByVK is the reverse of vkNames, built once for String.
var namesByVK = func() map[VirtualKey]string {
	m := make(map[VirtualKey]string, len(vkNames))
	for name, vk := range vkNames {
		m[vk] = name
	}
	return m
}()

// ParseVirtualKey resolves a key name to its virtual-key code. Accepted
// forms, case-insensitive:
//
//   - a single letter or digit ("A", "7")
//   - a hex keycode ("0x41")
//   - a Windows key name with or without the VK_ prefix ("F5", "VK_RETURN")
func ParseVirtualKey(name string) (VirtualKey, error) {
	val := strings.ToUpper(strings.TrimSpace(name))

	if len(val) == 1 {
		if vk, err := VirtualKeyFromChar(rune(val[0])); err == nil {
			return vk, nil
		}
	}

	if strings.HasPrefix(val, "0X") && len(val) <= 6 {
		code, err := strconv.ParseUint(val[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrUnknownKeyName, name)
		}
		return VirtualKey(code), nil
	}

	if vk, ok := vkNames[strings.TrimPrefix(val, "VK_")]; ok {
		return vk, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKeyName, name)
}

// VirtualKeyFromChar converts a letter or digit to its virtual-key code.
// Letters and digits map directly to their ASCII uppercase values.
func VirtualKeyFromChar(ch rune) (VirtualKey, error) {
	switch {
	case ch >= 'a' && ch <= 'z':
		return VirtualKey(ch - 'a' + 'A'), nil
	case ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9':
		return VirtualKey(ch), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKeyName, string(ch))
}

func (vk VirtualKey) String() string {
	if vk >= A && vk <= Z || vk >= Digit0 && vk <= Digit9 {
		return string(rune(vk))
	}
	if name, ok := namesByVK[vk]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint16(vk))
}
