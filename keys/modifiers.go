package keys

import (
	"fmt"
	"strings"
)

// Modifier is a hotkey modifier flag. Multiple modifiers combine with
// bitwise OR. The values match the fsModifiers argument of RegisterHotKey.
//
// See: https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-registerhotkey
type Modifier uint32

const (
	ModAlt     Modifier = 0x0001
	ModControl Modifier = 0x0002
	ModShift   Modifier = 0x0004
	ModWin     Modifier = 0x0008

	// ModNoRepeat suppresses automatic retriggering while the combination
	// is held down. It is a registration option, not a physical key, and
	// does not participate in combination identity.
	ModNoRepeat Modifier = 0x4000
)

// ParseModifier resolves a modifier name, case-insensitive. Accepted names:
// ALT, CTRL/CONTROL, SHIFT, WIN/WINDOWS/SUPER, NOREPEAT/NO_REPEAT.
func ParseModifier(name string) (Modifier, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ALT":
		return ModAlt, nil
	case "CTRL", "CONTROL":
		return ModControl, nil
	case "SHIFT":
		return ModShift, nil
	case "WIN", "WINDOWS", "SUPER":
		return ModWin, nil
	case "NOREPEAT", "NO_REPEAT":
		return ModNoRepeat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKeyName, name)
}

// Combine folds a modifier list into a single flag set.
func Combine(mods []Modifier) Modifier {
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return combined
}

// VirtualKey returns the virtual key whose physical press state corresponds
// to the modifier, for use in key-state sampling. ModNoRepeat has no
// physical key and maps to zero.
func (m Modifier) VirtualKey() VirtualKey {
	switch m {
	case ModAlt:
		return Menu
	case ModControl:
		return Control
	case ModShift:
		return Shift
	case ModWin:
		return LWin
	}
	return 0
}

func (m Modifier) String() string {
	names := make([]string, 0, 4)
	if m&ModControl != 0 {
		names = append(names, "CTRL")
	}
	if m&ModAlt != 0 {
		names = append(names, "ALT")
	}
	if m&ModShift != 0 {
		names = append(names, "SHIFT")
	}
	if m&ModWin != 0 {
		names = append(names, "WIN")
	}
	if m&ModNoRepeat != 0 {
		names = append(names, "NOREPEAT")
	}
	if len(names) == 0 {
		return "NONE"
	}
	return strings.Join(names, "+")
}
