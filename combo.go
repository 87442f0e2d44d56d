package winhotkey

import (
	"fmt"
	"strings"

	"github.com/0xJWLabs/win-hotkey/keys"
)

// KeyCombination describes one hotkey: a trigger key, the modifiers that
// must be combined with it, and optional extra keys that must be physically
// held when the trigger fires. Extra keys refine the runtime condition only;
// they are not part of the OS-level registration and do not participate in
// combination identity.
type KeyCombination struct {
	Key   keys.VirtualKey
	Mods  []keys.Modifier
	Extra []keys.VirtualKey
}

// modBits returns the combined modifier flags.
func (c KeyCombination) modBits() keys.Modifier {
	return keys.Combine(c.Mods)
}

// equivalent reports whether two combinations collide at the OS level.
// NoRepeat is masked out: Windows ignores it for registration identity.
func (c KeyCombination) equivalent(other KeyCombination) bool {
	return c.Key == other.Key &&
		c.modBits()&^keys.ModNoRepeat == other.modBits()&^keys.ModNoRepeat
}

func (c KeyCombination) validate() error {
	if c.Key == 0 {
		return fmt.Errorf("%w: zero trigger key", ErrInvalidCombination)
	}
	return nil
}

func (c KeyCombination) String() string {
	parts := make([]string, 0, len(c.Mods)+1)
	if bits := c.modBits() &^ keys.ModNoRepeat; bits != 0 {
		parts = append(parts, bits.String())
	}
	parts = append(parts, c.Key.String())
	return strings.Join(parts, "+")
}

// ParseCombination parses a combination from a '+'-separated string such as
// "CTRL+ALT+V". The last element is the trigger key; everything before it
// must be a modifier name. Parsing is case-insensitive.
func ParseCombination(s string) (KeyCombination, error) {
	parts := strings.Split(s, "+")
	if len(parts) == 0 || strings.TrimSpace(parts[len(parts)-1]) == "" {
		return KeyCombination{}, fmt.Errorf("%w: empty combination %q", ErrInvalidCombination, s)
	}

	key, err := keys.ParseVirtualKey(parts[len(parts)-1])
	if err != nil {
		return KeyCombination{}, err
	}

	var mods []keys.Modifier
	for _, part := range parts[:len(parts)-1] {
		mod, err := keys.ParseModifier(part)
		if err != nil {
			return KeyCombination{}, err
		}
		mods = append(mods, mod)
	}
	return KeyCombination{Key: key, Mods: mods}, nil
}
