package winhotkey

import (
	"errors"
	"testing"

	"github.com/0xJWLabs/win-hotkey/keys"
)

func TestParseCombination(t *testing.T) {
	combo, err := ParseCombination("CTRL+ALT+V")
	if err != nil {
		t.Fatalf("ParseCombination: %v", err)
	}
	if combo.Key != keys.V {
		t.Errorf("Key = %v, want V", combo.Key)
	}
	if bits := combo.modBits(); bits != keys.ModControl|keys.ModAlt {
		t.Errorf("modifiers = %v, want CTRL+ALT", bits)
	}
}

func TestParseCombinationBareKey(t *testing.T) {
	combo, err := ParseCombination("F9")
	if err != nil {
		t.Fatalf("ParseCombination: %v", err)
	}
	if combo.Key != keys.F9 || len(combo.Mods) != 0 {
		t.Errorf("got %+v, want bare F9", combo)
	}
}

func TestParseCombinationErrors(t *testing.T) {
	if _, err := ParseCombination(""); !errors.Is(err, ErrInvalidCombination) {
		t.Errorf("empty string: got %v, want ErrInvalidCombination", err)
	}
	if _, err := ParseCombination("CTRL+"); !errors.Is(err, ErrInvalidCombination) {
		t.Errorf("trailing separator: got %v, want ErrInvalidCombination", err)
	}
	if _, err := ParseCombination("CTRL+BANANA"); !errors.Is(err, keys.ErrUnknownKeyName) {
		t.Errorf("unknown key: got %v, want ErrUnknownKeyName", err)
	}
	if _, err := ParseCombination("BANANA+A"); !errors.Is(err, keys.ErrUnknownKeyName) {
		t.Errorf("unknown modifier: got %v, want ErrUnknownKeyName", err)
	}
}

func TestCombinationEquivalence(t *testing.T) {
	base := KeyCombination{Key: keys.A, Mods: []keys.Modifier{keys.ModAlt, keys.ModControl}}
	same := KeyCombination{Key: keys.A, Mods: []keys.Modifier{keys.ModControl, keys.ModAlt}}
	if !base.equivalent(same) {
		t.Error("modifier order should not affect identity")
	}

	noRepeat := KeyCombination{Key: keys.A, Mods: []keys.Modifier{keys.ModAlt, keys.ModControl, keys.ModNoRepeat}}
	if !base.equivalent(noRepeat) {
		t.Error("NoRepeat should not affect identity")
	}

	extra := base
	extra.Extra = []keys.VirtualKey{keys.Shift}
	if !base.equivalent(extra) {
		t.Error("extra keys should not affect identity")
	}

	otherKey := KeyCombination{Key: keys.B, Mods: base.Mods}
	if base.equivalent(otherKey) {
		t.Error("different trigger keys must not be equivalent")
	}
}

func TestCombinationString(t *testing.T) {
	combo := KeyCombination{Key: keys.V, Mods: []keys.Modifier{keys.ModControl, keys.ModAlt, keys.ModNoRepeat}}
	if got := combo.String(); got != "CTRL+ALT+V" {
		t.Errorf("String() = %q, want CTRL+ALT+V", got)
	}
	bare := KeyCombination{Key: keys.F5}
	if got := bare.String(); got != "F5" {
		t.Errorf("String() = %q, want F5", got)
	}
}

func TestCombinationValidate(t *testing.T) {
	if err := (KeyCombination{Key: keys.A}).validate(); err != nil {
		t.Errorf("valid combination rejected: %v", err)
	}
	if err := (KeyCombination{}).validate(); !errors.Is(err, ErrInvalidCombination) {
		t.Errorf("zero key: got %v, want ErrInvalidCombination", err)
	}
}
