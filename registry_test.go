package winhotkey

import (
	"errors"
	"testing"

	"github.com/0xJWLabs/win-hotkey/keys"
)

func TestRegistryAllocateSequential(t *testing.T) {
	r := newRegistry()
	for i := 0; i < 5; i++ {
		combo := KeyCombination{Key: keys.A + keys.VirtualKey(i)}
		id, err := r.allocateID(combo)
		if err != nil {
			t.Fatalf("allocateID #%d: %v", i, err)
		}
		if id != HotkeyID(i) {
			t.Fatalf("allocateID #%d = %d, want %d", i, id, i)
		}
		r.insert(id, combo, func() {})
	}
	if r.size() != 5 {
		t.Fatalf("size = %d, want 5", r.size())
	}
}

func TestRegistryDuplicateDetection(t *testing.T) {
	r := newRegistry()
	combo := KeyCombination{Key: keys.A, Mods: []keys.Modifier{keys.ModAlt}}
	id, err := r.allocateID(combo)
	if err != nil {
		t.Fatalf("allocateID: %v", err)
	}
	r.insert(id, combo, func() {})

	dup := KeyCombination{Key: keys.A, Mods: []keys.Modifier{keys.ModAlt, keys.ModNoRepeat}}
	if _, err := r.allocateID(dup); !errors.Is(err, ErrDuplicateCombination) {
		t.Fatalf("duplicate: got %v, want ErrDuplicateCombination", err)
	}
	if !r.contains(dup) {
		t.Fatal("contains should match the NoRepeat variant")
	}
}

func TestRegistryIDReuseAfterRemove(t *testing.T) {
	r := newRegistry()
	combo := KeyCombination{Key: keys.A}
	id, _ := r.allocateID(combo)
	r.insert(id, combo, func() {})
	if _, err := r.remove(id); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// Allocation stays monotonic rather than reusing the freed id right away.
	next, err := r.allocateID(combo)
	if err != nil {
		t.Fatalf("allocateID: %v", err)
	}
	if next != id+1 {
		t.Fatalf("allocateID after remove = %d, want %d", next, id+1)
	}
}

func TestRegistrySkipsTakenIDs(t *testing.T) {
	r := newRegistry()
	taken := KeyCombination{Key: keys.B}
	r.insert(0, taken, func() {})
	r.insert(1, KeyCombination{Key: keys.C}, func() {})

	id, err := r.allocateID(KeyCombination{Key: keys.D})
	if err != nil {
		t.Fatalf("allocateID: %v", err)
	}
	if id != 2 {
		t.Fatalf("allocateID = %d, want 2 (ids 0 and 1 are taken)", id)
	}
}

func TestRegistryLookupAndRemove(t *testing.T) {
	r := newRegistry()
	combo := KeyCombination{Key: keys.K, Mods: []keys.Modifier{keys.ModWin}}
	r.insert(7, combo, func() {})

	e, err := r.lookup(7)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !e.combo.equivalent(combo) {
		t.Fatalf("lookup returned wrong entry: %v", e.combo)
	}

	if _, err := r.lookup(8); !errors.Is(err, ErrUnknownID) {
		t.Fatalf("lookup(8): got %v, want ErrUnknownID", err)
	}
	if _, err := r.remove(8); !errors.Is(err, ErrUnknownID) {
		t.Fatalf("remove(8): got %v, want ErrUnknownID", err)
	}
	if _, err := r.remove(7); err != nil {
		t.Fatalf("remove(7): %v", err)
	}
	if r.size() != 0 {
		t.Fatalf("size = %d after remove, want 0", r.size())
	}
}

func TestRegistryIDs(t *testing.T) {
	r := newRegistry()
	for i := 0; i < 3; i++ {
		r.insert(HotkeyID(i*10), KeyCombination{Key: keys.A + keys.VirtualKey(i)}, func() {})
	}
	ids := r.ids()
	if len(ids) != 3 {
		t.Fatalf("ids() returned %d entries, want 3", len(ids))
	}
	seen := make(map[HotkeyID]bool)
	for _, id := range ids {
		seen[id] = true
	}
	for _, want := range []HotkeyID{0, 10, 20} {
		if !seen[want] {
			t.Fatalf("ids() missing %d", want)
		}
	}
}
