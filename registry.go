package winhotkey

import "fmt"

// entry is one live registration. Entries are owned exclusively by the
// registry; only the owner thread ever invokes the callback.
type entry struct {
	id       HotkeyID
	combo    KeyCombination
	callback func()
}

// registry maps hotkey ids to their entries. It is mutated exclusively by
// the owner thread and therefore carries no lock: the single-consumer
// command channel is the entire synchronization mechanism.
type registry struct {
	entries map[HotkeyID]*entry
	nextID  HotkeyID
}

func newRegistry() *registry {
	return &registry{entries: make(map[HotkeyID]*entry)}
}

// allocateID finds the next free id for the combination, failing without
// mutating state when an equivalent combination is already registered or
// the bounded id space is exhausted.
func (r *registry) allocateID(combo KeyCombination) (HotkeyID, error) {
	for _, e := range r.entries {
		if e.combo.equivalent(combo) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateCombination, combo)
		}
	}
	// Monotonic with wrap-around; scan past ids still in use.
	for attempts := uint32(0); attempts <= uint32(maxHotkeyID); attempts++ {
		id := r.nextID
		r.nextID++
		if r.nextID > maxHotkeyID {
			r.nextID = 0
		}
		if _, taken := r.entries[id]; !taken {
			return id, nil
		}
	}
	return 0, ErrIDSpaceExhausted
}

// insert records a registration. The id must be free; callers that accept
// caller-chosen ids check with lookup first.
func (r *registry) insert(id HotkeyID, combo KeyCombination, fn func()) {
	r.entries[id] = &entry{id: id, combo: combo, callback: fn}
}

func (r *registry) lookup(id HotkeyID) (*entry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	return e, nil
}

// remove deletes and returns the entry for id.
func (r *registry) remove(id HotkeyID) (*entry, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	delete(r.entries, id)
	return e, nil
}

// contains reports whether a combination equivalent to combo is registered.
func (r *registry) contains(combo KeyCombination) bool {
	for _, e := range r.entries {
		if e.combo.equivalent(combo) {
			return true
		}
	}
	return false
}

// ids returns every live id, used to unregister everything at shutdown.
func (r *registry) ids() []HotkeyID {
	out := make([]HotkeyID, 0, len(r.entries))
	for id := range r.entries {
		out = append(out, id)
	}
	return out
}

func (r *registry) size() int { return len(r.entries) }
