package wcwidth

import "sync"

var (
	overrideMutex sync.RWMutex
	override      = map[rune]int{}
)

func getOverride(r rune) (int, bool) {
	overrideMutex.RLock()
	defer overrideMutex.RUnlock()
	w, ok := override[r]
	return w, ok
}

// Override overrides the column width of a rune to be a specific non-negative
// value. If w < 0, it removes the override.
func Override(r rune, w int) {
	if w < 0 {
		Unoverride(r)
		return
	}
	overrideMutex.Lock()
	defer overrideMutex.Unlock()
	override[r] = w
}

// Unoverride removes the column width override of a rune.
func Unoverride(r rune) {
	overrideMutex.Lock()
	defer overrideMutex.Unlock()
	delete(override, r)
}

// Overrides returns a snapshot of all the current overrides.
func Overrides() map[rune]int {
	overrideMutex.RLock()
	defer overrideMutex.RUnlock()
	m := make(map[rune]int, len(override))
	for r, w := range override {
		m[r] = w
	}
	return m
}

// ApplyOverrides installs all the overrides in m and returns a function that
// restores the overrides of the affected runes to their previous state.
func ApplyOverrides(m map[rune]int) (restore func()) {
	overrideMutex.Lock()
	defer overrideMutex.Unlock()
	saved := make(map[rune]int, len(m))
	for r, w := range m {
		if old, ok := override[r]; ok {
			saved[r] = old
		} else {
			saved[r] = -1
		}
		if w < 0 {
			delete(override, r)
		} else {
			override[r] = w
		}
	}
	return func() {
		overrideMutex.Lock()
		defer overrideMutex.Unlock()
		for r, w := range saved {
			if w < 0 {
				delete(override, r)
			} else {
				override[r] = w
			}
		}
	}
}
