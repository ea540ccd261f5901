// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"errors"
	"testing"

	"github.com/elves/wcwidth/pkg/store/storedefs"
	"github.com/google/go-cmp/cmp"
)

// TestOverrides tests the override functionality of a Store, which must be
// empty.
func TestOverrides(t *testing.T, store storedefs.Store) {
	t.Helper()

	if m, err := store.Overrides(); err != nil || len(m) != 0 {
		t.Errorf("Overrides() of empty store -> (%v, %v), want (empty, nil)", m, err)
	}
	if _, err := store.Override('x'); !errors.Is(err, storedefs.ErrNoOverride) {
		t.Errorf("Override('x') -> error %v, want %v", err, storedefs.ErrNoOverride)
	}

	for r, w := range map[rune]int{'❱': 2, 'x': 0, 0x10FFFF: 1} {
		if err := store.SetOverride(r, w); err != nil {
			t.Errorf("SetOverride(%U, %d) -> %v", r, w, err)
		}
	}
	if w, err := store.Override('❱'); w != 2 || err != nil {
		t.Errorf("Override('❱') -> (%d, %v), want (2, nil)", w, err)
	}

	// Overwriting
	if err := store.SetOverride('x', 1); err != nil {
		t.Errorf("SetOverride('x', 1) -> %v", err)
	}

	wantOverrides := map[rune]int{'❱': 2, 'x': 1, 0x10FFFF: 1}
	overrides, err := store.Overrides()
	if err != nil {
		t.Errorf("Overrides() -> error %v", err)
	}
	if diff := cmp.Diff(wantOverrides, overrides); diff != "" {
		t.Errorf("Overrides() (-want +got):\n%s", diff)
	}

	if err := store.DelOverride('x'); err != nil {
		t.Errorf("DelOverride('x') -> %v", err)
	}
	if err := store.DelOverride('y'); err != nil {
		t.Errorf("DelOverride('y') of absent override -> %v", err)
	}
	if _, err := store.Override('x'); !errors.Is(err, storedefs.ErrNoOverride) {
		t.Errorf("Override('x') after DelOverride -> error %v, want %v", err, storedefs.ErrNoOverride)
	}
}

// TestInvalidWidths tests that a Store rejects widths out of range.
func TestInvalidWidths(t *testing.T, store storedefs.Store) {
	t.Helper()

	for _, w := range []int{-1, storedefs.MaxWidth + 1} {
		err := store.SetOverride('x', w)
		var invalid *storedefs.InvalidWidthError
		if !errors.As(err, &invalid) {
			t.Errorf("SetOverride('x', %d) -> %v, want *InvalidWidthError", w, err)
		}
	}
	if _, err := store.Override('x'); !errors.Is(err, storedefs.ErrNoOverride) {
		t.Errorf("rejected SetOverride stored something")
	}
}
