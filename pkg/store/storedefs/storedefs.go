// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// do not need to depend on the concrete implementation.
package storedefs

import (
	"errors"
	"fmt"
)

// ErrNoOverride is returned by Store.Override when there is no override for
// the rune.
var ErrNoOverride = errors.New("no such override")

// MaxWidth is the largest width that can be stored as an override.
const MaxWidth = 2

// InvalidWidthError is returned by Store.SetOverride when the width is out of
// range.
type InvalidWidthError struct {
	Rune  rune
	Width int
}

func (e *InvalidWidthError) Error() string {
	return fmt.Sprintf("invalid width %d for %U: must be between 0 and %d", e.Width, e.Rune, MaxWidth)
}

// Store is an interface satisfied by the persistent override database.
type Store interface {
	Override(r rune) (int, error)
	SetOverride(r rune, w int) error
	DelOverride(r rune) error
	Overrides() (map[rune]int, error)
}
