// Package testutil contains common test utilities.
package testutil

// Cleanuper wraps the Cleanup method. It is a subset of [testing.TB], thus
// satisfied by [*testing.T] and [*testing.B].
type Cleanuper interface {
	Cleanup(func())
}

// Recover calls f, and returns the value passed to panic if f panics, or nil
// otherwise.
func Recover(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return nil
}
