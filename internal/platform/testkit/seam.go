package testkit

import "testing"

// Swap replaces a package level seam (a func var, a reader, a registry) until t finishes
// tests that swap the same seam must not run in parallel
func Swap[T any](t testing.TB, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}
