// Package testutil provides test helpers for asserting on ANSI output.
package testutil

import (
	"strings"
	"testing"
)

// Visible returns s with escape characters replaced by the literal `\x1b`
// so failure messages stay readable in test output.
func Visible(s string) string {
	return strings.ReplaceAll(s, "\x1b", `\x1b`)
}

// AssertOutput fails the test when got differs from want, printing both with
// escape characters made visible.
func AssertOutput(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("got %s, want %s", Visible(got), Visible(want))
	}
}
