//go:build !windows

package tinge

// ANSI escape sequences are assumed to work everywhere but Windows.
func enableVirtualTerminal() bool {
	return true
}
