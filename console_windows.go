//go:build windows

package tinge

import (
	"os"

	"golang.org/x/sys/windows"
)

// enableVirtualTerminal switches the stdout console into VT processing mode
// so that SGR sequences are interpreted rather than printed. Returns false
// when stdout is not a console or the mode change is refused.
func enableVirtualTerminal() bool {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	return windows.SetConsoleMode(handle, mode) == nil
}
