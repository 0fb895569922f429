package tinge

// vtProbe caches the one-time console probe so repeated renders do not
// repeat the system call.
var vtProbe CachedBool

// osSupport reports whether the OS can display ANSI escape sequences. It
// backs ConditionDefault. On Windows the first call attempts to enable
// virtual terminal processing on the console and the result is cached;
// everywhere else it is always true.
func osSupport() bool {
	return vtProbe.GetOrInit(enableVirtualTerminal)
}
