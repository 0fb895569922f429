package tinge

import "sync/atomic"

// globalCondition is the process-wide styling gate: a single atomic slot
// holding the installed Condition. A nil pointer stands for
// ConditionDefault so that the zero state needs no initializer. Stores use
// release ordering and loads acquire ordering, so a goroutine that observes
// an Enable or Disable (through any synchronizing event) also observes the
// condition it installed.
var globalCondition atomic.Pointer[Condition]

// Enable enables styling globally.
//
// Styling is enabled by default on ANSI-capable platforms, so Enable is
// normally only needed to re-enable styling after a Disable.
func Enable() {
	store(ConditionAlways)
}

// Disable disables styling globally. Painted values format as their plain
// underlying value, and masked values format as nothing.
func Disable() {
	store(ConditionNever)
}

// Whenever gates styling globally on condition, which is evaluated every
// time a painted value is formatted. Conditions should be fast; use
// [Cached] or the cached built-in detectors when the check is expensive.
func Whenever(condition Condition) {
	store(condition)
}

// Enabled reports whether styling is currently enabled globally. Every
// render additionally requires the style's own condition to hold.
func Enabled() bool {
	if c := globalCondition.Load(); c != nil {
		return c.Eval()
	}
	return ConditionDefault.Eval()
}

func store(condition Condition) {
	globalCondition.Store(&condition)
}
