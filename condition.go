package tinge

import (
	"os"
	"runtime"
	"sync/atomic"

	"github.com/mattn/go-isatty"
)

// Condition decides whether styling should be applied.
//
// A condition can be installed globally via [Whenever] or locally on a style
// via the Whenever builder method. Any time a painted value is formatted,
// both conditions are checked, and only when both evaluate to true is
// styling actually applied. Conditions are evaluated on every format call
// and so are expected to be fast; all built-in detectors cache their first
// evaluation, and [Cached] bakes a one-time result into a condition.
type Condition struct {
	// name identifies a built-in condition for String; empty otherwise.
	name string
	fn   func() bool
}

// Built-in conditions.
var (
	// ConditionDefault evaluates to true if the OS supports ANSI escape
	// sequences. Outside of Windows this is always true. On Windows the
	// first evaluation tries to enable virtual terminal processing and
	// caches whether it succeeded.
	ConditionDefault = Condition{name: "DEFAULT", fn: osSupport}

	// ConditionAlways always evaluates to true.
	ConditionAlways = Condition{name: "ALWAYS", fn: func() bool { return true }}

	// ConditionNever always evaluates to false.
	ConditionNever = Condition{name: "NEVER", fn: func() bool { return false }}
)

// ConditionFunc wraps f as a dynamically checked condition. f is called each
// time the condition is evaluated.
func ConditionFunc(f func() bool) Condition {
	return Condition{fn: f}
}

// Cached returns ConditionAlways when value is true and ConditionNever
// otherwise. Use it to bake the result of an expensive check into a
// condition that never reevaluates:
//
//	tinge.Whenever(tinge.Cached(expensiveCheck()))
func Cached(value bool) Condition {
	if value {
		return ConditionAlways
	}
	return ConditionNever
}

// Eval evaluates the condition. The zero Condition evaluates to true.
func (c Condition) Eval() bool {
	if c.fn == nil {
		return true
	}
	return c.fn()
}

// isSet reports whether the condition carries a function, distinguishing a
// deliberately set condition from the zero value on a Style.
func (c Condition) isSet() bool {
	return c.fn != nil
}

// String names built-in conditions symbolically.
func (c Condition) String() string {
	if c.name != "" {
		return "Condition" + c.name
	}
	if c.fn == nil {
		return "Condition(unset)"
	}
	return "Condition(func)"
}

// CachedBool is a lazily initialized boolean, safe for concurrent first use.
// The zero value is uninitialized; the first GetOrInit call runs its
// function exactly once process-wide and every later call returns the
// published result.
type CachedBool struct {
	state atomic.Uint32
}

const (
	cachedUninit  uint32 = iota // zero value, not yet claimed
	cachedIniting               // a goroutine is computing the value
	cachedFalse
	cachedTrue
)

// GetOrInit returns the cached value, computing it with f on first use.
// Goroutines that lose the race to initialize spin-yield until the winner
// publishes, bounded by the cost of one evaluation of f.
func (c *CachedBool) GetOrInit(f func() bool) bool {
	if c.state.CompareAndSwap(cachedUninit, cachedIniting) {
		v := cachedFalse
		if f() {
			v = cachedTrue
		}
		c.state.Store(v)
		return v == cachedTrue
	}
	for {
		switch c.state.Load() {
		case cachedIniting:
			runtime.Gosched()
		case cachedTrue:
			return true
		default:
			return false
		}
	}
}

// TTY detectors. The cached variants evaluate once per process; the live
// variants dispatch an isatty check on every evaluation.
var (
	ConditionStdoutIsTTY     = Condition{name: "StdoutIsTTY", fn: stdoutIsTTY}
	ConditionStdoutIsTTYLive = Condition{name: "StdoutIsTTYLive", fn: stdoutIsTTYLive}
	ConditionStderrIsTTY     = Condition{name: "StderrIsTTY", fn: stderrIsTTY}
	ConditionStderrIsTTYLive = Condition{name: "StderrIsTTYLive", fn: stderrIsTTYLive}
	ConditionStdinIsTTY      = Condition{name: "StdinIsTTY", fn: stdinIsTTY}
	ConditionStdinIsTTYLive  = Condition{name: "StdinIsTTYLive", fn: stdinIsTTYLive}

	// ConditionTTY evaluates to true if both stdout and stderr are
	// terminals, cached after the first check.
	ConditionTTY     = Condition{name: "TTY", fn: stdouterrAreTTY}
	ConditionTTYLive = Condition{name: "TTYLive", fn: stdouterrAreTTYLive}
)

// Environment variable checkers, following the informal CLICOLOR and
// NO_COLOR conventions. A variable counts as "set" when present with any
// value other than "0".
var (
	// ConditionCLIColor evaluates to true if CLICOLOR_FORCE is set, or
	// CLICOLOR is set or absent. Cached after the first check.
	ConditionCLIColor     = Condition{name: "CLIColor", fn: clicolor}
	ConditionCLIColorLive = Condition{name: "CLIColorLive", fn: clicolorLive}

	// ConditionYesColor evaluates to true unless NO_COLOR is set.
	// Cached after the first check.
	ConditionYesColor     = Condition{name: "YesColor", fn: yesColor}
	ConditionYesColorLive = Condition{name: "YesColorLive", fn: yesColorLive}

	// ConditionTTYAndColor combines ConditionTTY, ConditionCLIColor, and
	// ConditionYesColor: style only when talking to terminals and no
	// environment variable opts out.
	ConditionTTYAndColor     = Condition{name: "TTYAndColor", fn: ttyAndColor}
	ConditionTTYAndColorLive = Condition{name: "TTYAndColorLive", fn: ttyAndColorLive}
)

// EnvSetOr reports whether the environment variable name is set to a value
// other than "0", returning fallback when it is absent.
func EnvSetOr(name string, fallback bool) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	return v != "0"
}

func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func stdoutIsTTYLive() bool { return isTTY(os.Stdout) }
func stderrIsTTYLive() bool { return isTTY(os.Stderr) }
func stdinIsTTYLive() bool  { return isTTY(os.Stdin) }

func stdouterrAreTTYLive() bool { return stdoutIsTTYLive() && stderrIsTTYLive() }

var (
	stdoutTTYCache    CachedBool
	stderrTTYCache    CachedBool
	stdinTTYCache     CachedBool
	stdouterrTTYCache CachedBool
	clicolorCache     CachedBool
	yesColorCache     CachedBool
	ttyAndColorCache  CachedBool
)

func stdoutIsTTY() bool     { return stdoutTTYCache.GetOrInit(stdoutIsTTYLive) }
func stderrIsTTY() bool     { return stderrTTYCache.GetOrInit(stderrIsTTYLive) }
func stdinIsTTY() bool      { return stdinTTYCache.GetOrInit(stdinIsTTYLive) }
func stdouterrAreTTY() bool { return stdouterrTTYCache.GetOrInit(stdouterrAreTTYLive) }

func clicolorLive() bool {
	return EnvSetOr("CLICOLOR_FORCE", false) || EnvSetOr("CLICOLOR", true)
}

func yesColorLive() bool {
	return !EnvSetOr("NO_COLOR", false)
}

func ttyAndColorLive() bool {
	return stdouterrAreTTY() && clicolor() && yesColor()
}

func clicolor() bool    { return clicolorCache.GetOrInit(clicolorLive) }
func yesColor() bool    { return yesColorCache.GetOrInit(yesColorLive) }
func ttyAndColor() bool { return ttyAndColorCache.GetOrInit(ttyAndColorLive) }
