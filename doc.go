// Package tinge styles terminal output with ANSI SGR escape sequences.
//
// A [Style] describes how a value should look: an optional foreground and
// background [Color], a set of [Attribute] toggles such as bold or underline,
// and a set of [Quirk] flags that change how rendering behaves without
// emitting codes of their own. Styles are immutable values; every builder
// method returns a new Style.
//
// [Paint] binds a value to a Style for formatting:
//
//	fmt.Println(tinge.Paint("error").Red().Bold())
//	fmt.Printf("%d items\n", tinge.Paint(42).Yellow())
//
// The escape prefix is written before the value's own formatting and a reset
// suffix after it. A zero Style emits no escape sequences at all, so wrapping
// a value in an unstyled Paint is output-identical to printing it directly.
//
// Styling is gated twice: by the process-wide condition installed with
// [Enable], [Disable], or [Whenever], and by the style's own condition set
// with the Whenever builder. Both must hold for codes to be emitted. The
// process-wide default probes OS support, which on Windows enables virtual
// terminal processing on first use.
package tinge
