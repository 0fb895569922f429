package tinge

import "fmt"

// Linked is a painted value with a target URL, rendered as an OSC 8
// terminal hyperlink around the styled text. Terminals without hyperlink
// support are expected to ignore the envelope and print the text as-is.
type Linked[T any] struct {
	painted Painted[T]
	url     string
}

// Link attaches a hyperlink target to the painted value. Apply styling
// before linking:
//
//	fmt.Println(tinge.Paint("our docs").Green().Link("https://example.com/docs"))
func (p Painted[T]) Link(url string) Linked[T] {
	return Linked[T]{painted: p, url: url}
}

// Format implements fmt.Formatter. The hyperlink envelope follows the same
// gating as styling: when rendering is disabled the inner painted value is
// formatted on its own, which in turn degrades per its quirks.
func (l Linked[T]) Format(f fmt.State, verb rune) {
	enabled := Enabled() && l.painted.Style.Enabled() && osSupport()
	if !enabled {
		l.painted.Format(f, verb)
		return
	}

	writeString(f, "\x1b]8;;")
	writeString(f, l.url)
	writeString(f, "\x1b\\")
	l.painted.Format(f, verb)
	writeString(f, "\x1b]8;;\x1b\\")
}

// String implements fmt.Stringer.
func (l Linked[T]) String() string {
	return fmt.Sprintf("%v", l)
}
