package tinge

import (
	"fmt"
	"io"
	"strings"
)

// Painted binds a value to a Style for the duration of a formatting call.
// It is typically created as a temporary:
//
//	fmt.Printf("%s\n", tinge.Paint("ready").Green().Bold())
//
// Painted implements fmt.Formatter, so the value formats under any verb it
// supports itself, with the style's escape prefix and suffix around it.
type Painted[T any] struct {
	// Value is the value to be styled.
	Value T
	// Style is the style to apply.
	Style Style
}

// Paint wraps value with an empty style. Chain builder methods to style it.
func Paint[T any](value T) Painted[T] {
	return Painted[T]{Value: value}
}

// Styled wraps value with style, replacing any previous style wholesale.
func Styled[T any](value T, style Style) Painted[T] {
	return Painted[T]{Value: value, Style: style}
}

func (p Painted[T]) apply(op operation) Painted[T] {
	p.Style = p.Style.apply(op)
	return p
}

// Format implements fmt.Formatter. Per call it decides whether to emit
// escape codes at all, and how quirks alter the output:
//
//	enabled, wrap      -> prefix, value with embedded resets respliced, suffix
//	enabled            -> prefix, value, suffix
//	disabled, mask     -> nothing
//	disabled, wrap     -> value with embedded escape sequences stripped
//	disabled           -> value only
//
// Styling is enabled when the global condition, the style's condition, and
// the OS capability probe all hold. Formatting failures from the value's
// own formatting propagate unchanged through the fmt machinery.
func (p Painted[T]) Format(f fmt.State, verb rune) {
	spec := fmt.FormatString(f, verb)
	enabled := Enabled() && p.Style.Enabled() && osSupport()
	switch {
	case enabled && p.Style.quirks.Contains(QuirkWrap):
		p.formatWrapped(f, spec)
	case enabled:
		writeString(f, p.Style.Prefix())
		fmt.Fprintf(f, spec, p.Value)
		writeString(f, p.Style.Suffix())
	case p.Style.quirks.Contains(QuirkMask):
		// Masking suppresses the whole value while styling is disabled.
	case p.Style.quirks.Contains(QuirkWrap):
		// Disabling must disable all color, including styling embedded in
		// the wrapped value's own text.
		inner := fmt.Sprintf(spec, p.Value)
		if strings.ContainsRune(inner, escape) {
			writeString(f, Strip(inner))
		} else {
			writeString(f, inner)
		}
	default:
		fmt.Fprintf(f, spec, p.Value)
	}
}

// formatWrapped renders the value with every reset sequence embedded in its
// text replaced by a reset followed by this style's own prefix, so nested
// styled text hands control back to the outer style instead of the terminal
// default.
func (p Painted[T]) formatWrapped(f fmt.State, spec string) {
	inner := fmt.Sprintf(spec, p.Value)
	prefix := p.Style.Prefix()

	// Common case: nothing nested, no resplicing needed.
	if !strings.ContainsRune(inner, escape) {
		writeString(f, prefix)
		writeString(f, inner)
		writeString(f, p.Style.Suffix())
		return
	}

	writeString(f, prefix)
	writeString(f, strings.ReplaceAll(inner, reset, reset+prefix))
	writeString(f, p.Style.Suffix())
}

// String implements fmt.Stringer via the Format decision table.
func (p Painted[T]) String() string {
	return fmt.Sprintf("%v", p)
}

// writeString writes s to f. Write errors are not handled here: f is the
// fmt machinery's buffer, and sink failures surface from Fprintf itself.
func writeString(f fmt.State, s string) {
	_, _ = io.WriteString(f, s)
}
