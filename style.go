package tinge

import (
	"strconv"
	"strings"
)

// reset is the universal SGR reset sequence.
const reset = "\x1b[0m"

// opKind tags the single dispatch point every builder method funnels into.
type opKind uint8

const (
	opFg opKind = iota
	opBg
	opAttr
	opQuirk
	opWhenever
)

// operation is one styling mutation: set a color, add an attribute or
// quirk, or set the condition. Routing all builders through one apply gives
// every builder identical composability semantics: colors and conditions
// are last-write-wins, attributes and quirks are set union.
type operation struct {
	kind  opKind
	color Color
	attr  Attribute
	quirk Quirk
	cond  Condition
}

// Style is a complete, immutable description of how to decorate one
// rendering: optional foreground and background colors, attributes, quirks,
// and an optional enable condition.
//
// The zero Style is the empty style: it renders no escape sequences at all.
// Builder methods return new values; a Style is never mutated in place.
//
// Two styles are equivalent (see [Style.Equal]) when their foreground,
// background, and attributes match. Quirks and the condition affect how
// styling is rendered or suppressed, not what styling is requested, and are
// excluded from equivalence.
type Style struct {
	fg, bg       Color
	hasFG, hasBG bool
	attrs        Set[Attribute]
	quirks       Set[Quirk]
	cond         Condition
}

// NewStyle returns the empty style. Identical to the zero value; provided
// for call-site readability in builder chains.
func NewStyle() Style {
	return Style{}
}

func (s Style) apply(op operation) Style {
	switch op.kind {
	case opFg:
		s.fg, s.hasFG = op.color, true
	case opBg:
		s.bg, s.hasBG = op.color, true
	case opAttr:
		s.attrs = s.attrs.Insert(op.attr)
	case opQuirk:
		s.quirks = s.quirks.Insert(op.quirk)
	case opWhenever:
		s.cond = op.cond
	}
	return s
}

// Fg returns s with the foreground set to color.
func (s Style) Fg(color Color) Style {
	return s.apply(operation{kind: opFg, color: color})
}

// Bg returns s with the background set to color.
func (s Style) Bg(color Color) Style {
	return s.apply(operation{kind: opBg, color: color})
}

// Attr returns s with the attribute a enabled.
func (s Style) Attr(a Attribute) Style {
	return s.apply(operation{kind: opAttr, attr: a})
}

// Quirk returns s with the quirk q enabled.
func (s Style) Quirk(q Quirk) Style {
	return s.apply(operation{kind: opQuirk, quirk: q})
}

// Whenever returns s gated on condition. The condition is evaluated every
// time a value painted with s is formatted; styling requires both it and
// the global condition to hold.
func (s Style) Whenever(condition Condition) Style {
	return s.apply(operation{kind: opWhenever, cond: condition})
}

// Foreground returns the foreground color and whether one is set.
func (s Style) Foreground() (Color, bool) {
	return s.fg, s.hasFG
}

// Background returns the background color and whether one is set.
func (s Style) Background() (Color, bool) {
	return s.bg, s.hasBG
}

// Attributes returns the enabled attributes in declaration order.
func (s Style) Attributes() []Attribute {
	return s.attrs.All()
}

// Quirks returns the enabled quirks in declaration order.
func (s Style) Quirks() []Quirk {
	return s.quirks.All()
}

// Enabled reports whether the style's own condition holds. A style with no
// condition is always enabled. For styling to take effect the global
// [Enabled] must also hold.
func (s Style) Enabled() bool {
	return s.cond.Eval()
}

// Equal reports whether s and other request the same styling: equal
// foreground, background, and attribute set. Quirks and conditions are
// ignored.
func (s Style) Equal(other Style) bool {
	return s.hasFG == other.hasFG &&
		s.hasBG == other.hasBG &&
		(!s.hasFG || s.fg == other.fg) &&
		(!s.hasBG || s.bg == other.bg) &&
		s.attrs == other.attrs
}

// isPlain reports whether the style requests no styling at all. Quirks and
// condition do not count, matching Equal.
func (s Style) isPlain() bool {
	return !s.hasFG && !s.hasBG && s.attrs.IsEmpty()
}

// Prefix returns the SGR prefix for the style: "ESC[" followed by the
// semicolon-joined codes for each attribute in declaration order, then the
// background color, then the foreground color, terminated by "m". The
// foreground deliberately comes last. A plain style returns the empty
// string; no stray "ESC[m" is ever produced.
func (s Style) Prefix() string {
	return string(s.appendPrefix(nil))
}

func (s Style) appendPrefix(b []byte) []byte {
	if s.isPlain() {
		return b
	}

	b = append(b, "\x1b["...)
	spliced := false
	splice := func() {
		if spliced {
			b = append(b, ';')
		}
		spliced = true
	}

	for _, a := range s.attrs.All() {
		splice()
		b = strconv.AppendInt(b, int64(a.sgr()), 10)
	}

	if s.hasBG {
		bg := s.bg
		if s.quirks.Contains(QuirkOnBright) {
			bg = bg.ToBright()
		}
		splice()
		b = bg.appendSGR(b, true)
	}

	if s.hasFG {
		fg := s.fg
		if s.quirks.Contains(QuirkBright) {
			fg = fg.ToBright()
		}
		splice()
		b = fg.appendSGR(b, false)
	}

	return append(b, 'm')
}

// Suffix returns the SGR suffix for the style: the reset sequence, or the
// empty string when the style is plain or lingers. QuirkResetting (and its
// deprecated alias QuirkClear) forces the reset and overrides QuirkLinger.
func (s Style) Suffix() string {
	return string(s.appendSuffix(nil))
}

func (s Style) appendSuffix(b []byte) []byte {
	if !s.quirks.Contains(QuirkResetting) && !s.quirks.Contains(QuirkClear) {
		if s.quirks.Contains(QuirkLinger) || s.isPlain() {
			return b
		}
	}
	return append(b, reset...)
}

// String returns a readable description of the style, for debugging and for
// the theme listing in cmd/tinge.
func (s Style) String() string {
	var parts []string
	for _, a := range s.attrs.All() {
		parts = append(parts, a.String())
	}
	if s.hasFG {
		parts = append(parts, s.fg.String())
	}
	if s.hasBG {
		parts = append(parts, "on "+s.bg.String())
	}
	for _, q := range s.quirks.All() {
		parts = append(parts, "+"+q.String())
	}
	if s.cond.isSet() {
		parts = append(parts, "when "+s.cond.String())
	}
	if len(parts) == 0 {
		return "plain"
	}
	return strings.Join(parts, " ")
}
