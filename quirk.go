package tinge

import "strconv"

// Quirk is a rendering-behavior flag. Unlike an Attribute, a quirk never
// maps to an SGR code; it changes how the rendering algorithm treats the
// value it decorates.
type Quirk uint8

const (
	// QuirkMask omits the value entirely, not just its styling, when
	// styling is disabled.
	QuirkMask Quirk = iota

	// QuirkWrap rewrites reset sequences embedded in the value's own text
	// so that they restore this style instead of the terminal default.
	QuirkWrap

	// QuirkLinger suppresses the reset suffix, letting the style persist
	// into subsequently printed content.
	QuirkLinger

	// QuirkClear forces a reset suffix.
	//
	// Deprecated: renamed to QuirkResetting; the two behave identically.
	QuirkClear

	// QuirkResetting forces the reset suffix even when the style is empty
	// or lingering. Overrides QuirkLinger.
	QuirkResetting

	// QuirkBright brightens the foreground color at render time without
	// changing the stored color.
	QuirkBright

	// QuirkOnBright brightens the background color at render time without
	// changing the stored color.
	QuirkOnBright
)

// String returns the quirk's name.
func (q Quirk) String() string {
	switch q {
	case QuirkMask:
		return "mask"
	case QuirkWrap:
		return "wrap"
	case QuirkLinger:
		return "linger"
	case QuirkClear:
		return "clear"
	case QuirkResetting:
		return "resetting"
	case QuirkBright:
		return "bright"
	case QuirkOnBright:
		return "on-bright"
	}
	return "quirk(" + strconv.Itoa(int(q)) + ")"
}

// Style returns a Style with only the quirk q enabled.
func (q Quirk) Style() Style {
	return Style{}.Quirk(q)
}
