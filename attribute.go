package tinge

import "strconv"

// Attribute is a text attribute such as bold or underline.
//
// Attributes are idempotent toggles: applying one more than once has no more
// effect than applying it once. Whether an attribute has a visible effect
// depends on the terminal; bold, dim, italic, underline, and strike are
// widely supported, while blink rarely is.
type Attribute uint8

const (
	Bold Attribute = iota
	Dim
	Italic
	Underline
	Blink
	RapidBlink
	Invert
	Conceal
	Strike
)

// sgr returns the SGR parameter code for the attribute.
func (a Attribute) sgr() int {
	// Declaration order matches the SGR numbering, offset by one.
	return int(a) + 1
}

// String returns the attribute's name.
func (a Attribute) String() string {
	switch a {
	case Bold:
		return "bold"
	case Dim:
		return "dim"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Blink:
		return "blink"
	case RapidBlink:
		return "rapid-blink"
	case Invert:
		return "invert"
	case Conceal:
		return "conceal"
	case Strike:
		return "strike"
	}
	return "attribute(" + strconv.Itoa(int(a)) + ")"
}

// Style returns a Style with only the attribute a enabled.
func (a Attribute) Style() Style {
	return Style{}.Attr(a)
}
