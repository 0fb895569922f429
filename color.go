package tinge

import "strconv"

// colorForm distinguishes the representations a Color can take.
type colorForm uint8

const (
	formPrimary colorForm = iota // terminal default, code 39/49
	formNamed                    // one of the 8 base colors
	formBright                   // bright variant of a base color
	formFixed                    // 256-color palette index
	formRGB                      // 24-bit true color
)

// Color selects a terminal color. The same Color is usable as a foreground
// or a background; which selector digit it encodes under is decided only
// when a Style renders it.
//
// The zero value is Primary, the terminal's configured default color.
type Color struct {
	form colorForm
	// idx is the base color index (0-7) for named and bright colors, or
	// the palette index for fixed colors.
	idx     uint8
	r, g, b uint8
}

// The terminal's default color and the 8 base colors with their bright
// variants. Base colors carry SGR foreground codes 30-37, bright variants
// 90-97; background codes are each offset by 10.
var (
	Primary = Color{form: formPrimary}

	Black   = Color{form: formNamed, idx: 0}
	Red     = Color{form: formNamed, idx: 1}
	Green   = Color{form: formNamed, idx: 2}
	Yellow  = Color{form: formNamed, idx: 3}
	Blue    = Color{form: formNamed, idx: 4}
	Magenta = Color{form: formNamed, idx: 5}
	Cyan    = Color{form: formNamed, idx: 6}
	White   = Color{form: formNamed, idx: 7}

	BrightBlack   = Color{form: formBright, idx: 0}
	BrightRed     = Color{form: formBright, idx: 1}
	BrightGreen   = Color{form: formBright, idx: 2}
	BrightYellow  = Color{form: formBright, idx: 3}
	BrightBlue    = Color{form: formBright, idx: 4}
	BrightMagenta = Color{form: formBright, idx: 5}
	BrightCyan    = Color{form: formBright, idx: 6}
	BrightWhite   = Color{form: formBright, idx: 7}
)

// Fixed returns a color from the 256-color palette.
func Fixed(index uint8) Color {
	return Color{form: formFixed, idx: index}
}

// RGB returns a 24-bit true color as specified by ISO-8613-3.
func RGB(r, g, b uint8) Color {
	return Color{form: formRGB, r: r, g: g, b: b}
}

// ToBright returns the bright variant of a base color. Primary, fixed, RGB,
// and already-bright colors are returned unchanged.
func (c Color) ToBright() Color {
	if c.form == formNamed {
		c.form = formBright
	}
	return c
}

// fgBase returns the SGR foreground selector code for the color.
func (c Color) fgBase() int {
	switch c.form {
	case formNamed:
		return 30 + int(c.idx)
	case formBright:
		return 90 + int(c.idx)
	case formFixed, formRGB:
		return 38
	}
	return 39
}

// appendSGR appends the color's SGR parameters to b. Background colors use
// the foreground selector offset by 10.
func (c Color) appendSGR(b []byte, background bool) []byte {
	base := c.fgBase()
	if background {
		base += 10
	}
	b = strconv.AppendInt(b, int64(base), 10)
	switch c.form {
	case formFixed:
		b = append(b, ";5;"...)
		b = strconv.AppendInt(b, int64(c.idx), 10)
	case formRGB:
		b = append(b, ";2;"...)
		b = strconv.AppendInt(b, int64(c.r), 10)
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(c.g), 10)
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(c.b), 10)
	}
	return b
}

// String returns a readable name for the color.
func (c Color) String() string {
	switch c.form {
	case formNamed, formBright:
		names := [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
		if c.form == formBright {
			return "bright-" + names[c.idx]
		}
		return names[c.idx]
	case formFixed:
		return "fixed(" + strconv.Itoa(int(c.idx)) + ")"
	case formRGB:
		return "rgb(" + strconv.Itoa(int(c.r)) + "," + strconv.Itoa(int(c.g)) + "," + strconv.Itoa(int(c.b)) + ")"
	}
	return "primary"
}

// Foreground returns a Style with a foreground color of c.
func (c Color) Foreground() Style {
	return Style{}.Fg(c)
}

// Background returns a Style with a background color of c.
func (c Color) Background() Style {
	return Style{}.Bg(c)
}
