package tinge

// The chainable builder surface: one method per color, attribute, and quirk
// on Style, Color, and Painted. Every method is a thin wrapper over the
// same apply dispatch, so Paint(v).Red().Bold(), NewStyle().Red().Bold(),
// and Red.Bold() all produce the same final Style. The original property
// tables live in style.go (apply), color.go, and attribute.go/quirk.go;
// this file only spells out the names.

// Style builders.

// Primary sets the foreground to the terminal default color.
func (s Style) Primary() Style { return s.apply(operation{kind: opFg, color: Primary}) }

// Black sets the foreground to Black.
func (s Style) Black() Style { return s.apply(operation{kind: opFg, color: Black}) }

// Red sets the foreground to Red.
func (s Style) Red() Style { return s.apply(operation{kind: opFg, color: Red}) }

// Green sets the foreground to Green.
func (s Style) Green() Style { return s.apply(operation{kind: opFg, color: Green}) }

// Yellow sets the foreground to Yellow.
func (s Style) Yellow() Style { return s.apply(operation{kind: opFg, color: Yellow}) }

// Blue sets the foreground to Blue.
func (s Style) Blue() Style { return s.apply(operation{kind: opFg, color: Blue}) }

// Magenta sets the foreground to Magenta.
func (s Style) Magenta() Style { return s.apply(operation{kind: opFg, color: Magenta}) }

// Cyan sets the foreground to Cyan.
func (s Style) Cyan() Style { return s.apply(operation{kind: opFg, color: Cyan}) }

// White sets the foreground to White.
func (s Style) White() Style { return s.apply(operation{kind: opFg, color: White}) }

// BrightBlack sets the foreground to BrightBlack.
func (s Style) BrightBlack() Style { return s.apply(operation{kind: opFg, color: BrightBlack}) }

// BrightRed sets the foreground to BrightRed.
func (s Style) BrightRed() Style { return s.apply(operation{kind: opFg, color: BrightRed}) }

// BrightGreen sets the foreground to BrightGreen.
func (s Style) BrightGreen() Style { return s.apply(operation{kind: opFg, color: BrightGreen}) }

// BrightYellow sets the foreground to BrightYellow.
func (s Style) BrightYellow() Style { return s.apply(operation{kind: opFg, color: BrightYellow}) }

// BrightBlue sets the foreground to BrightBlue.
func (s Style) BrightBlue() Style { return s.apply(operation{kind: opFg, color: BrightBlue}) }

// BrightMagenta sets the foreground to BrightMagenta.
func (s Style) BrightMagenta() Style { return s.apply(operation{kind: opFg, color: BrightMagenta}) }

// BrightCyan sets the foreground to BrightCyan.
func (s Style) BrightCyan() Style { return s.apply(operation{kind: opFg, color: BrightCyan}) }

// BrightWhite sets the foreground to BrightWhite.
func (s Style) BrightWhite() Style { return s.apply(operation{kind: opFg, color: BrightWhite}) }

// Fixed sets the foreground to a 256-color palette index.
func (s Style) Fixed(index uint8) Style { return s.apply(operation{kind: opFg, color: Fixed(index)}) }

// RGB sets the foreground to a 24-bit true color.
func (s Style) RGB(r, g, b uint8) Style { return s.apply(operation{kind: opFg, color: RGB(r, g, b)}) }

// OnPrimary sets the background to the terminal default color.
func (s Style) OnPrimary() Style { return s.apply(operation{kind: opBg, color: Primary}) }

// OnBlack sets the background to Black.
func (s Style) OnBlack() Style { return s.apply(operation{kind: opBg, color: Black}) }

// OnRed sets the background to Red.
func (s Style) OnRed() Style { return s.apply(operation{kind: opBg, color: Red}) }

// OnGreen sets the background to Green.
func (s Style) OnGreen() Style { return s.apply(operation{kind: opBg, color: Green}) }

// OnYellow sets the background to Yellow.
func (s Style) OnYellow() Style { return s.apply(operation{kind: opBg, color: Yellow}) }

// OnBlue sets the background to Blue.
func (s Style) OnBlue() Style { return s.apply(operation{kind: opBg, color: Blue}) }

// OnMagenta sets the background to Magenta.
func (s Style) OnMagenta() Style { return s.apply(operation{kind: opBg, color: Magenta}) }

// OnCyan sets the background to Cyan.
func (s Style) OnCyan() Style { return s.apply(operation{kind: opBg, color: Cyan}) }

// OnWhite sets the background to White.
func (s Style) OnWhite() Style { return s.apply(operation{kind: opBg, color: White}) }

// OnBrightBlack sets the background to BrightBlack.
func (s Style) OnBrightBlack() Style { return s.apply(operation{kind: opBg, color: BrightBlack}) }

// OnBrightRed sets the background to BrightRed.
func (s Style) OnBrightRed() Style { return s.apply(operation{kind: opBg, color: BrightRed}) }

// OnBrightGreen sets the background to BrightGreen.
func (s Style) OnBrightGreen() Style { return s.apply(operation{kind: opBg, color: BrightGreen}) }

// OnBrightYellow sets the background to BrightYellow.
func (s Style) OnBrightYellow() Style { return s.apply(operation{kind: opBg, color: BrightYellow}) }

// OnBrightBlue sets the background to BrightBlue.
func (s Style) OnBrightBlue() Style { return s.apply(operation{kind: opBg, color: BrightBlue}) }

// OnBrightMagenta sets the background to BrightMagenta.
func (s Style) OnBrightMagenta() Style { return s.apply(operation{kind: opBg, color: BrightMagenta}) }

// OnBrightCyan sets the background to BrightCyan.
func (s Style) OnBrightCyan() Style { return s.apply(operation{kind: opBg, color: BrightCyan}) }

// OnBrightWhite sets the background to BrightWhite.
func (s Style) OnBrightWhite() Style { return s.apply(operation{kind: opBg, color: BrightWhite}) }

// OnFixed sets the background to a 256-color palette index.
func (s Style) OnFixed(index uint8) Style { return s.apply(operation{kind: opBg, color: Fixed(index)}) }

// OnRGB sets the background to a 24-bit true color.
func (s Style) OnRGB(r, g, b uint8) Style { return s.apply(operation{kind: opBg, color: RGB(r, g, b)}) }

// Bold renders text bold.
func (s Style) Bold() Style { return s.apply(operation{kind: opAttr, attr: Bold}) }

// Dim renders text dim.
func (s Style) Dim() Style { return s.apply(operation{kind: opAttr, attr: Dim}) }

// Italic renders text in italics.
func (s Style) Italic() Style { return s.apply(operation{kind: opAttr, attr: Italic}) }

// Underline underlines text.
func (s Style) Underline() Style { return s.apply(operation{kind: opAttr, attr: Underline}) }

// Blink makes text blink.
func (s Style) Blink() Style { return s.apply(operation{kind: opAttr, attr: Blink}) }

// RapidBlink makes text blink rapidly.
func (s Style) RapidBlink() Style { return s.apply(operation{kind: opAttr, attr: RapidBlink}) }

// Invert swaps the foreground and background colors.
func (s Style) Invert() Style { return s.apply(operation{kind: opAttr, attr: Invert}) }

// Conceal conceals text.
func (s Style) Conceal() Style { return s.apply(operation{kind: opAttr, attr: Conceal}) }

// Strike renders text struck through.
func (s Style) Strike() Style { return s.apply(operation{kind: opAttr, attr: Strike}) }

// Mask omits the value entirely when styling is disabled.
func (s Style) Mask() Style { return s.apply(operation{kind: opQuirk, quirk: QuirkMask}) }

// Wrap resplices resets embedded in the value's text to restore this style.
func (s Style) Wrap() Style { return s.apply(operation{kind: opQuirk, quirk: QuirkWrap}) }

// Linger suppresses the reset suffix so the style persists.
func (s Style) Linger() Style { return s.apply(operation{kind: opQuirk, quirk: QuirkLinger}) }

// Clear forces the reset suffix.
//
// Deprecated: renamed to Resetting; the two behave identically.
func (s Style) Clear() Style { return s.apply(operation{kind: opQuirk, quirk: QuirkClear}) }

// Resetting forces the reset suffix, overriding Linger.
func (s Style) Resetting() Style { return s.apply(operation{kind: opQuirk, quirk: QuirkResetting}) }

// Bright brightens the foreground color at render time.
func (s Style) Bright() Style { return s.apply(operation{kind: opQuirk, quirk: QuirkBright}) }

// OnBright brightens the background color at render time.
func (s Style) OnBright() Style { return s.apply(operation{kind: opQuirk, quirk: QuirkOnBright}) }

// Color builders. A builder on a bare Color first takes the color as the
// foreground: Red.Bold() is NewStyle().Red().Bold().

func (c Color) apply(op operation) Style { return c.Foreground().apply(op) }

// Bg returns a Style with foreground c and background color.
func (c Color) Bg(color Color) Style { return c.apply(operation{kind: opBg, color: color}) }

// Attr returns a Style with foreground c and attribute a.
func (c Color) Attr(a Attribute) Style { return c.apply(operation{kind: opAttr, attr: a}) }

// Quirk returns a Style with foreground c and quirk q.
func (c Color) Quirk(q Quirk) Style { return c.apply(operation{kind: opQuirk, quirk: q}) }

// Whenever returns a Style with foreground c gated on condition.
func (c Color) Whenever(condition Condition) Style {
	return c.apply(operation{kind: opWhenever, cond: condition})
}

// OnPrimary sets the background to the terminal default color.
func (c Color) OnPrimary() Style { return c.apply(operation{kind: opBg, color: Primary}) }

// OnBlack sets the background to Black.
func (c Color) OnBlack() Style { return c.apply(operation{kind: opBg, color: Black}) }

// OnRed sets the background to Red.
func (c Color) OnRed() Style { return c.apply(operation{kind: opBg, color: Red}) }

// OnGreen sets the background to Green.
func (c Color) OnGreen() Style { return c.apply(operation{kind: opBg, color: Green}) }

// OnYellow sets the background to Yellow.
func (c Color) OnYellow() Style { return c.apply(operation{kind: opBg, color: Yellow}) }

// OnBlue sets the background to Blue.
func (c Color) OnBlue() Style { return c.apply(operation{kind: opBg, color: Blue}) }

// OnMagenta sets the background to Magenta.
func (c Color) OnMagenta() Style { return c.apply(operation{kind: opBg, color: Magenta}) }

// OnCyan sets the background to Cyan.
func (c Color) OnCyan() Style { return c.apply(operation{kind: opBg, color: Cyan}) }

// OnWhite sets the background to White.
func (c Color) OnWhite() Style { return c.apply(operation{kind: opBg, color: White}) }

// OnBrightBlack sets the background to BrightBlack.
func (c Color) OnBrightBlack() Style { return c.apply(operation{kind: opBg, color: BrightBlack}) }

// OnBrightRed sets the background to BrightRed.
func (c Color) OnBrightRed() Style { return c.apply(operation{kind: opBg, color: BrightRed}) }

// OnBrightGreen sets the background to BrightGreen.
func (c Color) OnBrightGreen() Style { return c.apply(operation{kind: opBg, color: BrightGreen}) }

// OnBrightYellow sets the background to BrightYellow.
func (c Color) OnBrightYellow() Style { return c.apply(operation{kind: opBg, color: BrightYellow}) }

// OnBrightBlue sets the background to BrightBlue.
func (c Color) OnBrightBlue() Style { return c.apply(operation{kind: opBg, color: BrightBlue}) }

// OnBrightMagenta sets the background to BrightMagenta.
func (c Color) OnBrightMagenta() Style { return c.apply(operation{kind: opBg, color: BrightMagenta}) }

// OnBrightCyan sets the background to BrightCyan.
func (c Color) OnBrightCyan() Style { return c.apply(operation{kind: opBg, color: BrightCyan}) }

// OnBrightWhite sets the background to BrightWhite.
func (c Color) OnBrightWhite() Style { return c.apply(operation{kind: opBg, color: BrightWhite}) }

// OnFixed sets the background to a 256-color palette index.
func (c Color) OnFixed(index uint8) Style { return c.apply(operation{kind: opBg, color: Fixed(index)}) }

// OnRGB sets the background to a 24-bit true color.
func (c Color) OnRGB(r, g, b uint8) Style { return c.apply(operation{kind: opBg, color: RGB(r, g, b)}) }

// Bold renders text bold.
func (c Color) Bold() Style { return c.apply(operation{kind: opAttr, attr: Bold}) }

// Dim renders text dim.
func (c Color) Dim() Style { return c.apply(operation{kind: opAttr, attr: Dim}) }

// Italic renders text in italics.
func (c Color) Italic() Style { return c.apply(operation{kind: opAttr, attr: Italic}) }

// Underline underlines text.
func (c Color) Underline() Style { return c.apply(operation{kind: opAttr, attr: Underline}) }

// Blink makes text blink.
func (c Color) Blink() Style { return c.apply(operation{kind: opAttr, attr: Blink}) }

// RapidBlink makes text blink rapidly.
func (c Color) RapidBlink() Style { return c.apply(operation{kind: opAttr, attr: RapidBlink}) }

// Invert swaps the foreground and background colors.
func (c Color) Invert() Style { return c.apply(operation{kind: opAttr, attr: Invert}) }

// Conceal conceals text.
func (c Color) Conceal() Style { return c.apply(operation{kind: opAttr, attr: Conceal}) }

// Strike renders text struck through.
func (c Color) Strike() Style { return c.apply(operation{kind: opAttr, attr: Strike}) }

// Mask omits the value entirely when styling is disabled.
func (c Color) Mask() Style { return c.apply(operation{kind: opQuirk, quirk: QuirkMask}) }

// Wrap resplices resets embedded in the value's text to restore this style.
func (c Color) Wrap() Style { return c.apply(operation{kind: opQuirk, quirk: QuirkWrap}) }

// Linger suppresses the reset suffix so the style persists.
func (c Color) Linger() Style { return c.apply(operation{kind: opQuirk, quirk: QuirkLinger}) }

// Clear forces the reset suffix.
//
// Deprecated: renamed to Resetting; the two behave identically.
func (c Color) Clear() Style { return c.apply(operation{kind: opQuirk, quirk: QuirkClear}) }

// Resetting forces the reset suffix, overriding Linger.
func (c Color) Resetting() Style { return c.apply(operation{kind: opQuirk, quirk: QuirkResetting}) }

// Bright brightens the foreground color at render time.
func (c Color) Bright() Style { return c.apply(operation{kind: opQuirk, quirk: QuirkBright}) }

// OnBright brightens the background color at render time.
func (c Color) OnBright() Style { return c.apply(operation{kind: opQuirk, quirk: QuirkOnBright}) }

// Painted builders.

// Fg sets the foreground color of the painted value's style.
func (p Painted[T]) Fg(color Color) Painted[T] { return p.apply(operation{kind: opFg, color: color}) }

// Bg sets the background color of the painted value's style.
func (p Painted[T]) Bg(color Color) Painted[T] { return p.apply(operation{kind: opBg, color: color}) }

// Attr enables an attribute on the painted value's style.
func (p Painted[T]) Attr(a Attribute) Painted[T] { return p.apply(operation{kind: opAttr, attr: a}) }

// Quirk enables a quirk on the painted value's style.
func (p Painted[T]) Quirk(q Quirk) Painted[T] { return p.apply(operation{kind: opQuirk, quirk: q}) }

// Whenever gates the painted value's style on condition.
func (p Painted[T]) Whenever(condition Condition) Painted[T] {
	return p.apply(operation{kind: opWhenever, cond: condition})
}

// Primary sets the foreground to the terminal default color.
func (p Painted[T]) Primary() Painted[T] { return p.apply(operation{kind: opFg, color: Primary}) }

// Black sets the foreground to Black.
func (p Painted[T]) Black() Painted[T] { return p.apply(operation{kind: opFg, color: Black}) }

// Red sets the foreground to Red.
func (p Painted[T]) Red() Painted[T] { return p.apply(operation{kind: opFg, color: Red}) }

// Green sets the foreground to Green.
func (p Painted[T]) Green() Painted[T] { return p.apply(operation{kind: opFg, color: Green}) }

// Yellow sets the foreground to Yellow.
func (p Painted[T]) Yellow() Painted[T] { return p.apply(operation{kind: opFg, color: Yellow}) }

// Blue sets the foreground to Blue.
func (p Painted[T]) Blue() Painted[T] { return p.apply(operation{kind: opFg, color: Blue}) }

// Magenta sets the foreground to Magenta.
func (p Painted[T]) Magenta() Painted[T] { return p.apply(operation{kind: opFg, color: Magenta}) }

// Cyan sets the foreground to Cyan.
func (p Painted[T]) Cyan() Painted[T] { return p.apply(operation{kind: opFg, color: Cyan}) }

// White sets the foreground to White.
func (p Painted[T]) White() Painted[T] { return p.apply(operation{kind: opFg, color: White}) }

// BrightBlack sets the foreground to BrightBlack.
func (p Painted[T]) BrightBlack() Painted[T] { return p.apply(operation{kind: opFg, color: BrightBlack}) }

// BrightRed sets the foreground to BrightRed.
func (p Painted[T]) BrightRed() Painted[T] { return p.apply(operation{kind: opFg, color: BrightRed}) }

// BrightGreen sets the foreground to BrightGreen.
func (p Painted[T]) BrightGreen() Painted[T] { return p.apply(operation{kind: opFg, color: BrightGreen}) }

// BrightYellow sets the foreground to BrightYellow.
func (p Painted[T]) BrightYellow() Painted[T] { return p.apply(operation{kind: opFg, color: BrightYellow}) }

// BrightBlue sets the foreground to BrightBlue.
func (p Painted[T]) BrightBlue() Painted[T] { return p.apply(operation{kind: opFg, color: BrightBlue}) }

// BrightMagenta sets the foreground to BrightMagenta.
func (p Painted[T]) BrightMagenta() Painted[T] { return p.apply(operation{kind: opFg, color: BrightMagenta}) }

// BrightCyan sets the foreground to BrightCyan.
func (p Painted[T]) BrightCyan() Painted[T] { return p.apply(operation{kind: opFg, color: BrightCyan}) }

// BrightWhite sets the foreground to BrightWhite.
func (p Painted[T]) BrightWhite() Painted[T] { return p.apply(operation{kind: opFg, color: BrightWhite}) }

// Fixed sets the foreground to a 256-color palette index.
func (p Painted[T]) Fixed(index uint8) Painted[T] { return p.apply(operation{kind: opFg, color: Fixed(index)}) }

// RGB sets the foreground to a 24-bit true color.
func (p Painted[T]) RGB(r, g, b uint8) Painted[T] { return p.apply(operation{kind: opFg, color: RGB(r, g, b)}) }

// OnPrimary sets the background to the terminal default color.
func (p Painted[T]) OnPrimary() Painted[T] { return p.apply(operation{kind: opBg, color: Primary}) }

// OnBlack sets the background to Black.
func (p Painted[T]) OnBlack() Painted[T] { return p.apply(operation{kind: opBg, color: Black}) }

// OnRed sets the background to Red.
func (p Painted[T]) OnRed() Painted[T] { return p.apply(operation{kind: opBg, color: Red}) }

// OnGreen sets the background to Green.
func (p Painted[T]) OnGreen() Painted[T] { return p.apply(operation{kind: opBg, color: Green}) }

// OnYellow sets the background to Yellow.
func (p Painted[T]) OnYellow() Painted[T] { return p.apply(operation{kind: opBg, color: Yellow}) }

// OnBlue sets the background to Blue.
func (p Painted[T]) OnBlue() Painted[T] { return p.apply(operation{kind: opBg, color: Blue}) }

// OnMagenta sets the background to Magenta.
func (p Painted[T]) OnMagenta() Painted[T] { return p.apply(operation{kind: opBg, color: Magenta}) }

// OnCyan sets the background to Cyan.
func (p Painted[T]) OnCyan() Painted[T] { return p.apply(operation{kind: opBg, color: Cyan}) }

// OnWhite sets the background to White.
func (p Painted[T]) OnWhite() Painted[T] { return p.apply(operation{kind: opBg, color: White}) }

// OnBrightBlack sets the background to BrightBlack.
func (p Painted[T]) OnBrightBlack() Painted[T] { return p.apply(operation{kind: opBg, color: BrightBlack}) }

// OnBrightRed sets the background to BrightRed.
func (p Painted[T]) OnBrightRed() Painted[T] { return p.apply(operation{kind: opBg, color: BrightRed}) }

// OnBrightGreen sets the background to BrightGreen.
func (p Painted[T]) OnBrightGreen() Painted[T] { return p.apply(operation{kind: opBg, color: BrightGreen}) }

// OnBrightYellow sets the background to BrightYellow.
func (p Painted[T]) OnBrightYellow() Painted[T] { return p.apply(operation{kind: opBg, color: BrightYellow}) }

// OnBrightBlue sets the background to BrightBlue.
func (p Painted[T]) OnBrightBlue() Painted[T] { return p.apply(operation{kind: opBg, color: BrightBlue}) }

// OnBrightMagenta sets the background to BrightMagenta.
func (p Painted[T]) OnBrightMagenta() Painted[T] { return p.apply(operation{kind: opBg, color: BrightMagenta}) }

// OnBrightCyan sets the background to BrightCyan.
func (p Painted[T]) OnBrightCyan() Painted[T] { return p.apply(operation{kind: opBg, color: BrightCyan}) }

// OnBrightWhite sets the background to BrightWhite.
func (p Painted[T]) OnBrightWhite() Painted[T] { return p.apply(operation{kind: opBg, color: BrightWhite}) }

// OnFixed sets the background to a 256-color palette index.
func (p Painted[T]) OnFixed(index uint8) Painted[T] { return p.apply(operation{kind: opBg, color: Fixed(index)}) }

// OnRGB sets the background to a 24-bit true color.
func (p Painted[T]) OnRGB(r, g, b uint8) Painted[T] { return p.apply(operation{kind: opBg, color: RGB(r, g, b)}) }

// Bold renders text bold.
func (p Painted[T]) Bold() Painted[T] { return p.apply(operation{kind: opAttr, attr: Bold}) }

// Dim renders text dim.
func (p Painted[T]) Dim() Painted[T] { return p.apply(operation{kind: opAttr, attr: Dim}) }

// Italic renders text in italics.
func (p Painted[T]) Italic() Painted[T] { return p.apply(operation{kind: opAttr, attr: Italic}) }

// Underline underlines text.
func (p Painted[T]) Underline() Painted[T] { return p.apply(operation{kind: opAttr, attr: Underline}) }

// Blink makes text blink.
func (p Painted[T]) Blink() Painted[T] { return p.apply(operation{kind: opAttr, attr: Blink}) }

// RapidBlink makes text blink rapidly.
func (p Painted[T]) RapidBlink() Painted[T] { return p.apply(operation{kind: opAttr, attr: RapidBlink}) }

// Invert swaps the foreground and background colors.
func (p Painted[T]) Invert() Painted[T] { return p.apply(operation{kind: opAttr, attr: Invert}) }

// Conceal conceals text.
func (p Painted[T]) Conceal() Painted[T] { return p.apply(operation{kind: opAttr, attr: Conceal}) }

// Strike renders text struck through.
func (p Painted[T]) Strike() Painted[T] { return p.apply(operation{kind: opAttr, attr: Strike}) }

// Mask omits the value entirely when styling is disabled.
func (p Painted[T]) Mask() Painted[T] { return p.apply(operation{kind: opQuirk, quirk: QuirkMask}) }

// Wrap resplices resets embedded in the value's text to restore this style.
func (p Painted[T]) Wrap() Painted[T] { return p.apply(operation{kind: opQuirk, quirk: QuirkWrap}) }

// Linger suppresses the reset suffix so the style persists.
func (p Painted[T]) Linger() Painted[T] { return p.apply(operation{kind: opQuirk, quirk: QuirkLinger}) }

// Clear forces the reset suffix.
//
// Deprecated: renamed to Resetting; the two behave identically.
func (p Painted[T]) Clear() Painted[T] { return p.apply(operation{kind: opQuirk, quirk: QuirkClear}) }

// Resetting forces the reset suffix, overriding Linger.
func (p Painted[T]) Resetting() Painted[T] { return p.apply(operation{kind: opQuirk, quirk: QuirkResetting}) }

// Bright brightens the foreground color at render time.
func (p Painted[T]) Bright() Painted[T] { return p.apply(operation{kind: opQuirk, quirk: QuirkBright}) }

// OnBright brightens the background color at render time.
func (p Painted[T]) OnBright() Painted[T] { return p.apply(operation{kind: opQuirk, quirk: QuirkOnBright}) }
