package tinge

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Theme is a set of named styles loaded from a TOML file. It gives
// applications a declarative home for static style tables:
//
//	[styles.heading]
//	fg = "bright-blue"
//	attrs = ["bold", "underline"]
//
//	[styles.warn]
//	fg = "yellow"
//	when = "tty"
type Theme struct {
	styles map[string]Style
}

type themeFile struct {
	Styles map[string]themeEntry `toml:"styles"`
}

type themeEntry struct {
	Fg     string   `toml:"fg"`
	Bg     string   `toml:"bg"`
	Attrs  []string `toml:"attrs"`
	Quirks []string `toml:"quirks"`
	When   string   `toml:"when"`
}

// LoadTheme reads a theme file. A missing file is not an error: it returns
// (nil, nil) so callers can fall back to built-in styles. Decode and
// name-resolution errors are returned with the offending style named.
func LoadTheme(path string) (*Theme, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var file themeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, err
	}

	theme := &Theme{styles: make(map[string]Style, len(file.Styles))}
	for name, entry := range file.Styles {
		style, err := entry.style()
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		theme.styles[name] = style
	}
	return theme, nil
}

func (e themeEntry) style() (Style, error) {
	style := Style{}

	if e.Fg != "" {
		color, err := ParseColor(e.Fg)
		if err != nil {
			return Style{}, err
		}
		style = style.Fg(color)
	}
	if e.Bg != "" {
		color, err := ParseColor(e.Bg)
		if err != nil {
			return Style{}, err
		}
		style = style.Bg(color)
	}
	for _, name := range e.Attrs {
		attr, err := ParseAttribute(name)
		if err != nil {
			return Style{}, err
		}
		style = style.Attr(attr)
	}
	for _, name := range e.Quirks {
		quirk, err := ParseQuirk(name)
		if err != nil {
			return Style{}, err
		}
		style = style.Quirk(quirk)
	}
	if e.When != "" {
		cond, err := parseCondition(e.When)
		if err != nil {
			return Style{}, err
		}
		style = style.Whenever(cond)
	}
	return style, nil
}

// Style returns the named style and whether the theme defines it.
func (t *Theme) Style(name string) (Style, bool) {
	s, ok := t.styles[name]
	return s, ok
}

// Names returns the defined style names in sorted order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseColor resolves a color name as used in theme files: a base or
// "bright-" prefixed color name, "primary", a 256-color palette index such
// as "214", or a "#RRGGBB" / "#RGB" hex true color.
func ParseColor(name string) (Color, error) {
	if strings.HasPrefix(name, "#") {
		return parseHexColor(name)
	}
	if idx, err := strconv.Atoi(name); err == nil {
		if idx < 0 || idx > 255 {
			return Color{}, fmt.Errorf("palette index %d out of range 0-255", idx)
		}
		return Fixed(uint8(idx)), nil
	}

	bright := false
	base := name
	if rest, ok := strings.CutPrefix(name, "bright-"); ok {
		bright, base = true, rest
	}

	var color Color
	switch base {
	case "primary":
		if bright {
			return Color{}, fmt.Errorf("unknown color %q", name)
		}
		return Primary, nil
	case "black":
		color = Black
	case "red":
		color = Red
	case "green":
		color = Green
	case "yellow":
		color = Yellow
	case "blue":
		color = Blue
	case "magenta":
		color = Magenta
	case "cyan":
		color = Cyan
	case "white":
		color = White
	default:
		return Color{}, fmt.Errorf("unknown color %q", name)
	}
	if bright {
		color = color.ToBright()
	}
	return color, nil
}

// parseHexColor accepts "#RRGGBB" and the shorthand "#RGB".
func parseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		r, g, b := uint8(v>>8), uint8(v>>4&0xF), uint8(v&0xF)
		// Expand each nibble: 0xF -> 0xFF.
		return RGB(r<<4|r, g<<4|g, b<<4|b), nil
	default:
		return Color{}, fmt.Errorf("invalid hex color %q: expected #RGB or #RRGGBB", s)
	}
}

// ParseAttribute resolves an attribute name as used in theme files.
func ParseAttribute(name string) (Attribute, error) {
	for a := Bold; a <= Strike; a++ {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown attribute %q", name)
}

// ParseQuirk resolves a quirk name as used in theme files.
func ParseQuirk(name string) (Quirk, error) {
	for q := QuirkMask; q <= QuirkOnBright; q++ {
		if q.String() == name {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown quirk %q", name)
}

func parseCondition(name string) (Condition, error) {
	switch name {
	case "always":
		return ConditionAlways, nil
	case "never":
		return ConditionNever, nil
	case "default":
		return ConditionDefault, nil
	case "tty":
		return ConditionTTY, nil
	case "env":
		return ConditionTTYAndColor, nil
	}
	return Condition{}, fmt.Errorf("unknown condition %q", name)
}
