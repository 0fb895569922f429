package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tinge-dev/tinge"
)

// alert is a static style shared by several demo sections.
var alert = tinge.NewStyle().Yellow().OnWhite().Bold().Underline()

// sectionWriter writes demo output with styled section headings and
// configurable indent levels. Each line gets the current indent prefix.
type sectionWriter struct {
	w      io.Writer
	indent string
	level  int
}

func newSectionWriter(w io.Writer, indent string) *sectionWriter {
	return &sectionWriter{w: w, indent: indent}
}

// Section writes a styled heading and indents subsequent lines under it.
func (sw *sectionWriter) Section(title string) *sectionWriter {
	fmt.Fprintln(sw.w, sw.prefix()+tinge.Paint(title).Bold().Underline().String())
	sw.level++
	return sw
}

// End closes the current section. The level cannot go below 0.
func (sw *sectionWriter) End() *sectionWriter {
	if sw.level > 0 {
		sw.level--
	}
	fmt.Fprintln(sw.w)
	return sw
}

func (sw *sectionWriter) prefix() string {
	return strings.Repeat(sw.indent, sw.level)
}

// Writef writes a formatted line with the current indent prefix.
func (sw *sectionWriter) Writef(format string, args ...any) {
	fmt.Fprintf(sw.w, sw.prefix()+format+"\n", args...)
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render a showcase of colors, attributes, and quirks",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runDemo(newSectionWriter(cmd.OutOrStdout(), "  "))
		},
	}
}

func runDemo(sw *sectionWriter) {
	sw.Section("colors")
	for _, c := range []struct {
		name  string
		color tinge.Color
	}{
		{"black", tinge.Black},
		{"red", tinge.Red},
		{"green", tinge.Green},
		{"yellow", tinge.Yellow},
		{"blue", tinge.Blue},
		{"magenta", tinge.Magenta},
		{"cyan", tinge.Cyan},
		{"white", tinge.White},
	} {
		sw.Writef("%s, %s, %s",
			tinge.Paint(c.name).Fg(c.color),
			tinge.Paint("dim "+c.name).Fg(c.color).Dim(),
			tinge.Paint("bright "+c.name).Fg(c.color).Bright())
	}
	sw.End()

	sw.Section("palette and rgb")
	sw.Writef("%s, %s, %s",
		tinge.Paint("fixed 100").Fixed(100),
		tinge.Paint("fixed 100 on magenta").Fixed(100).OnMagenta(),
		tinge.Paint("rgb teal").RGB(70, 130, 180))
	sw.End()

	sw.Section("attributes")
	sw.Writef("Testing, %s, %s, %s!",
		tinge.Paint("Ready").Bold(),
		tinge.Paint("Set").Yellow().Italic().Bold(),
		tinge.Paint("STOP").White().OnRed().Bright().Underline().Bold())
	normal := tinge.Paint("Normal").Primary().OnBlack()
	sw.Writef("%s", normal)
	sw.Writef("%s", normal.OnBright())
	sw.Writef("%s", normal.Invert().OnBright())
	sw.Writef("%s", normal.Strike().Blink().RapidBlink().Conceal())
	sw.End()

	sw.Section("styles as values")
	stop := tinge.Red.Foreground()
	wait := tinge.Yellow.Bold().Underline()
	go_ := tinge.Green.Italic().OnBlack()
	sw.Writef("Testing, %s, %s, %s!",
		tinge.Styled(1, alert),
		tinge.Styled(2, wait),
		tinge.Styled("3", go_).Mask())
	sw.Writef("stop means %s", tinge.Styled("stop", stop))
	sw.End()

	sw.Section("wrapping")
	inner := fmt.Sprintf("%s and %s",
		tinge.Paint("Stop").Red(),
		tinge.Paint("Go").Green())
	sw.Writef("Hey! %s", tinge.Paint(inner).Blue().Wrap())
	sw.End()

	sw.Section("hyperlinks")
	sw.Writef("go to %s, please",
		tinge.Paint("our docs").Green().Italic().Link("https://example.com/docs"))
	sw.End()
}
