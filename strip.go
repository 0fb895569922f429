package tinge

import "strings"

// escape is the ASCII escape character that opens an ANSI sequence.
const escape = '\x1b'

// Strip removes ANSI escape sequences from s. A two-state scan drops
// everything from each escape character through the next 'm', the
// terminator of every SGR sequence, and passes all other bytes through
// unchanged. Rendering uses it for wrapped values while styling is
// disabled; cmd/tinge exposes it as the strip subcommand.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	open := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case open:
			if c == 'm' {
				open = false
			}
		case c == escape:
			open = true
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
