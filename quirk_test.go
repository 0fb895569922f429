package tinge

import "testing"

func TestQuirk_NeverEmitsCodes(t *testing.T) {
	t.Parallel()

	// Quirks alone are not styling: they must not produce a prefix.
	for q := QuirkMask; q <= QuirkOnBright; q++ {
		s := q.Style()
		if got := s.Prefix(); got != "" {
			t.Errorf("%s prefix = %q, want empty", q, got)
		}
	}
}

func TestQuirk_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		quirk Quirk
		want  string
	}{
		{QuirkMask, "mask"},
		{QuirkWrap, "wrap"},
		{QuirkLinger, "linger"},
		{QuirkClear, "clear"},
		{QuirkResetting, "resetting"},
		{QuirkBright, "bright"},
		{QuirkOnBright, "on-bright"},
	}

	for _, tt := range tests {
		if got := tt.quirk.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
