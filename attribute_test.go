package tinge

import "testing"

func TestAttribute_SGRCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attr Attribute
		want int
	}{
		{Bold, 1},
		{Dim, 2},
		{Italic, 3},
		{Underline, 4},
		{Blink, 5},
		{RapidBlink, 6},
		{Invert, 7},
		{Conceal, 8},
		{Strike, 9},
	}

	for _, tt := range tests {
		if got := tt.attr.sgr(); got != tt.want {
			t.Errorf("%s.sgr() = %d, want %d", tt.attr, got, tt.want)
		}
	}
}

func TestAttribute_Style(t *testing.T) {
	t.Parallel()

	s := Underline.Style()
	if got := s.Attributes(); len(got) != 1 || got[0] != Underline {
		t.Errorf("Attributes() = %v, want [underline]", got)
	}
	if _, ok := s.Foreground(); ok {
		t.Error("attribute style should have no foreground")
	}
}
