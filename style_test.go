package tinge

import "testing"

func TestStyle_Prefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{
			name:  "plain_style_is_empty",
			style: NewStyle(),
			want:  "",
		},
		{
			name:  "foreground_only",
			style: NewStyle().Red(),
			want:  "\x1b[31m",
		},
		{
			name:  "attribute_before_foreground",
			style: NewStyle().Yellow().Bold(),
			want:  "\x1b[1;33m",
		},
		{
			name:  "background_before_foreground",
			style: NewStyle().Cyan().OnWhite(),
			want:  "\x1b[47;36m",
		},
		{
			name:  "attributes_in_declaration_order",
			style: NewStyle().Underline().Bold().Italic(),
			want:  "\x1b[1;3;4m",
		},
		{
			name:  "full_ordering_attrs_bg_fg",
			style: NewStyle().Blue().Bold().Blink().Italic().OnWhite(),
			want:  "\x1b[1;3;5;47;34m",
		},
		{
			name:  "fixed_foreground_on_named_background",
			style: NewStyle().Fixed(100).OnMagenta(),
			want:  "\x1b[45;38;5;100m",
		},
		{
			name:  "rgb_foreground",
			style: NewStyle().RGB(70, 130, 180),
			want:  "\x1b[38;2;70;130;180m",
		},
		{
			name:  "bright_quirk_promotes_foreground",
			style: NewStyle().Red().Bright(),
			want:  "\x1b[91m",
		},
		{
			name:  "on_bright_quirk_promotes_background",
			style: NewStyle().Red().OnBlue().OnBright(),
			want:  "\x1b[104;31m",
		},
		{
			name:  "bright_quirk_leaves_rgb_alone",
			style: NewStyle().RGB(1, 2, 3).Bright(),
			want:  "\x1b[38;2;1;2;3m",
		},
		{
			name:  "primary_foreground",
			style: NewStyle().Primary(),
			want:  "\x1b[39m",
		},
		{
			name:  "primary_on_primary",
			style: NewStyle().Primary().OnPrimary(),
			want:  "\x1b[49;39m",
		},
		{
			name:  "last_foreground_wins",
			style: NewStyle().Red().Green(),
			want:  "\x1b[32m",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.style.Prefix()
			if got != tt.want {
				t.Errorf("Prefix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyle_Suffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{
			name:  "plain_style_has_no_suffix",
			style: NewStyle(),
			want:  "",
		},
		{
			name:  "styled_resets",
			style: NewStyle().Red(),
			want:  "\x1b[0m",
		},
		{
			name:  "linger_suppresses_reset",
			style: NewStyle().Red().Linger(),
			want:  "",
		},
		{
			name:  "resetting_overrides_linger",
			style: NewStyle().Red().Linger().Resetting(),
			want:  "\x1b[0m",
		},
		{
			name:  "resetting_forces_reset_on_plain",
			style: NewStyle().Resetting(),
			want:  "\x1b[0m",
		},
		{
			name:  "clear_alias_behaves_like_resetting",
			style: NewStyle().Linger().Clear(),
			want:  "\x1b[0m",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.style.Suffix()
			if got != tt.want {
				t.Errorf("Suffix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyle_ApplyIsIdempotentForSets(t *testing.T) {
	t.Parallel()

	once := NewStyle().Bold().Wrap()
	twice := once.Bold().Wrap()
	if once.attrs != twice.attrs || once.quirks != twice.quirks {
		t.Errorf("reapplying attribute and quirk changed the style: %v != %v", twice, once)
	}
}

func TestStyle_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Style
		want bool
	}{
		{
			name: "both_plain",
			a:    NewStyle(),
			b:    NewStyle(),
			want: true,
		},
		{
			name: "same_color_and_attrs",
			a:    NewStyle().Red().Bold(),
			b:    NewStyle().Bold().Red(),
			want: true,
		},
		{
			name: "different_foreground",
			a:    NewStyle().Red(),
			b:    NewStyle().Green(),
			want: false,
		},
		{
			name: "foreground_vs_none",
			a:    NewStyle().Red(),
			b:    NewStyle(),
			want: false,
		},
		{
			name: "different_attrs",
			a:    NewStyle().Red().Bold(),
			b:    NewStyle().Red().Italic(),
			want: false,
		},
		{
			name: "quirks_ignored",
			a:    NewStyle().Red().Mask().Linger(),
			b:    NewStyle().Red(),
			want: true,
		},
		{
			name: "condition_ignored",
			a:    NewStyle().Red().Whenever(ConditionNever),
			b:    NewStyle().Red(),
			want: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() not symmetric: %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStyle_Enabled(t *testing.T) {
	t.Parallel()

	if !NewStyle().Red().Enabled() {
		t.Error("style without condition should be enabled")
	}
	if NewStyle().Red().Whenever(ConditionNever).Enabled() {
		t.Error("style with never condition should be disabled")
	}
	// A later Whenever replaces the previous condition outright.
	if !NewStyle().Whenever(ConditionNever).Whenever(ConditionAlways).Enabled() {
		t.Error("replaced condition should win")
	}
}

func TestStyle_Accessors(t *testing.T) {
	t.Parallel()

	s := NewStyle().Cyan().OnFixed(7).Bold().Strike().Mask()

	if fg, ok := s.Foreground(); !ok || fg != Cyan {
		t.Errorf("Foreground() = %v, %v, want cyan", fg, ok)
	}
	if bg, ok := s.Background(); !ok || bg != Fixed(7) {
		t.Errorf("Background() = %v, %v, want fixed(7)", bg, ok)
	}
	if got := s.Attributes(); len(got) != 2 || got[0] != Bold || got[1] != Strike {
		t.Errorf("Attributes() = %v, want [bold strike]", got)
	}
	if got := s.Quirks(); len(got) != 1 || got[0] != QuirkMask {
		t.Errorf("Quirks() = %v, want [mask]", got)
	}
}

func TestStyle_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style Style
		want  string
	}{
		{NewStyle(), "plain"},
		{NewStyle().Red(), "red"},
		{NewStyle().Red().OnWhite().Bold(), "bold red on white"},
		{NewStyle().Linger(), "+linger"},
		{NewStyle().Whenever(ConditionNever), "when ConditionNEVER"},
	}

	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
