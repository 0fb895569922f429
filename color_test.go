package tinge

import "testing"

func TestColor_SGRCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		color  Color
		wantFg string
		wantBg string
	}{
		{
			name:   "primary",
			color:  Primary,
			wantFg: "39",
			wantBg: "49",
		},
		{
			name:   "named_black",
			color:  Black,
			wantFg: "30",
			wantBg: "40",
		},
		{
			name:   "named_red",
			color:  Red,
			wantFg: "31",
			wantBg: "41",
		},
		{
			name:   "named_white",
			color:  White,
			wantFg: "37",
			wantBg: "47",
		},
		{
			name:   "bright_black",
			color:  BrightBlack,
			wantFg: "90",
			wantBg: "100",
		},
		{
			name:   "bright_white",
			color:  BrightWhite,
			wantFg: "97",
			wantBg: "107",
		},
		{
			name:   "fixed_palette_index",
			color:  Fixed(100),
			wantFg: "38;5;100",
			wantBg: "48;5;100",
		},
		{
			name:   "rgb_true_color",
			color:  RGB(70, 130, 180),
			wantFg: "38;2;70;130;180",
			wantBg: "48;2;70;130;180",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := string(tt.color.appendSGR(nil, false)); got != tt.wantFg {
				t.Errorf("foreground SGR = %q, want %q", got, tt.wantFg)
			}
			if got := string(tt.color.appendSGR(nil, true)); got != tt.wantBg {
				t.Errorf("background SGR = %q, want %q", got, tt.wantBg)
			}
		})
	}
}

func TestColor_ToBright(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color Color
		want  Color
	}{
		{
			name:  "named_becomes_bright",
			color: Red,
			want:  BrightRed,
		},
		{
			name:  "bright_stays_bright",
			color: BrightGreen,
			want:  BrightGreen,
		},
		{
			name:  "primary_unchanged",
			color: Primary,
			want:  Primary,
		},
		{
			name:  "fixed_unchanged",
			color: Fixed(42),
			want:  Fixed(42),
		},
		{
			name:  "rgb_unchanged",
			color: RGB(1, 2, 3),
			want:  RGB(1, 2, 3),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.color.ToBright(); got != tt.want {
				t.Errorf("ToBright() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColor_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		color Color
		want  string
	}{
		{Primary, "primary"},
		{Magenta, "magenta"},
		{BrightCyan, "bright-cyan"},
		{Fixed(214), "fixed(214)"},
		{RGB(70, 130, 180), "rgb(70,130,180)"},
	}

	for _, tt := range tests {
		if got := tt.color.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestColor_StyleConstructors(t *testing.T) {
	t.Parallel()

	fg, ok := Red.Foreground().Foreground()
	if !ok || fg != Red {
		t.Errorf("Foreground() style fg = %v, %v, want red", fg, ok)
	}
	bg, ok := Red.Background().Background()
	if !ok || bg != Red {
		t.Errorf("Background() style bg = %v, %v, want red", bg, ok)
	}
	if _, ok := Red.Foreground().Background(); ok {
		t.Error("Foreground() style should have no background")
	}
}
