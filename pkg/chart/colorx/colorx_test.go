package colorx

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{"with hash", "#3b82f6", RGB{0x3b, 0x82, 0xf6}},
		{"without hash", "3b82f6", RGB{0x3b, 0x82, 0xf6}},
		{"white", "#ffffff", RGB{255, 255, 255}},
		{"black", "#000000", RGB{0, 0, 0}},
		{"too short", "#fff", Black},
		{"too long", "#ffffffff", Black},
		{"not hex", "#zzzzzz", Black},
		{"empty", "", Black},
		{"bare hash", "#", Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Every valid 6-digit hex string must survive Parse → Hex unchanged.
	inputs := []string{"#000000", "#ffffff", "#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6", "#abcdef"}
	for _, in := range inputs {
		if got := Parse(in).Hex(); got != in {
			t.Errorf("round trip %q → %q", in, got)
		}
	}
}

func TestLerp(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{200, 100, 50}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp t=0 = %+v, want %+v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp t=1 = %+v, want %+v", got, b)
	}
	if got := Lerp(a, b, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Lerp t=0.5 = %+v", got)
	}

	// Out-of-range factors clamp instead of extrapolating.
	if got := Lerp(a, b, -1); got != a {
		t.Errorf("Lerp t=-1 = %+v, want %+v", got, a)
	}
	if got := Lerp(a, b, 2); got != b {
		t.Errorf("Lerp t=2 = %+v, want %+v", got, b)
	}
}

func TestScale(t *testing.T) {
	c := RGB{100, 200, 50}

	if got := Scale(c, 1); got != c {
		t.Errorf("Scale factor=1 = %+v, want unchanged %+v", got, c)
	}
	if got := Scale(c, 0.5); got != (RGB{50, 100, 25}) {
		t.Errorf("Scale factor=0.5 = %+v", got)
	}
	// Channels clamp at 255 rather than wrapping.
	if got := Scale(c, 2); got != (RGB{200, 255, 100}) {
		t.Errorf("Scale factor=2 = %+v", got)
	}
	if got := Scale(c, -1); got != Black {
		t.Errorf("Scale factor=-1 = %+v, want black", got)
	}
}

func TestContrast(t *testing.T) {
	white := RGB{255, 255, 255}
	black := RGB{0, 0, 0}

	if got := Contrast(0.3, 0.5); got != white {
		t.Errorf("Contrast(0.3) = %+v, want white", got)
	}
	if got := Contrast(0.8, 0.5); got != black {
		t.Errorf("Contrast(0.8) = %+v, want black", got)
	}
	if got := Contrast(0.5, 0.5); got != white {
		t.Errorf("Contrast(0.5) = %+v, want white at threshold", got)
	}
}
