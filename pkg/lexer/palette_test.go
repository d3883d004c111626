package lexer

import "testing"

func TestNearestBaseColorReflexive(t *testing.T) {
	// Each base palette entry must resolve to its own style: distance zero
	// is strictly minimal.
	for i, c := range basePalette {
		if got := nearestBaseColor(c); got != baseStyles[i] {
			t.Errorf("nearestBaseColor(%#06x) = %v, want %v", uint32(c), got, baseStyles[i])
		}
	}
}

func TestColorDistanceZeroAtIdentity(t *testing.T) {
	for _, c := range basePalette {
		if d := colorDistance(c, c); d != 0 {
			t.Errorf("colorDistance(%#06x, %#06x) = %d, want 0", uint32(c), uint32(c), d)
		}
	}
}

func TestAnsi256Table(t *testing.T) {
	tests := []struct {
		index int
		want  RGB
	}{
		{0, 0x000000},
		{9, 0xff0000},
		{15, 0xffffff},
		{16, 0x000000},  // cube origin
		{21, 0x0000ff},  // cube full blue
		{196, 0xff0000}, // cube full red
		{231, 0xffffff}, // cube full white
		{232, 0x080808}, // grayscale ramp start
		{255, 0xeeeeee}, // grayscale ramp end
	}
	for _, tt := range tests {
		if got := ansi256[tt.index]; got != tt.want {
			t.Errorf("ansi256[%d] = %#06x, want %#06x", tt.index, uint32(got), uint32(tt.want))
		}
	}
}

func TestStyleFromColorNumber(t *testing.T) {
	tests := []struct {
		number int
		want   Style
	}{
		{30, StyleEsBlack},
		{31, StyleEsRed},
		{37, StyleEsGray},
		{90, StyleEsDarkGray},
		{91, StyleEsBrightRed},
		{97, StyleEsWhite},
		// 256-colour indexes quantized to the base palette.
		{9, StyleEsBrightRed},
		{21, StyleEsBlue},
		{196, StyleEsBrightRed},
		{232, StyleEsBlack},
		{255, StyleEsGray},
	}
	for _, tt := range tests {
		if got := styleFromColorNumber(tt.number); got != tt.want {
			t.Errorf("styleFromColorNumber(%d) = %v, want %v", tt.number, got, tt.want)
		}
	}
}

func TestQuantizationConsistentWithDirectPath(t *testing.T) {
	// Index 196 is pure red in the cube, which must land on the same base
	// colour as the direct bright-red code.
	if got, want := styleFromColorNumber(196), styleFromColorNumber(91); got != want {
		t.Errorf("styleFromColorNumber(196) = %v, styleFromColorNumber(91) = %v", got, want)
	}
}
