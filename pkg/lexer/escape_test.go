package lexer

import "testing"

func TestReadToken(t *testing.T) {
	tests := []struct {
		seq          string
		wantKind     tokenKind
		wantNumber   int
		wantConsumed int
	}{
		{"38;5;196m", tokenNumber, 38, 2},
		{";5;196m", tokenSeparator, 0, 1},
		{":5m", tokenSeparator, 0, 1},
		{"5m", tokenNumber, 5, 1},
		{"196m", tokenNumber, 196, 3},
		{"m", tokenEOF, 0, 0},
		{"", tokenEOF, 0, 0},
		{"\x00rest", tokenEOF, 0, 0},
		{" 31m", tokenEOF, 0, 1},
	}
	for _, tt := range tests {
		kind, number, consumed := readToken([]byte(tt.seq))
		if kind != tt.wantKind || number != tt.wantNumber || consumed != tt.wantConsumed {
			t.Errorf("readToken(%q) = (%v, %d, %d), want (%v, %d, %d)",
				tt.seq, kind, number, consumed, tt.wantKind, tt.wantNumber, tt.wantConsumed)
		}
	}
}

func TestStyleFromSequence(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want Style
	}{
		{"plain red", "31m", StyleEsRed},
		{"plain bright red", "91m", StyleEsBrightRed},
		{"bold then red", "1;31m", StyleEsRed},
		{"reset only", "0m", StyleDefault},
		{"indexed 256", "38;5;196m", StyleEsBrightRed},
		{"indexed grayscale", "38;5;255m", StyleEsGray},
		{"truecolor unsupported", "38;2;255;0;0m", StyleDefault},
		{"background ignored", "48;5;196m", StyleDefault},
		{"indexed missing number", "38;5m", StyleDefault},
		{"indexed out of range", "38;5;300m", StyleDefault},
		{"attribute without colour", "1m", StyleDefault},
		{"bare large number", "256m", StyleDefault},
		{"bare index form", "196m", StyleEsBrightRed},
		{"garbage", "xm", StyleDefault},
		{"empty", "m", StyleDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := styleFromSequence([]byte(tt.seq)); got != tt.want {
				t.Errorf("styleFromSequence(%q) = %v, want %v", tt.seq, got, tt.want)
			}
		})
	}
}

func TestQuantizedMatchesDirectForCoincidingCodes(t *testing.T) {
	// "38;5;196" must resolve to the same category as plain "91": index
	// 196 is pure red, exactly the bright-red base entry.
	indexed := styleFromSequence([]byte("38;5;196m"))
	direct := styleFromSequence([]byte("91m"))
	if indexed != direct {
		t.Errorf("38;5;196 resolved to %v, plain 91 to %v", indexed, direct)
	}
}

func TestFindOtherEscape(t *testing.T) {
	tests := []struct {
		s       string
		wantPos int
		wantOK  bool
	}{
		{"ab\x1b(Bcd", 2, true},
		{"\x1b(0", 0, true},
		{"\x1b(U", 0, true},
		{"\x1b(K", 0, true},
		{"\x1b(X", 0, false},
		{"no escape here", 0, false},
		{"trailing\x1b(", 0, false},
	}
	for _, tt := range tests {
		pos, ok := findOtherEscape([]byte(tt.s))
		if pos != tt.wantPos || ok != tt.wantOK {
			t.Errorf("findOtherEscape(%q) = (%d, %v), want (%d, %v)", tt.s, pos, ok, tt.wantPos, tt.wantOK)
		}
	}
}
