package lexer

import (
	"reflect"
	"testing"
)

func runLexer(t *testing.T, text string, props map[string]int) []Span {
	t.Helper()
	styler := NewStringStyler(text)
	for name, value := range props {
		styler.SetProperty(name, value)
	}
	New().Run(0, len(text), styler)
	return styler.Spans()
}

func checkCoverage(t *testing.T, spans []Span, start, end int) {
	t.Helper()
	if len(spans) == 0 {
		if start != end {
			t.Fatalf("no spans emitted for range [%d, %d)", start, end)
		}
		return
	}
	if spans[0].Start != start {
		t.Errorf("first span starts at %d, want %d", spans[0].Start, start)
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].Start != spans[i-1].End {
			t.Errorf("span %d starts at %d, previous ended at %d", i, spans[i].Start, spans[i-1].End)
		}
	}
	for i, span := range spans {
		if span.End <= span.Start {
			t.Errorf("span %d is empty or reversed: [%d, %d)", i, span.Start, span.End)
		}
	}
	if last := spans[len(spans)-1].End; last != end {
		t.Errorf("last span ends at %d, want %d", last, end)
	}
}

func TestRunWholeLinesPerStyle(t *testing.T) {
	text := "> make all\n+added\nmain.c:1:2: error: x\nplain\n"
	spans := runLexer(t, text, nil)

	want := []Span{
		{0, 11, StyleCmd},
		{11, 18, StyleDiffAddition},
		{18, 39, StyleGcc},
		{39, 45, StyleDefault},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
	checkCoverage(t, spans, 0, len(text))
}

func TestRunUnterminatedFinalLine(t *testing.T) {
	text := "first\nsecond without newline"
	spans := runLexer(t, text, nil)
	want := []Span{
		{0, 6, StyleDefault},
		{6, len(text), StyleDefault},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
}

func TestRunCarriageReturnBoundaries(t *testing.T) {
	// "\r\n" is one boundary; a lone "\r" is a boundary by itself.
	text := "a\r\nb\rc"
	spans := runLexer(t, text, nil)
	want := []Span{
		{0, 3, StyleDefault}, // "a\r\n"
		{3, 5, StyleDefault}, // "b\r"
		{5, 6, StyleDefault}, // "c"
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
}

func TestRunValueSeparate(t *testing.T) {
	text := "main.c:12:5: error: bar\n"
	spans := runLexer(t, text, map[string]int{PropValueSeparate: 1})
	want := []Span{
		{0, 12, StyleGcc},
		{12, 24, StyleValue},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
	if spans[0].End-spans[0].Start+spans[1].End-spans[1].Start != len(text) {
		t.Errorf("split spans do not cover the whole line")
	}
}

func TestRunEscapeRoundTrip(t *testing.T) {
	text := "\x1b[31merror\x1b[0m: bad"
	spans := runLexer(t, text, map[string]int{PropEscapeSequences: 1})
	want := []Span{
		{0, 5, StyleEscSeq},
		{5, 10, StyleEsRed},
		{10, 14, StyleEscSeq},
		{14, 19, StyleDefault},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
	checkCoverage(t, spans, 0, len(text))
}

func TestRunEscapeDisabledLeavesRawText(t *testing.T) {
	text := "\x1b[31merror\x1b[0m: bad"
	spans := runLexer(t, text, nil)
	want := []Span{{0, len(text), StyleDefault}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
}

func TestRunEscapePersistsAcrossRuns(t *testing.T) {
	// The resolved colour carries over following sequences until a
	// non-colour terminator resets it.
	text := "\x1b[31mred\x1b[2Kstill red"
	spans := runLexer(t, text, map[string]int{PropEscapeSequences: 1})
	want := []Span{
		{0, 5, StyleEscSeq},
		{5, 8, StyleEsRed},
		{8, 12, StyleEscSeq},
		{12, 21, StyleEsRed},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
}

func TestRunUnknownTerminatorResetsToBase(t *testing.T) {
	text := "\x1b[31mred\x1b[5Aafter"
	spans := runLexer(t, text, map[string]int{PropEscapeSequences: 1})
	want := []Span{
		{0, 5, StyleEscSeq},
		{5, 8, StyleEsRed},
		{8, 12, StyleEscSeqUnknown},
		{12, 17, StyleDefault},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
}

func TestRunUnterminatedEscape(t *testing.T) {
	text := "foo\x1b[31"
	spans := runLexer(t, text, map[string]int{PropEscapeSequences: 1})
	want := []Span{
		{0, 3, StyleDefault},
		{3, 7, StyleEscSeqUnknown},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
}

func TestRunNulInsideEscape(t *testing.T) {
	// A NUL terminating the parameter run poisons the rest of the line,
	// the same as a sequence that never terminates.
	text := "a\x1b[31\x00rest\n"
	spans := runLexer(t, text, map[string]int{PropEscapeSequences: 1})
	want := []Span{
		{0, 1, StyleDefault},
		{1, 11, StyleEscSeqUnknown},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
	checkCoverage(t, spans, 0, len(text))
}

func TestRunCharsetSelectEscapes(t *testing.T) {
	text := "ab\x1b(Bcd\x1b[31mz"
	spans := runLexer(t, text, map[string]int{PropEscapeSequences: 1})
	want := []Span{
		{0, 2, StyleDefault},
		{2, 5, StyleEscSeqUnknown},
		{5, 7, StyleDefault},
		{7, 12, StyleEscSeq},
		{12, 13, StyleEsRed},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
	checkCoverage(t, spans, 0, len(text))
}

func TestRunCoverageProperty(t *testing.T) {
	inputs := []string{
		"plain\nlines\nonly\n",
		"main.c:1:1: warning: w\n+diff\n<del\n",
		"\x1b[32mgreen\x1b[0m plain \x1b[38;5;196mred\n",
		"no trailing newline",
		"\x1b[31munterminated",
		"",
		"\r\n\r\n",
	}
	props := []map[string]int{
		nil,
		{PropEscapeSequences: 1},
		{PropValueSeparate: 1},
		{PropEscapeSequences: 1, PropValueSeparate: 1},
	}
	for _, text := range inputs {
		for _, p := range props {
			spans := runLexer(t, text, p)
			checkCoverage(t, spans, 0, len(text))
		}
	}
}

func TestRunIdempotent(t *testing.T) {
	text := "main.c:1:1: error: x\n\x1b[31mred\x1b[0m\n+add\n"
	props := map[string]int{PropEscapeSequences: 1, PropValueSeparate: 1}
	first := runLexer(t, text, props)
	second := runLexer(t, text, props)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reruns differ: %v vs %v", first, second)
	}
}

func TestRunSubRange(t *testing.T) {
	// Classification is per line within the requested range only.
	text := "junk\n+added line\n"
	styler := NewStringStyler(text)
	New().Run(5, len(text)-5, styler)
	want := []Span{{5, len(text), StyleDiffAddition}}
	if !reflect.DeepEqual(styler.Spans(), want) {
		t.Errorf("spans = %v, want %v", styler.Spans(), want)
	}
}

func TestStringStylerDefaults(t *testing.T) {
	styler := NewStringStyler("abc")
	if got := styler.PropertyInt(PropValueSeparate, 0); got != 0 {
		t.Errorf("PropertyInt default = %d, want 0", got)
	}
	styler.SetProperty(PropValueSeparate, 1)
	if got := styler.PropertyInt(PropValueSeparate, 0); got != 1 {
		t.Errorf("PropertyInt after set = %d, want 1", got)
	}
	if got := styler.SafeCharAt(99, ' '); got != ' ' {
		t.Errorf("SafeCharAt out of range = %q, want ' '", got)
	}
	if got := styler.CharAt(99); got != 0 {
		t.Errorf("CharAt out of range = %d, want 0", got)
	}
}
