package lexer

// Span is one contiguous styled range, half-open over byte offsets.
type Span struct {
	Start int
	End   int
	Style Style
}

// StringStyler is a Styler backed by an in-memory string. It records the
// spans a run produces and carries the configuration properties the lexer
// reads. The zero boundary invariants of Styler hold: ColorTo calls that do
// not advance the boundary are dropped.
type StringStyler struct {
	text     string
	props    map[string]int
	spans    []Span
	boundary int
}

func NewStringStyler(text string) *StringStyler {
	return &StringStyler{
		text:  text,
		props: make(map[string]int),
	}
}

// SetProperty sets a named configuration value, e.g. PropEscapeSequences.
func (s *StringStyler) SetProperty(name string, value int) {
	s.props[name] = value
}

func (s *StringStyler) CharAt(pos int) byte {
	return s.SafeCharAt(pos, 0)
}

func (s *StringStyler) SafeCharAt(pos int, def byte) byte {
	if pos < 0 || pos >= len(s.text) {
		return def
	}
	return s.text[pos]
}

func (s *StringStyler) ColorTo(end int, style Style) {
	if end <= s.boundary {
		return
	}
	s.spans = append(s.spans, Span{Start: s.boundary, End: end, Style: style})
	s.boundary = end
}

func (s *StringStyler) StartAt(pos int) {
	s.boundary = pos
}

func (s *StringStyler) StartSegment(pos int) {
	s.boundary = pos
}

func (s *StringStyler) PropertyInt(name string, def int) int {
	if v, ok := s.props[name]; ok {
		return v
	}
	return def
}

// Spans returns the spans recorded so far, in emission order.
func (s *StringStyler) Spans() []Span {
	return s.spans
}

// Reset clears recorded spans so the styler can be reused for another run.
func (s *StringStyler) Reset() {
	s.spans = s.spans[:0]
	s.boundary = 0
}
