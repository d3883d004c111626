// Package lexer classifies lines of tool and terminal output (compiler
// diagnostics, diffs, stack traces, linker messages, shell errors) into
// semantic style categories and optionally interprets embedded ANSI escape
// sequences, emitting ordered, non-overlapping style spans that exactly cover
// the requested character range.
package lexer

import "bytes"

// Configuration properties read once per Run.
const (
	PropValueSeparate   = "lexer.terminal.value.separate"
	PropEscapeSequences = "lexer.terminal.escape.sequences"
)

// Styler is the text source and style sink the lexer runs against. Positions
// are absolute byte offsets into the host document; ColorTo marks the style
// applying from the previous boundary up to (excluding) end, and boundaries
// are monotonically increasing.
type Styler interface {
	// CharAt returns the byte at pos. Reading past the available text
	// returns 0.
	CharAt(pos int) byte
	// SafeCharAt returns the byte at pos, or def when pos is outside the
	// available text.
	SafeCharAt(pos int, def byte) byte
	// ColorTo closes the span [previous boundary, end) with the given
	// style and advances the boundary to end.
	ColorTo(end int, style Style)
	// StartAt initializes the styling cursor to a start position.
	StartAt(pos int)
	// StartSegment marks the start of a new styling segment.
	StartSegment(pos int)
	// PropertyInt looks up a named configuration value.
	PropertyInt(name string, def int) int
}

// Lexer is the classification engine. It keeps no state between runs; a
// single instance may serve any number of sequential invocations, each over
// an arbitrary sub-range of a larger document.
type Lexer struct {
	line []byte
}

func New() *Lexer {
	return &Lexer{}
}

// Run classifies the half-open character range [startPos, startPos+length)
// and reports spans to the styler. Lines are emitted strictly in increasing
// position order; a final line without a terminator is still classified.
func (lx *Lexer) Run(startPos, length int, styler Styler) {
	styler.StartAt(startPos)
	styler.StartSegment(startPos)

	valueSeparate := styler.PropertyInt(PropValueSeparate, 0) != 0
	escapeSequences := styler.PropertyInt(PropEscapeSequences, 0) != 0

	lx.line = lx.line[:0]
	for i := startPos; i < startPos+length; i++ {
		lx.line = append(lx.line, styler.CharAt(i))
		if atEOL(styler, i) {
			lx.colorLine(lx.line, i+1, styler, valueSeparate, escapeSequences)
			lx.line = lx.line[:0]
		}
	}
	if len(lx.line) > 0 {
		lx.colorLine(lx.line, startPos+length, styler, valueSeparate, escapeSequences)
	}
}

// atEOL reports an end-of-line boundary: '\n', or '\r' not followed by '\n'.
func atEOL(styler Styler, i int) bool {
	ch := styler.CharAt(i)
	return ch == '\n' || (ch == '\r' && styler.SafeCharAt(i+1, ' ') != '\n')
}

// colorLine classifies one buffered line ending (exclusively) at endPos and
// emits its spans. With escape interpretation enabled and a CSI introducer
// present, the line is split into escape runs and literal portions; the style
// resolved from an SGR sequence persists across runs until reset.
func (lx *Lexer) colorLine(line []byte, endPos int, styler Styler, valueSeparate, escapeSequences bool) {
	style, startValue := Classify(string(line))

	if escapeSequences && bytes.Contains(line, []byte(csiIntroducer)) {
		portion := line
		portionStart := endPos - len(line)
		portionStyle := style
		for {
			idx := bytes.Index(portion, []byte(csiIntroducer))
			if idx < 0 {
				break
			}
			if idx > 0 {
				colorLiteral(portion[:idx], portionStart, portionStyle, styler)
			}
			j := idx + len(csiIntroducer)
			for j < len(portion) && !sequenceEnd(portion[j]) {
				j++
			}
			if j >= len(portion) {
				// The sequence never reached a terminating byte:
				// unknown to the end of the line, stop scanning.
				styler.ColorTo(endPos, StyleEscSeqUnknown)
				return
			}
			seqEnd := portionStart + j + 1
			switch portion[j] {
			case 0:
				// A NUL inside the parameters ends the line's
				// structure just like running out of bytes does.
				styler.ColorTo(endPos, StyleEscSeqUnknown)
				return
			case 'm': // colour command
				styler.ColorTo(seqEnd, StyleEscSeq)
				portionStyle = styleFromSequence(portion[idx+len(csiIntroducer):])
			case 'K': // erase to end of line, ignore
				styler.ColorTo(seqEnd, StyleEscSeq)
			default:
				styler.ColorTo(seqEnd, StyleEscSeqUnknown)
				portionStyle = style
			}
			portion = portion[j+1:]
			portionStart = seqEnd
		}
		if portionStart < endPos {
			styler.ColorTo(endPos, portionStyle)
		}
		return
	}

	if valueSeparate && startValue >= 0 {
		styler.ColorTo(endPos-(len(line)-startValue), style)
		styler.ColorTo(endPos, StyleValue)
		return
	}
	styler.ColorTo(endPos, style)
}

// colorLiteral emits the literal text before a CSI run, carving out any
// charset-select short escapes as unknown-escape spans.
func colorLiteral(text []byte, pos int, style Style, styler Styler) {
	for len(text) > 0 {
		escPos, ok := findOtherEscape(text)
		if !ok {
			styler.ColorTo(pos+len(text), style)
			return
		}
		if escPos > 0 {
			styler.ColorTo(pos+escPos, style)
			pos += escPos
		}
		styler.ColorTo(pos+otherEscapeLen, StyleEscSeqUnknown)
		pos += otherEscapeLen
		text = text[escPos+otherEscapeLen:]
	}
}
