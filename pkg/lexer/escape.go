package lexer

const csiIntroducer = "\x1b["

// sequenceEnd reports whether ch terminates a CSI parameter run: either the
// end of available text or a final byte in the 0x40-0x7E range.
func sequenceEnd(ch byte) bool {
	return ch == 0 || (ch >= '@' && ch <= '~')
}

func isSeparator(ch byte) bool {
	return ch == ';' || ch == ':'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenSeparator
)

// readToken scans the next token of a CSI parameter string. A maximal digit
// run is a Number, a single ';' or ':' is a Separator, and anything else
// (including a final byte) ends the structure. The returned count is how many
// bytes the token consumed; the tokenizer itself is stateless.
func readToken(seq []byte) (kind tokenKind, number int, consumed int) {
	if len(seq) == 0 || sequenceEnd(seq[0]) {
		return tokenEOF, 0, 0
	}
	if isSeparator(seq[0]) {
		return tokenSeparator, 0, 1
	}
	if !isDigit(seq[0]) {
		return tokenEOF, 0, 1
	}
	i := 0
	for i < len(seq) && isDigit(seq[i]) {
		number = number*10 + int(seq[i]-'0')
		i++
	}
	return tokenNumber, number, i
}

// styleFromSequence resolves the foreground style selected by an SGR
// parameter list. seq holds the bytes following the CSI introducer; scanning
// stops at the terminating byte. Malformed or unsupported sequences never
// fail, they resolve to StyleDefault.
func styleFromSequence(seq []byte) Style {
	kind, num, consumed := readToken(seq)

	// A leading text attribute (bold, underline, ...) may precede the
	// colour code, as in "1;31".
	if kind == tokenNumber && num <= 9 {
		seq = seq[consumed:]
		kind, _, consumed = readToken(seq)
		if kind != tokenSeparator {
			return StyleDefault
		}
		seq = seq[consumed:]
		kind, num, consumed = readToken(seq)
	}

	switch {
	case kind == tokenNumber && num == 38:
		// Extended foreground, only the indexed form "38;5;<n>" is
		// supported; truecolor "38;2;r;g;b" falls through to default.
		seq = seq[consumed:]
		kind, _, consumed = readToken(seq)
		if kind != tokenSeparator {
			return StyleDefault
		}
		seq = seq[consumed:]
		kind, num, consumed = readToken(seq)
		if kind != tokenNumber || num != 5 {
			return StyleDefault
		}
		seq = seq[consumed:]
		kind, _, consumed = readToken(seq)
		if kind != tokenSeparator {
			return StyleDefault
		}
		seq = seq[consumed:]
		kind, num, _ = readToken(seq)
		if kind != tokenNumber || num > 255 {
			return StyleDefault
		}
		return styleFromColorNumber(num)

	case kind == tokenNumber && num == 48:
		// Background colour, out of scope.
		return StyleDefault

	case kind == tokenNumber && num < 256:
		return styleFromColorNumber(num)
	}

	return StyleDefault
}

// findOtherEscape locates the first charset-select short escape (ESC followed
// by "(B", "(0", "(U" or "(K") in s. These show up in output captured from
// terminals and carry no colour information.
func findOtherEscape(s []byte) (pos int, ok bool) {
	for i := 0; i+2 < len(s); i++ {
		if s[i] != 0x1b || s[i+1] != '(' {
			continue
		}
		switch s[i+2] {
		case 'B', '0', 'U', 'K':
			return i, true
		}
	}
	return 0, false
}

// Length of a charset-select escape: ESC plus two bytes.
const otherEscapeLen = 3
