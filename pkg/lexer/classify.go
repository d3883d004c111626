package lexer

import "strings"

// Classify maps one line of tool output to a style. The line is everything
// between two end-of-line boundaries, terminator bytes included, exactly as
// the lexer buffers it. valueStart is the offset where a trailing value (line
// number and message of a GCC-style diagnostic) begins, or -1 when the shape
// has no such split point.
func Classify(line string) (style Style, valueStart int) {
	if line == "" {
		return StyleDefault, -1
	}
	for _, rule := range lineRules {
		if rule.match(line) {
			return rule.style, -1
		}
	}
	return scanLine(line)
}

// lineRules are literal-pattern recognizers checked in strict priority order;
// the first match wins. Diff markers and compiler-specific prefixes come
// before the generic scan so that e.g. a leading '<' is never mistaken for a
// file name.
var lineRules = []struct {
	match func(line string) bool
	style Style
}{
	// Command or return status echo.
	{func(s string) bool { return s[0] == '>' }, StyleCmd},
	{func(s string) bool { return s[0] == '<' }, StyleDiffDeletion},
	{func(s string) bool { return s[0] == '!' }, StyleDiffChanged},
	{func(s string) bool { return strings.HasPrefix(s, "+++ ") }, StyleDiffMessage},
	{func(s string) bool { return s[0] == '+' }, StyleDiffAddition},
	{func(s string) bool { return strings.HasPrefix(s, "--- ") }, StyleDiffMessage},
	// Probably a CMake status line.
	{func(s string) bool { return strings.HasPrefix(s, "-- ") }, StyleDefault},
	// Leading '-' that is not a file permission listing.
	{func(s string) bool {
		return s[0] == '-' && !strings.HasPrefix(s, "-rw") && !strings.HasPrefix(s, "-r-")
	}, StyleDiffDeletion},
	// Absoft Pro Fortran 90/95 v8.2.
	{func(s string) bool { return strings.HasPrefix(s, "cf90-") }, StyleAbsf},
	// Intel Fortran Compiler v8.0.
	{func(s string) bool { return strings.HasPrefix(s, "fortcom:") }, StyleIfort},
	{func(s string) bool {
		return strings.Contains(s, `File "`) && strings.Contains(s, ", line ")
	}, StylePython},
	{func(s string) bool {
		return strings.Contains(s, " in ") && strings.Contains(s, " on line ")
	}, StylePhp},
	// Intel Fortran Compiler: Error/Warning ... at (...) : ...
	{func(s string) bool {
		if !strings.HasPrefix(s, "Error ") && !strings.HasPrefix(s, "Warning ") {
			return false
		}
		at := strings.Index(s, " at (")
		colon := strings.Index(s, ") : ")
		return at >= 0 && colon >= 0 && at < colon
	}, StyleIfc},
	// Borland error and warning messages.
	{func(s string) bool { return strings.HasPrefix(s, "Error ") }, StyleBorland},
	{func(s string) bool { return strings.HasPrefix(s, "Warning ") }, StyleBorland},
	// Lua 4 error message.
	{func(s string) bool {
		return strings.Contains(s, "at line ") && strings.Contains(s, "file ")
	}, StyleLua},
	// Perl: <message> at <file> line <line>
	{func(s string) bool {
		at := strings.Index(s, " at ")
		line := strings.Index(s, " line ")
		return at >= 0 && line >= 0 && at+4 < line
	}, StylePerl},
	// .NET traceback.
	{func(s string) bool {
		return strings.HasPrefix(s, "   at ") && strings.Contains(s, ":line ")
	}, StyleNet},
	// Essential Lahey Fortran.
	{func(s string) bool {
		return strings.HasPrefix(s, "Line ") && strings.Contains(s, ", file ")
	}, StyleElf},
	// HTML tidy: line 42 column 1
	{func(s string) bool {
		return strings.HasPrefix(s, "line ") && strings.Contains(s, " column ")
	}, StyleTidy},
	// Java stack trace.
	{func(s string) bool {
		return strings.HasPrefix(s, "\tat ") && strings.Contains(s, "(") &&
			strings.Contains(s, ".java:")
	}, StyleJavaStack},
	// GCC include path leading up to an error.
	{func(s string) bool {
		return strings.HasPrefix(s, "In file included from ") ||
			strings.HasPrefix(s, "                 from ")
	}, StyleGccIncludedFrom},
	// NMAKE : fatal error <code>: <program> : return code <return>
	{func(s string) bool { return strings.HasPrefix(s, "NMAKE : fatal error") }, StyleMs},
	// Microsoft linker diagnostics.
	{func(s string) bool {
		return strings.Contains(s, "warning LNK") || strings.Contains(s, "error LNK")
	}, StyleMs},
	// Bash: <filename>: line <line>:<message>
	{isBashDiagnostic, StyleBash},
	// GCC code excerpt and pointer lines:
	//    73 |   GTimeVal last_popdown;
	//       |            ^~~~~~~~~~~~
	{isGccExcerpt, StyleGccExcerpt},
}

func isBashDiagnostic(s string) bool {
	const mark = ": line "
	idx := strings.Index(s, mark)
	if idx < 0 {
		return false
	}
	rest := s[idx+len(mark):]
	if rest == "" || !isDigit(rest[0]) {
		return false
	}
	i := 0
	for i < len(rest) && isDigit(rest[i]) {
		i++
	}
	return i < len(rest) && rest[i] == ':'
}

func isGccExcerpt(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' && i+2 < len(s) && s[i+1] == '|' && (s[i+2] == ' ' || s[i+2] == '+') {
			return true
		}
		if !(s[i] == ' ' || s[i] == '+' || isDigit(s[i])) {
			return false
		}
	}
	return true
}

// scanState tracks the generic scan, which models three candidate grammars
// over a single forward pass:
//
//	GCC:       <filename>:<line>[:<column>]:<message>
//	Microsoft: <filename>(<line>[,<column>])[ ]:<message>
//	CTags:     <identifier>\t<filename>\t<message>
//
// plus the Lua 5.1 "<exe>: <filename>:<line>:" shape, which shares the GCC
// grammar behind a leading-colon flag.
type scanState int

const (
	scanInitial scanState = iota
	scanGccStart
	scanGccDigit
	scanGccColumn
	scanGcc
	scanMsStart
	scanMsDigit
	scanMsBracket
	scanMsVc
	scanMsDigitComma
	scanMsDotNet
	scanCtagsStart
	scanCtagsFile
	scanCtagsStartString
	scanCtagsStringDollar
	scanCtags
	scanUnrecognized
)

var msDiagnosticWords = []string{"error", "warning", "fatal", "catastrophic", "note", "remark"}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func inListCaseInsensitive(word string, list []string) bool {
	for _, candidate := range list {
		if strings.EqualFold(word, candidate) {
			return true
		}
	}
	return false
}

func scanLine(line string) (Style, int) {
	initialTab := line[0] == '\t'
	initialColonPart := false
	// CTags needs an identifier with no spaces before the first tab.
	canBeCtags := !initialTab
	startValue := -1
	state := scanInitial

scan:
	for i := 0; i < len(line); i++ {
		ch := line[i]
		chNext := byte(' ')
		if i+1 < len(line) {
			chNext = line[i+1]
		}
		switch state {
		case scanInitial:
			switch {
			case ch == ':':
				// May be GCC, or Lua 5 (same shape with a tab
				// prefix). Not fully accurate for file names
				// that themselves contain ':'.
				if chNext != '\\' && chNext != '/' && chNext != ' ' {
					state = scanGccStart
				} else if chNext == ' ' {
					initialColonPart = true
				}
			case ch == '(' && is1To9(chNext) && !initialTab:
				// May be Microsoft. Rejecting '0' removes most
				// phone numbers.
				state = scanMsStart
			case ch == '\t' && canBeCtags:
				state = scanCtagsStart
			case ch == ' ':
				canBeCtags = false
			}
		case scanGccStart: // <filename>:
			if ch == '-' || isDigit(ch) {
				state = scanGccDigit
			} else {
				state = scanUnrecognized
			}
		case scanGccDigit: // <filename>:<line>
			if ch == ':' {
				state = scanGccColumn
				startValue = i + 1
			} else if !isDigit(ch) {
				state = scanUnrecognized
			}
		case scanGccColumn: // <filename>:<line>:<column>
			if !isDigit(ch) {
				state = scanGcc
				if ch == ':' {
					startValue = i + 1
				}
				break scan
			}
		case scanMsStart: // <filename>(
			if isDigit(ch) {
				state = scanMsDigit
			} else {
				state = scanUnrecognized
			}
		case scanMsDigit: // <filename>(<line>
			if ch == ',' {
				state = scanMsDigitComma
			} else if ch == ')' {
				state = scanMsBracket
			} else if ch != ' ' && !isDigit(ch) {
				state = scanUnrecognized
			}
		case scanMsBracket: // <filename>(<line>)
			if ch == ' ' && chNext == ':' {
				state = scanMsVc
			} else if (ch == ':' && chNext == ' ') || ch == ' ' {
				// Possibly Delphi: a bare space instead of " :"
				// before the diagnostic word.
				step := 2
				if ch == ' ' {
					step = 1
				}
				word := make([]byte, 0, 16)
				for j := i + step; j < len(line) && isLetter(line[j]) && len(word) < 511; j++ {
					word = append(word, line[j])
				}
				if inListCaseInsensitive(string(word), msDiagnosticWords) {
					state = scanMsVc
				} else {
					state = scanUnrecognized
				}
			} else {
				state = scanUnrecognized
			}
		case scanMsDigitComma: // <filename>(<line>,
			if ch == ')' {
				state = scanMsDotNet
				break scan
			} else if ch != ' ' && !isDigit(ch) {
				state = scanUnrecognized
			}
		case scanCtagsStart:
			if ch == '\t' {
				state = scanCtagsFile
			}
		case scanCtagsFile:
			if line[i-1] == '\t' && ((ch == '/' && chNext == '^') || isDigit(ch)) {
				state = scanCtags
				break scan
			} else if ch == '/' && chNext == '^' {
				state = scanCtagsStartString
			}
		case scanCtagsStartString:
			if ch == '$' && chNext == '/' {
				state = scanCtagsStringDollar
				break scan
			}
		}
	}

	switch {
	case state == scanGcc:
		if initialColonPart {
			return StyleLua, startValue
		}
		if strings.Contains(line, "warning:") {
			return StyleGccWarning, startValue
		}
		if strings.Contains(line, "note:") {
			return StyleGccNote, startValue
		}
		return StyleGcc, startValue
	case state == scanMsVc || state == scanMsDotNet:
		return StyleMs, startValue
	case state == scanCtags || state == scanCtagsStringDollar:
		return StyleCtag, startValue
	case initialColonPart && strings.Contains(line, ": warning C"):
		// MSVC warning without a line number.
		return StyleMs, startValue
	}
	return StyleDefault, startValue
}

func is1To9(ch byte) bool {
	return ch >= '1' && ch <= '9'
}
