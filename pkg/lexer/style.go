package lexer

// Style identifies how a classified span of terminal output should be
// rendered. The numeric values are stable and form the contract with style
// sinks; they must not be renumbered.
type Style int

const (
	StyleDefault         Style = 0
	StylePython          Style = 1
	StyleGcc             Style = 2
	StyleMs              Style = 3
	StyleCmd             Style = 4
	StyleBorland         Style = 5
	StylePerl            Style = 6
	StyleNet             Style = 7
	StyleLua             Style = 8
	StyleCtag            Style = 9
	StyleDiffChanged     Style = 10
	StyleDiffAddition    Style = 11
	StyleDiffDeletion    Style = 12
	StyleDiffMessage     Style = 13
	StylePhp             Style = 14
	StyleElf             Style = 15
	StyleIfc             Style = 16
	StyleIfort           Style = 17
	StyleAbsf            Style = 18
	StyleTidy            Style = 19
	StyleJavaStack       Style = 20
	StyleValue           Style = 21
	StyleGccIncludedFrom Style = 22
	StyleEscSeq          Style = 23
	StyleEscSeqUnknown   Style = 24
	StyleGccExcerpt      Style = 25
	StyleBash            Style = 26

	StyleEsBlack         Style = 40
	StyleEsRed           Style = 41
	StyleEsGreen         Style = 42
	StyleEsBrown         Style = 43
	StyleEsBlue          Style = 44
	StyleEsMagenta       Style = 45
	StyleEsCyan          Style = 46
	StyleEsGray          Style = 47
	StyleEsDarkGray      Style = 48
	StyleEsBrightRed     Style = 49
	StyleEsBrightGreen   Style = 50
	StyleEsYellow        Style = 51
	StyleEsBrightBlue    Style = 52
	StyleEsBrightMagenta Style = 53
	StyleEsBrightCyan    Style = 54
	StyleEsWhite         Style = 55

	StyleGccWarning Style = 56
	StyleGccNote    Style = 57
)

var styleNames = map[Style]string{
	StyleDefault:         "default",
	StylePython:          "python",
	StyleGcc:             "gcc",
	StyleMs:              "ms",
	StyleCmd:             "cmd",
	StyleBorland:         "borland",
	StylePerl:            "perl",
	StyleNet:             "net",
	StyleLua:             "lua",
	StyleCtag:            "ctag",
	StyleDiffChanged:     "diff_changed",
	StyleDiffAddition:    "diff_addition",
	StyleDiffDeletion:    "diff_deletion",
	StyleDiffMessage:     "diff_message",
	StylePhp:             "php",
	StyleElf:             "elf",
	StyleIfc:             "ifc",
	StyleIfort:           "ifort",
	StyleAbsf:            "absf",
	StyleTidy:            "tidy",
	StyleJavaStack:       "java_stack",
	StyleValue:           "value",
	StyleGccIncludedFrom: "gcc_included_from",
	StyleEscSeq:          "escape_sequence",
	StyleEscSeqUnknown:   "escape_sequence_unknown",
	StyleGccExcerpt:      "gcc_excerpt",
	StyleBash:            "bash",
	StyleEsBlack:         "es_black",
	StyleEsRed:           "es_red",
	StyleEsGreen:         "es_green",
	StyleEsBrown:         "es_brown",
	StyleEsBlue:          "es_blue",
	StyleEsMagenta:       "es_magenta",
	StyleEsCyan:          "es_cyan",
	StyleEsGray:          "es_gray",
	StyleEsDarkGray:      "es_dark_gray",
	StyleEsBrightRed:     "es_bright_red",
	StyleEsBrightGreen:   "es_bright_green",
	StyleEsYellow:        "es_yellow",
	StyleEsBrightBlue:    "es_bright_blue",
	StyleEsBrightMagenta: "es_bright_magenta",
	StyleEsBrightCyan:    "es_bright_cyan",
	StyleEsWhite:         "es_white",
	StyleGccWarning:      "gcc_warning",
	StyleGccNote:         "gcc_note",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// StyleByName resolves a configuration key back to its style.
func StyleByName(name string) (Style, bool) {
	for style, n := range styleNames {
		if n == name {
			return style, true
		}
	}
	return StyleDefault, false
}
