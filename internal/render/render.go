package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Hanaasagi/termlex/pkg/lexer"
	"github.com/fatih/color"
)

// namedColors maps configuration color names to fatih/color attributes.
var namedColors = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright_black":   color.FgHiBlack,
	"bright_red":     color.FgHiRed,
	"bright_green":   color.FgHiGreen,
	"bright_yellow":  color.FgHiYellow,
	"bright_blue":    color.FgHiBlue,
	"bright_magenta": color.FgHiMagenta,
	"bright_cyan":    color.FgHiCyan,
	"bright_white":   color.FgHiWhite,
}

func defaultTheme() map[lexer.Style]*color.Color {
	diagnostic := color.New(color.FgRed)
	theme := map[lexer.Style]*color.Color{
		lexer.StyleCmd:             color.New(color.Bold, color.FgBlue),
		lexer.StyleDiffAddition:    color.New(color.FgGreen),
		lexer.StyleDiffDeletion:    color.New(color.FgRed),
		lexer.StyleDiffChanged:     color.New(color.FgMagenta),
		lexer.StyleDiffMessage:     color.New(color.FgCyan),
		lexer.StyleCtag:            color.New(color.FgCyan),
		lexer.StyleValue:           color.New(color.FgHiBlue),
		lexer.StyleGccWarning:      color.New(color.FgYellow),
		lexer.StyleGccNote:         color.New(color.FgCyan),
		lexer.StyleGccIncludedFrom: color.New(color.FgCyan),
		lexer.StyleGccExcerpt:      color.New(color.Faint),
		lexer.StyleEscSeq:          color.New(color.Faint),
		lexer.StyleEscSeqUnknown:   color.New(color.Faint),

		lexer.StyleEsBlack:         color.New(color.FgBlack),
		lexer.StyleEsRed:           color.New(color.FgRed),
		lexer.StyleEsGreen:         color.New(color.FgGreen),
		lexer.StyleEsBrown:         color.New(color.FgYellow),
		lexer.StyleEsBlue:          color.New(color.FgBlue),
		lexer.StyleEsMagenta:       color.New(color.FgMagenta),
		lexer.StyleEsCyan:          color.New(color.FgCyan),
		lexer.StyleEsGray:          color.New(color.FgWhite),
		lexer.StyleEsDarkGray:      color.New(color.FgHiBlack),
		lexer.StyleEsBrightRed:     color.New(color.FgHiRed),
		lexer.StyleEsBrightGreen:   color.New(color.FgHiGreen),
		lexer.StyleEsYellow:        color.New(color.FgHiYellow),
		lexer.StyleEsBrightBlue:    color.New(color.FgHiBlue),
		lexer.StyleEsBrightMagenta: color.New(color.FgHiMagenta),
		lexer.StyleEsBrightCyan:    color.New(color.FgHiCyan),
		lexer.StyleEsWhite:         color.New(color.FgHiWhite),
	}
	for _, style := range []lexer.Style{
		lexer.StylePython, lexer.StyleGcc, lexer.StyleMs, lexer.StyleBorland,
		lexer.StylePerl, lexer.StyleNet, lexer.StyleLua, lexer.StylePhp,
		lexer.StyleElf, lexer.StyleIfc, lexer.StyleIfort, lexer.StyleAbsf,
		lexer.StyleTidy, lexer.StyleJavaStack, lexer.StyleBash,
	} {
		theme[style] = diagnostic
	}
	return theme
}

// Renderer writes classified text to a terminal, mapping each style to a
// color. Styles without a theme entry pass through unstyled.
type Renderer struct {
	theme   map[lexer.Style]*color.Color
	enabled bool
}

func New(enabled bool) *Renderer {
	return &Renderer{
		theme:   defaultTheme(),
		enabled: enabled,
	}
}

// SetStyleColor overrides the theme entry for a style, both identified by
// their configuration names.
func (r *Renderer) SetStyleColor(styleName, colorName string) error {
	style, ok := lexer.StyleByName(styleName)
	if !ok {
		return fmt.Errorf("unknown style name: %q", styleName)
	}
	attr, ok := namedColors[strings.ToLower(colorName)]
	if !ok {
		return fmt.Errorf("unknown color name: %q", colorName)
	}
	r.theme[style] = color.New(attr)
	return nil
}

// Render writes the spans of text to w in order. With colors enabled, escape
// sequence spans have their ESC bytes made visible instead of being replayed
// into the terminal.
func (r *Renderer) Render(w io.Writer, text string, spans []lexer.Span) error {
	for _, span := range spans {
		segment := text[span.Start:span.End]
		c := r.theme[span.Style]
		if !r.enabled || c == nil {
			if _, err := io.WriteString(w, segment); err != nil {
				return fmt.Errorf("writing span: %w", err)
			}
			continue
		}
		if span.Style == lexer.StyleEscSeq || span.Style == lexer.StyleEscSeqUnknown {
			segment = strings.ReplaceAll(segment, "\x1b", "␛")
		}
		if _, err := c.Fprint(w, segment); err != nil {
			return fmt.Errorf("writing span: %w", err)
		}
	}
	return nil
}
