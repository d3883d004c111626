package view

import (
	"fmt"

	"github.com/Hanaasagi/termlex/pkg/lexer"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var styleColors = map[lexer.Style]tcell.Color{
	lexer.StylePython:          tcell.ColorRed,
	lexer.StyleGcc:             tcell.ColorRed,
	lexer.StyleMs:              tcell.ColorRed,
	lexer.StyleCmd:             tcell.ColorBlue,
	lexer.StyleBorland:         tcell.ColorRed,
	lexer.StylePerl:            tcell.ColorRed,
	lexer.StyleNet:             tcell.ColorRed,
	lexer.StyleLua:             tcell.ColorRed,
	lexer.StyleCtag:            tcell.ColorDarkCyan,
	lexer.StyleDiffChanged:     tcell.ColorDarkMagenta,
	lexer.StyleDiffAddition:    tcell.ColorGreen,
	lexer.StyleDiffDeletion:    tcell.ColorRed,
	lexer.StyleDiffMessage:     tcell.ColorDarkCyan,
	lexer.StylePhp:             tcell.ColorRed,
	lexer.StyleElf:             tcell.ColorRed,
	lexer.StyleIfc:             tcell.ColorRed,
	lexer.StyleIfort:           tcell.ColorRed,
	lexer.StyleAbsf:            tcell.ColorRed,
	lexer.StyleTidy:            tcell.ColorRed,
	lexer.StyleJavaStack:       tcell.ColorRed,
	lexer.StyleValue:           tcell.ColorBlue,
	lexer.StyleGccIncludedFrom: tcell.ColorDarkCyan,
	lexer.StyleEscSeq:          tcell.ColorGray,
	lexer.StyleEscSeqUnknown:   tcell.ColorGray,
	lexer.StyleGccExcerpt:      tcell.ColorGray,
	lexer.StyleBash:            tcell.ColorRed,
	lexer.StyleGccWarning:      tcell.ColorYellow,
	lexer.StyleGccNote:         tcell.ColorDarkCyan,

	lexer.StyleEsBlack:         tcell.ColorBlack,
	lexer.StyleEsRed:           tcell.ColorMaroon,
	lexer.StyleEsGreen:         tcell.ColorGreen,
	lexer.StyleEsBrown:         tcell.ColorOlive,
	lexer.StyleEsBlue:          tcell.ColorNavy,
	lexer.StyleEsMagenta:       tcell.ColorPurple,
	lexer.StyleEsCyan:          tcell.ColorTeal,
	lexer.StyleEsGray:          tcell.ColorSilver,
	lexer.StyleEsDarkGray:      tcell.ColorGray,
	lexer.StyleEsBrightRed:     tcell.ColorRed,
	lexer.StyleEsBrightGreen:   tcell.ColorLime,
	lexer.StyleEsYellow:        tcell.ColorYellow,
	lexer.StyleEsBrightBlue:    tcell.ColorBlue,
	lexer.StyleEsBrightMagenta: tcell.ColorFuchsia,
	lexer.StyleEsBrightCyan:    tcell.ColorAqua,
	lexer.StyleEsWhite:         tcell.ColorWhite,
}

func tcellStyle(s lexer.Style) tcell.Style {
	if c, ok := styleColors[s]; ok {
		return tcell.StyleDefault.Foreground(c)
	}
	return tcell.StyleDefault
}

// Cell is one rendered character with its resolved screen style.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer lays classified text out as rows of styled cells for the pager.
type Buffer struct {
	rows [][]Cell
}

// NewBuffer splits text into rows and attaches the style of the span covering
// each character. Line terminators are consumed, not displayed.
func NewBuffer(text string, spans []lexer.Span) *Buffer {
	styleFor := styleLookup(spans)

	var rows [][]Cell
	var row []Cell
	for i, r := range text {
		switch r {
		case '\n':
			rows = append(rows, row)
			row = nil
		case '\r':
			if i+1 >= len(text) || text[i+1] != '\n' {
				rows = append(rows, row)
				row = nil
			}
		default:
			row = append(row, Cell{Rune: r, Style: tcellStyle(styleFor(i))})
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return &Buffer{rows: rows}
}

// styleLookup returns a lookup over the ordered span list; positions must be
// queried in non-decreasing order.
func styleLookup(spans []lexer.Span) func(pos int) lexer.Style {
	i := 0
	return func(pos int) lexer.Style {
		for i < len(spans) && pos >= spans[i].End {
			i++
		}
		if i < len(spans) && pos >= spans[i].Start {
			return spans[i].Style
		}
		return lexer.StyleDefault
	}
}

// Lines returns the number of rows in the buffer.
func (b *Buffer) Lines() int {
	return len(b.rows)
}

// Draw renders the rows starting at top onto the screen, clipping to the
// screen size and advancing by display width per rune.
func (b *Buffer) Draw(screen tcell.Screen, top int) {
	width, height := screen.Size()
	screen.Clear()
	for y := 0; y < height && top+y < len(b.rows); y++ {
		x := 0
		for _, cell := range b.rows[top+y] {
			if x >= width {
				break
			}
			screen.SetContent(x, y, cell.Rune, nil, cell.Style)
			w := runewidth.RuneWidth(cell.Rune)
			if w <= 0 {
				w = 1
			}
			x += w
		}
	}
}

// Present shows the classified text in a full-screen scrollable pager.
// Returns when the user quits.
func Present(text string, spans []lexer.Span) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	return eventLoop(screen, NewBuffer(text, spans))
}

func eventLoop(screen tcell.Screen, buffer *Buffer) error {
	top := 0
	for {
		buffer.Draw(screen, top)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			_, height := screen.Size()
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				top++
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				top--
			case ev.Key() == tcell.KeyPgDn || ev.Rune() == ' ':
				top += height
			case ev.Key() == tcell.KeyPgUp:
				top -= height
			case ev.Rune() == 'g':
				top = 0
			case ev.Rune() == 'G':
				top = buffer.Lines() - height
			}
			if max := buffer.Lines() - 1; top > max {
				top = max
			}
			if top < 0 {
				top = 0
			}
		}
	}
}
