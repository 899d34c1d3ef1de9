package view

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cbodonnell/codewords/pkg/game"
	"github.com/cbodonnell/codewords/pkg/game/types"
	"github.com/cbodonnell/codewords/pkg/state"
	"github.com/mattn/go-isatty"
)

const (
	DefaultColumns = 5

	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
)

var categoryColors = map[types.Category]string{
	types.CategoryRed:      "\x1b[31m",
	types.CategoryBlue:     "\x1b[34m",
	types.CategoryGreen:    "\x1b[32m",
	types.CategoryNeutral:  "\x1b[33m",
	types.CategoryAssassin: "\x1b[35m",
}

// Renderer draws the session and board as plain text.
type Renderer struct {
	out     io.Writer
	columns int
	color   bool
}

type NewRendererOptions struct {
	Out io.Writer
	// Columns of the word grid, defaults to DefaultColumns
	Columns int
	// Color forces ANSI colors on or off. When nil, colors are used only
	// when Out is a terminal.
	Color *bool
}

func NewRenderer(opts NewRendererOptions) *Renderer {
	if opts.Columns <= 0 {
		opts.Columns = DefaultColumns
	}
	color := false
	if opts.Color != nil {
		color = *opts.Color
	} else if f, ok := opts.Out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Renderer{
		out:     opts.Out,
		columns: opts.Columns,
		color:   color,
	}
}

// Render writes one frame for session and g.
func (r *Renderer) Render(session state.Session, g types.Game) error {
	b := &strings.Builder{}

	r.writeHeader(b, session)

	if !g.Loaded() {
		b.WriteString("no game loaded\n")
		_, err := io.WriteString(r.out, b.String())
		return err
	}

	counts, _ := game.CountTiles(g)
	r.writeCounts(b, counts)
	r.writeBoard(b, session, g)

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) writeHeader(b *strings.Builder, session state.Session) {
	status := "disconnected"
	if session.Connected {
		status = "connected"
	}
	room := session.Room
	if room == "" {
		room = "-"
	}
	username := session.Username
	if username == "" {
		username = "-"
	}
	fmt.Fprintf(b, "room: %s  user: %s  turn: %s  %s\n", room, username, r.paint(session.Turn, session.Turn.String()), status)
	if session.Error != "" {
		fmt.Fprintf(b, "error: %s\n", session.Error)
	}
}

func (r *Renderer) writeCounts(b *strings.Builder, counts game.TileCounts) {
	categories := append(append([]types.Category{}, types.TeamCategories...), types.CategoryAssassin)

	var parts []string
	for _, category := range categories {
		total, ok := counts.Total[category]
		if !ok {
			continue
		}
		parts = append(parts, r.paint(category, fmt.Sprintf("%s %d/%d", category, counts.Flipped[category], total)))
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteString("\n")

	if !counts.Won() {
		return
	}
	if winner, ok := counts.Winner(); ok {
		fmt.Fprintf(b, "%s (%s cleared the board)\n", r.bold("GAME OVER"), winner)
	} else {
		fmt.Fprintf(b, "%s (assassin revealed)\n", r.bold("GAME OVER"))
	}
}

// writeBoard lays the words out alphabetically. Revealed words are upper
// cased with the category they were revealed as; the solution is only shown
// for the spymaster.
func (r *Renderer) writeBoard(b *strings.Builder, session state.Session, g types.Game) {
	words := game.WordList(g)
	sort.Strings(words)

	cells := make([]string, len(words))
	categories := make([]types.Category, len(words))
	width := 0
	for i, word := range words {
		cells[i] = word
		if revealedAs, ok := g.Board[word]; ok {
			cells[i] = strings.ToUpper(word) + "[" + string(revealedAs) + "]"
			categories[i] = revealedAs
		} else if session.SpymasterReveal {
			cells[i] = word + "(" + string(g.Solution[word]) + ")"
			categories[i] = g.Solution[word]
		}
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}

	for i, cell := range cells {
		b.WriteString(r.paint(categories[i], cell))
		if (i+1)%r.columns == 0 || i == len(cells)-1 {
			b.WriteString("\n")
			continue
		}
		b.WriteString(strings.Repeat(" ", width-len(cell)+1))
	}
}

func (r *Renderer) paint(category types.Category, s string) string {
	if !r.color {
		return s
	}
	code, ok := categoryColors[category]
	if !ok {
		return s
	}
	return code + s + ansiReset
}

func (r *Renderer) bold(s string) string {
	if !r.color {
		return s
	}
	return ansiBold + s + ansiReset
}
