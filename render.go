package twisty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal colors for each face color.
var terminalColors = map[Color]lipgloss.Color{
	Grey:    lipgloss.Color("244"),
	Red:     lipgloss.Color("196"),
	Yellow:  lipgloss.Color("226"),
	Green:   lipgloss.Color("46"),
	White:   lipgloss.Color("255"),
	Blue:    lipgloss.Color("33"),
	Magenta: lipgloss.Color("201"),
}

var black = lipgloss.Color("16")

// TerminalColor returns the lipgloss color used to draw c.
func TerminalColor(c Color) lipgloss.Color {
	if tc, ok := terminalColors[c]; ok {
		return tc
	}
	return terminalColors[Grey]
}

// painter draws facelets of one frame.
type painter struct {
	r     *lipgloss.Renderer
	def   Definition
	frame Frame
}

func newPainter(r *lipgloss.Renderer, def Definition, frame Frame) painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return painter{r: r, def: def, frame: frame}
}

// cell draws the two-digit facelet label at pos. Facelets moved by the
// last rotation are drawn black on their face color.
func (p painter) cell(pos int) string {
	facelet, ok := p.frame.Facelet(pos)
	if !ok {
		return "??"
	}

	color := TerminalColor(p.def.Color(p.def.FaceName(facelet)))
	label := fmt.Sprintf("%02d", facelet)

	if p.frame.Changed(pos) {
		return p.r.NewStyle().Foreground(black).Background(color).Render(label)
	}
	return p.r.NewStyle().Foreground(color).Render(label)
}

// cells draws several positions at once, for use with fmt verbs.
func (p painter) cells(positions ...int) []any {
	out := make([]any, len(positions))
	for i, pos := range positions {
		out[i] = p.cell(pos)
	}
	return out
}

func (p painter) header() string {
	return "\nCurrent permutation : " + p.frame.Applied.Label() + "\n"
}

func (p painter) banner() string {
	if !p.frame.JustSolved() {
		return ""
	}

	dots := p.r.NewStyle().Foreground(TerminalColor(Red))
	text := p.r.NewStyle().Foreground(TerminalColor(Red)).Bold(true).Blink(true)

	var b strings.Builder
	b.WriteString(dots.Render("...................................") + "\n")
	b.WriteString(dots.Render("......") + text.Render("      Solved      ") + dots.Render("...........") + "\n")
	b.WriteString(dots.Render("...................................") + "\n")
	return b.String()
}
