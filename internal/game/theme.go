package game

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vancomm/minesweeper/internal/mines"
)

// Theme colours glyphs and end of game messages.
type Theme struct {
	glyphs   map[rune]lipgloss.Style
	hint     lipgloss.Style
	won      lipgloss.Style
	lost     lipgloss.Style
	problems lipgloss.Style
}

func NewTheme() *Theme {
	return &Theme{
		glyphs: map[rune]lipgloss.Style{
			mines.GlyphUnexplored: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			mines.GlyphMarked:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			mines.GlyphMine:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			mines.GlyphFree:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		},
		hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		won:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		lost:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		problems: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Theme methods can be called on a nil *Theme and return their input.

func (t *Theme) Glyph(g rune) string {
	if t == nil {
		return string(g)
	}
	if style, ok := t.glyphs[g]; ok {
		return style.Render(string(g))
	}
	return t.hint.Render(string(g))
}

func (t *Theme) Won(s string) string {
	if t == nil {
		return s
	}
	return t.won.Render(s)
}

func (t *Theme) Lost(s string) string {
	if t == nil {
		return s
	}
	return t.lost.Render(s)
}

func (t *Theme) Problem(s string) string {
	if t == nil {
		return s
	}
	return t.problems.Render(s)
}
