package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	colorcube "github.com/kenzierocks/color-cube-solver"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const (
	cellGlyph      = "██"
	highlightGlyph = "▓▓"
	blankCell      = "   "
)

var cellStyles = func() [colorcube.FaceCount]lipgloss.Style {
	var styles [colorcube.FaceCount]lipgloss.Style
	for i, c := range colorcube.SixColors {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return styles
}()

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := m.opts.Title
	if title == "" {
		title = "Color Cube"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.renderNet())
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf("Moves applied: %d   Queued: %d", m.Applied(), len(m.opts.Moves))))
	b.WriteString("\n")

	if m.current != nil {
		b.WriteString(fmt.Sprintf("Turning: %s %s\n", moveStyle.Render(m.current.Notation()), progressBar(m.frames, m.opts.MoveSpeed)))
	} else if m.Done() {
		b.WriteString(statusStyle.Render("All moves shown"))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	if m.solvedAt >= 0 {
		b.WriteString(solvedStyle.Render(fmt.Sprintf("SOLVED after %d moves", m.solvedAt)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space/enter/click: continue • q: quit"))
	b.WriteString("\n")

	return b.String()
}

// renderNet draws the cube unfolded with U above and D below the L F R B row.
func (m *Model) renderNet() string {
	c := m.tracker.Cube()
	size := c.Size()
	indent := strings.Repeat(blankCell, size)

	var b strings.Builder
	row := func(face colorcube.Face, y int) {
		for x := 0; x < size; x++ {
			glyph := cellGlyph
			if m.highlight[colorcube.Index(face, x, y, size)] {
				glyph = highlightGlyph
			}
			b.WriteString(cellStyles[c.Get(face, x, y)%colorcube.FaceCount].Render(glyph))
			b.WriteByte(' ')
		}
	}

	for y := 0; y < size; y++ {
		b.WriteString(indent)
		row(colorcube.Up, y)
		b.WriteString("\n")
	}
	for y := 0; y < size; y++ {
		for _, face := range []colorcube.Face{colorcube.Left, colorcube.Front, colorcube.Right, colorcube.Back} {
			row(face, y)
		}
		b.WriteString("\n")
	}
	for y := 0; y < size; y++ {
		b.WriteString(indent)
		row(colorcube.Down, y)
		b.WriteString("\n")
	}
	return b.String()
}

func progressBar(done, total int) string {
	if total < 1 {
		total = 1
	}
	if done > total {
		done = total
	}
	return "[" + strings.Repeat("#", done) + strings.Repeat("-", total-done) + "]"
}
