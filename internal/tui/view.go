// internal/tui/view.go
//
// Rendering for the terminal front-end. The board is drawn as a grid of top
// values, a dot for a wild tile, with the cursor inverted and selected tiles
// highlighted. Below it: the running selection, the transcript of recent
// announcements, and the help view.

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/chrisnorman7/lucky-thirteen/internal/game"
)

const transcriptLines = 6

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	tileStyle = lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center)

	wildStyle     = tileStyle.Foreground(lipgloss.Color("240"))
	selectedStyle = tileStyle.Bold(true).Foreground(lipgloss.Color("42"))
	cursorStyle   = tileStyle.Bold(true).Reverse(true)

	// Cursor resting on a tile that is already part of the selection.
	cursorSelectedStyle = cursorStyle.Underline(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	transcriptStyle = lipgloss.NewStyle().
			Faint(true)

	winBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("220")).
			Padding(1, 2).
			Align(lipgloss.Center)

	winTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))
)

// View implements tea.Model.
func (m Model) View() string {
	title := "Lucky Thirteen"
	if m.engine.DailyBoard() {
		title += " • daily"
	}
	sections := []string{
		titleStyle.Render(title),
		"",
		m.viewBoard(),
		"",
	}
	if m.engine.State() == game.Won {
		sections = append(sections, m.viewWin(), "")
	} else {
		sections = append(sections, m.viewStatus(), "")
	}
	if m.transcript != nil {
		if lines := m.transcript.Tail(transcriptLines); len(lines) > 0 {
			sections = append(sections, transcriptStyle.Render(strings.Join(lines, "\n")), "")
		}
	}
	sections = append(sections, m.help.View(m.keys))

	joined := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, joined)
	}
	return joined
}

func (m Model) viewBoard() string {
	b := m.engine.Round().Board()
	sel := m.engine.Round().Selection()
	cursor := b.Cursor()

	rows := make([]string, 0, b.Size())
	for row := 0; row < b.Size(); row++ {
		cells := make([]string, 0, b.Size())
		for col := 0; col < b.Size(); col++ {
			p := game.Position{Row: row, Col: col}
			label := "·"
			top, ok := b.TileAt(p).Top()
			if ok {
				label = strconv.Itoa(top)
			}

			style := tileStyle
			switch {
			case p == cursor && sel.Contains(p):
				style = cursorSelectedStyle
			case p == cursor:
				style = cursorStyle
			case sel.Contains(p):
				style = selectedStyle
			case !ok:
				style = wildStyle
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) viewStatus() string {
	r := m.engine.Round()
	sum, count := r.Selection().Sum(r.Board())

	parts := []string{
		fmt.Sprintf("sum %d", sum),
		fmt.Sprintf("%d selected", count),
		r.Age().Round(time.Second).String(),
	}
	if m.recorder != nil {
		s := m.recorder.Snapshot()
		parts = append(parts, fmt.Sprintf("won %d", s.RoundsWon))
	}
	return statusStyle.Render(strings.Join(parts, " • "))
}

func (m Model) viewWin() string {
	body := winTitleStyle.Render("You win!") + "\n\n"
	if m.recorder != nil {
		s := m.recorder.Snapshot()
		body += fmt.Sprintf("Boards cleared: %d", s.RoundsWon)
		if s.BestClear > 0 {
			body += fmt.Sprintf("  •  best %s", s.BestClear.Round(time.Second))
		}
		body += "\n\n"
	}
	body += "Press space for a new board"
	return winBoxStyle.Render(body)
}
