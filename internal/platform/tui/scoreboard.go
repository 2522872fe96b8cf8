package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// RenderScoreboard formats the best runs and the history summary for
// printing.
func RenderScoreboard(runs []storage.Run, stats storage.Stats) string {
	return renderRuns("High Scores - Invaders", runs, stats)
}

// RenderRecentRuns formats the latest runs, newest first.
func RenderRecentRuns(runs []storage.Run, stats storage.Stats) string {
	return renderRuns("Recent Runs - Invaders", runs, stats)
}

func renderRuns(title string, runs []storage.Run, stats storage.Stats) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(runs) == 0 {
		b.WriteString("No runs recorded yet.\n\nPlay 'invaders' to set the first high score!\n")
		return b.String()
	}

	b.WriteString(tableStyle.Render(scoreTable(runs).View()))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf(
		"Best: %d  Runs: %d  Wins: %d  Average: %.0f",
		stats.HighScore, stats.Runs, stats.Wins, stats.AvgScore,
	)))
	b.WriteString("\n")
	return b.String()
}

func scoreTable(runs []storage.Run) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Result", Width: 8},
		{Title: "Date", Width: 16},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.Outcome,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Not interactive, so no row is highlighted.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}
