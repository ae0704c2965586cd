package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessly/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64 // 0..1
	Suffix  string  // rendered after the bar, e.g. "3/5"
	Width   int
}

// NewStepProgress shows how many of total steps are done.
func NewStepProgress(done, total, width int) ProgressBar {
	p := ProgressBar{Label: "Progress", Width: width, Suffix: fmt.Sprintf("%d/%d", done, total)}
	if total > 0 {
		p.Percent = float64(done) / float64(total)
	}
	return p
}

// NewScoreBar shows a percentage score.
func NewScoreBar(percent, width int) ProgressBar {
	return ProgressBar{Label: "Score", Percent: float64(percent) / 100, Suffix: fmt.Sprintf("%d%%", percent), Width: width}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var head, tail string
	if p.Label != "" {
		head = theme.Body.Render(p.Label) + "  "
	}
	if p.Suffix != "" {
		tail = "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Suffix)
	}

	barWidth := max(p.Width-lipgloss.Width(head)-lipgloss.Width(tail), 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	bar := lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))
	return head + bar + tail
}
