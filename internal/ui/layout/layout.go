// Package layout draws the frame around every screen.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessly/internal/ui/theme"
)

// Smallest terminal an assessment renders in.
const (
	MinWidth  = 80
	MinHeight = 24
)

const brand = "  assessly"

// KeyHint is a key and what it does, shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"This window is too small for an assessment.\n\nResize to at least %d x %d.\nCurrent size: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

func bar(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader shows the product name, the screen trail centered and the
// status on the right. Leading trail segments are dropped until it fits.
func RenderHeader(trail []string, status string, width int) string {
	inner := max(width-4, 0)
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)
	room := inner - lipgloss.Width(left) - lipgloss.Width(right) - 2

	title := strings.Join(trail, " › ")
	for len(trail) > 1 && lipgloss.Width(title) > room {
		trail = trail[1:]
		title = "… › " + strings.Join(trail, " › ")
	}
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	spare := inner - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	leftGap := max(min((inner-lipgloss.Width(center))/2-lipgloss.Width(left), spare-1), 1)
	rightGap := max(spare-leftGap, 1)
	return bar(width, left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right)
}

// RenderFooter lists key hints in order, leaving out those that no longer fit.
func RenderFooter(hints []KeyHint, width int) string {
	room := max(width-6, 0)
	var b strings.Builder
	b.WriteString("  ")
	used := 0
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) + " " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		w := lipgloss.Width(part)
		if used > 0 {
			w += 3
		}
		if used+w > room {
			break
		}
		if used > 0 {
			b.WriteString("   ")
		}
		b.WriteString(part)
		used += w
	}
	return bar(width, b.String())
}

// RenderFrame stacks header, content and footer. The content fills
// whatever height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return header + "\n" + body + "\n" + footer
}
