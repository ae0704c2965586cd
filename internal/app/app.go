// Package app is the root Bubble Tea model. It owns the screen stack and
// draws the shared header and footer around the active screen.
package app

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessly/internal/router"
	"github.com/abhisek/assessly/internal/screen"
	"github.com/abhisek/assessly/internal/ui/layout"
)

type Model struct {
	router        *router.Router
	width, height int
}

func New(root screen.Screen) Model {
	return Model{router: router.New(root)}
}

func (m Model) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if !m.router.CanLeave() {
				return m, nil
			}
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return m, m.router.Update(msg)
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.WindowTitle = "assessly: " + m.router.Active().Title()

	switch {
	case m.width == 0 || m.height == 0:
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
	default:
		v.SetContent(m.frame())
	}
	return v
}

func (m Model) frame() string {
	active := m.router.Active()
	header := m.renderHeader(active)
	footer := layout.RenderFooter(m.footerHints(active), m.width)
	body := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return layout.RenderFrame(header, m.router.View(m.width, body), footer, m.width, m.height)
}

func (m Model) renderHeader(active screen.Screen) string {
	return layout.RenderHeader(m.router.Trail(), screen.Status(active), m.width)
}

var (
	rootHints = []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	nestedHints = []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
)

func (m Model) footerHints(active screen.Screen) []layout.KeyHint {
	if hints := screen.Hints(active); len(hints) > 0 {
		return hints
	}
	if m.router.CanLeave() {
		return nestedHints
	}
	return rootHints
}

// Run shows root until the user quits or ctx is cancelled.
func Run(ctx context.Context, root screen.Screen) error {
	_, err := tea.NewProgram(New(root), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
