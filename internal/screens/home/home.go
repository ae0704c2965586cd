// Package home is the assessment picker shown when the app starts.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/router"
	"github.com/abhisek/assessly/internal/screen"
	"github.com/abhisek/assessly/internal/ui/components"
	"github.com/abhisek/assessly/internal/ui/theme"
)

// Opener creates the screen that runs one assessment.
type Opener func(def *content.Definition) screen.Screen

// HomeScreen lists the assessments of a catalog.
type HomeScreen struct {
	menu    components.Menu
	learner string
	count   int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the picker. Selecting an assessment pushes the screen open
// returns for it.
func New(catalog *content.Catalog, learner string, open Opener) *HomeScreen {
	defs := catalog.List()
	items := make([]components.MenuItem, 0, len(defs)+1)
	for _, def := range defs {
		items = append(items, components.MenuItem{
			Label:  def.Title,
			Detail: describe(def),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: open(def)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})
	return &HomeScreen{
		menu:    components.NewMenu(items),
		learner: learner,
		count:   len(defs),
	}
}

func describe(def *content.Definition) string {
	attempts := "unlimited attempts"
	switch def.MaxAttempts {
	case 0:
	case 1:
		attempts = "1 attempt"
	default:
		attempts = fmt.Sprintf("%d attempts", def.MaxAttempts)
	}
	return fmt.Sprintf("%d questions, %s", def.Questions(), attempts)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Assessments"))
	b.WriteString("\n")
	if h.learner != "" {
		b.WriteString(theme.Subtitle.Render("Signed in as " + h.learner))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if h.count == 0 {
		b.WriteString(theme.Hint.Render("No assessments found."))
		b.WriteString("\n\n")
	}
	b.WriteString(h.menu.View())

	return components.Center(components.Card(b.String(), cw), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
