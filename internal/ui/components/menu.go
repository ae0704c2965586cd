package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessly/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Action runs when the entry is chosen.
type MenuItem struct {
	Label  string
	Detail string
	Action func() tea.Cmd
}

// Menu is a numbered vertical list. The cursor wraps at both ends and the
// digits 1-9 choose an entry directly.
type Menu struct {
	Items  []MenuItem
	Cursor int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}
	n := len(m.Items)
	switch s := key.String(); s {
	case "up", "k":
		m.Cursor = (m.Cursor - 1 + n) % n
	case "down", "j", "tab":
		m.Cursor = (m.Cursor + 1) % n
	case "enter", "space":
		return m, m.choose(m.Cursor)
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < n {
				m.Cursor = i
				return m, m.choose(i)
			}
		}
	}
	return m, nil
}

func (m Menu) choose(i int) tea.Cmd {
	if a := m.Items[i].Action; a != nil {
		return a()
	}
	return nil
}

func (m Menu) View() string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i == m.Cursor {
			label = theme.Selected.Render("› " + label)
		} else {
			label = theme.Unselected.Render("  " + label)
		}
		if item.Detail != "" {
			label += "  " + theme.Hint.Render(item.Detail)
		}
		lines[i] = label
	}
	return strings.Join(lines, "\n") + "\n"
}
