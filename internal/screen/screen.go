// Package screen defines what the router stacks and the app frames.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessly/internal/ui/layout"
)

// Screen is one full-page view. View receives the space left between the
// header and the footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// The interfaces below are optional. The app checks for them through the
// helper functions at the bottom of this file.

type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// NavigationLocker is implemented by screens that must not be left while
// work is in flight, such as a pending grading request.
type NavigationLocker interface {
	NavigationLocked() bool
}

type StatusProvider interface {
	Status() string
}

// Hints returns the footer hints of s, or nil when it has none.
func Hints(s Screen) []layout.KeyHint {
	if p, ok := s.(KeyHintProvider); ok {
		return p.KeyHints()
	}
	return nil
}

// Locked reports whether s currently forbids navigating away.
func Locked(s Screen) bool {
	l, ok := s.(NavigationLocker)
	return ok && l.NavigationLocked()
}

// Status returns the header status of s, or "".
func Status(s Screen) string {
	if p, ok := s.(StatusProvider); ok {
		return p.Status()
	}
	return ""
}
