// Package router keeps the stack of screens the learner has opened.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessly/internal/screen"
)

// PushScreenMsg opens a screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen unless it holds the navigation lock.
type PopScreenMsg struct{}

// Router is a stack of screens. The bottom screen is never closed.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// CanLeave reports whether the active screen may be closed: it is not the
// root and does not hold the navigation lock.
func (r *Router) CanLeave() bool {
	return len(r.stack) > 1 && !screen.Locked(r.Active())
}

// Pop closes the active screen and reports whether it did.
func (r *Router) Pop() bool {
	if !r.CanLeave() {
		return false
	}
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]
	return true
}

func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Trail returns the titles of the open screens, root first.
func (r *Router) Trail() []string {
	titles := make([]string, 0, len(r.stack))
	for _, s := range r.stack {
		if t := s.Title(); t != "" {
			titles = append(titles, t)
		}
	}
	return titles
}

// Update handles navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	}
	next, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
