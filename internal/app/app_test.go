package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessly/internal/router"
	"github.com/abhisek/assessly/internal/screen"
)

type stubScreen struct {
	title  string
	locked bool
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }
func (s *stubScreen) NavigationLocked() bool                  { return s.locked }
func (s *stubScreen) Status() string                          { return "Attempts: 1 of 3" }

func TestEscPopsUnlockedScreen(t *testing.T) {
	m := New(&stubScreen{title: "home"})
	m.router.Push(&stubScreen{title: "quiz"})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestEscIgnoredWhileLocked(t *testing.T) {
	m := New(&stubScreen{title: "home"})
	m.router.Push(&stubScreen{title: "quiz", locked: true})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.router.Depth())
}

func TestHeaderShowsStatus(t *testing.T) {
	m := New(&stubScreen{title: "home"})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	m.router.Push(&stubScreen{title: "quiz"})
	header := m.renderHeader(m.router.Active())
	assert.Contains(t, header, "home › quiz")
	assert.Contains(t, header, "Attempts: 1 of 3")
}

func TestFooterFallsBackToDefaults(t *testing.T) {
	m := New(&stubScreen{title: "home"})
	hints := m.footerHints(m.router.Active())
	require.Len(t, hints, 3)
	assert.Equal(t, "Enter", hints[1].Key)
}

func TestViewWaitsForWindowSize(t *testing.T) {
	m := New(&stubScreen{title: "home"})
	v := m.View()
	assert.Equal(t, "assessly: home", v.WindowTitle)
	assert.True(t, v.AltScreen)
}
