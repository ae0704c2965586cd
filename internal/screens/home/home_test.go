package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/router"
	"github.com/abhisek/assessly/internal/screen"
)

type stubScreen struct{ def *content.Definition }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return s.def.Title }

func testHome(t *testing.T) *HomeScreen {
	t.Helper()
	catalog, err := content.LoadDir("../../content/testdata")
	require.NoError(t, err)
	return New(catalog, "ada", func(def *content.Definition) screen.Screen {
		return &stubScreen{def: def}
	})
}

func TestHomeListsAssessments(t *testing.T) {
	h := testHome(t)
	view := h.View(100, 30)
	assert.Contains(t, view, "Fractions check-in")
	assert.Contains(t, view, "3 questions, 2 attempts")
	assert.Contains(t, view, "Signed in as ada")
}

func TestHomeOpensSelected(t *testing.T) {
	h := testHome(t)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Fractions check-in", push.Screen.Title())
}

func TestHomeQuit(t *testing.T) {
	h := testHome(t)
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDescribe(t *testing.T) {
	def := &content.Definition{MaxAttempts: 1}
	assert.Equal(t, "0 questions, 1 attempt", describe(def))
	def.MaxAttempts = 0
	assert.Equal(t, "0 questions, unlimited attempts", describe(def))
}
