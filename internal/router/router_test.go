package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessly/internal/screen"
)

type fakeScreen struct {
	title  string
	locked bool
	inits  int
	msgs   []tea.Msg
}

type initMsg struct{ title string }

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return func() tea.Msg { return initMsg{f.title} }
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.msgs = append(f.msgs, msg)
	return f, nil
}

func (f *fakeScreen) View(int, int) string   { return "view:" + f.title }
func (f *fakeScreen) Title() string          { return f.title }
func (f *fakeScreen) NavigationLocked() bool { return f.locked }

func TestPushRunsInit(t *testing.T) {
	r := New(&fakeScreen{title: "Assessments"})
	quiz := &fakeScreen{title: "Fractions"}

	cmd := r.Update(PushScreenMsg{Screen: quiz})
	require.NotNil(t, cmd)
	assert.Equal(t, initMsg{"Fractions"}, cmd())
	assert.Equal(t, 1, quiz.inits)
	assert.Equal(t, 2, r.Depth())
	assert.Same(t, quiz, r.Active())
	assert.Equal(t, "view:Fractions", r.View(80, 24))
}

func TestPop(t *testing.T) {
	home := &fakeScreen{title: "Assessments"}
	r := New(home)
	assert.False(t, r.Pop(), "root stays")

	r.Push(&fakeScreen{title: "Fractions"})
	assert.True(t, r.Pop())
	assert.Same(t, home, r.Active())
}

func TestPopRespectsNavigationLock(t *testing.T) {
	r := New(&fakeScreen{title: "Assessments"})
	quiz := &fakeScreen{title: "Fractions", locked: true}
	r.Push(quiz)

	assert.False(t, r.CanLeave())
	r.Update(PopScreenMsg{})
	assert.Equal(t, 2, r.Depth())

	quiz.locked = false
	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &fakeScreen{title: "Assessments"}
	r := New(home)
	quiz := &fakeScreen{title: "Fractions"}
	r.Push(quiz)

	r.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	assert.Len(t, quiz.msgs, 1)
	assert.Empty(t, home.msgs)
}

func TestTrail(t *testing.T) {
	r := New(&fakeScreen{title: "Assessments"})
	r.Push(&fakeScreen{})
	r.Push(&fakeScreen{title: "Fractions"})
	assert.Equal(t, []string{"Assessments", "Fractions"}, r.Trail())
}
