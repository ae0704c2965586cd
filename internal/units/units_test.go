package units

import (
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessly/internal/assessment"
	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/transport"
)

func loadFractions(t *testing.T) *content.Definition {
	t.Helper()
	def, err := content.Load("../content/testdata/fractions.json")
	require.NoError(t, err)
	return def
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func result(t *testing.T, status transport.Completion, submission any, tips ...string) json.RawMessage {
	t.Helper()
	sub, err := json.Marshal(submission)
	require.NoError(t, err)
	raw, err := json.Marshal(transport.ChildResult{Status: status, Score: 1, Weight: 1, Submission: sub, Tips: tips})
	require.NoError(t, err)
	return raw
}

func TestBuild(t *testing.T) {
	refs := Build(loadFractions(t))
	require.Len(t, refs, 5)

	assert.False(t, refs[0].Displayable)
	assert.Empty(t, refs[0].Name)
	assert.IsType(t, &Message{}, refs[0].Unit)

	assert.Equal(t, "half", refs[1].Name)
	assert.IsType(t, &Choice{}, refs[1].Unit)
	assert.IsType(t, &HTML{}, refs[2].Unit)
	assert.IsType(t, &Choice{}, refs[3].Unit)
	assert.IsType(t, &Answer{}, refs[4].Unit)
	for _, r := range refs[1:] {
		assert.True(t, r.Displayable, r.Name)
	}
}

func TestMCQ(t *testing.T) {
	def := loadFractions(t)
	q := NewMCQ(def.Steps[1])

	assert.Equal(t, "", q.ProduceSubmission())
	assert.Equal(t, assessment.Invalid, q.Validate())

	_, changed := q.HandleKey(special(tea.KeyDown))
	assert.False(t, changed)
	_, changed = q.HandleKey(key(' '))
	assert.True(t, changed)
	assert.Equal(t, "b", q.ProduceSubmission())

	// Picking another option replaces the single pick.
	q.HandleKey(special(tea.KeyUp))
	q.HandleKey(key(' '))
	assert.Equal(t, "a", q.ProduceSubmission())
	assert.Equal(t, assessment.Valid, q.Validate())
}

func TestMRQ(t *testing.T) {
	def := loadFractions(t)
	q := NewMRQ(def.Steps[3])

	assert.Equal(t, []string{}, q.ProduceSubmission())
	assert.Equal(t, assessment.Invalid, q.Validate())

	q.HandleKey(key(' '))
	q.HandleKey(key('j'))
	q.HandleKey(key('x'))
	assert.Equal(t, []string{"2-4", "3-6"}, q.ProduceSubmission())

	// Toggling again removes the pick.
	q.HandleKey(key(' '))
	assert.Equal(t, []string{"2-4"}, q.ProduceSubmission())
	assert.Equal(t, assessment.Valid, q.Validate())
}

func TestChoiceReviewRestoresAndLocks(t *testing.T) {
	def := loadFractions(t)
	q := NewMRQ(def.Steps[3])

	q.Display(assessment.DisplayOptions{Review: true})
	q.HandleReview(result(t, transport.CompletionPartial, []string{"2-4", "2-3"}, "2/3 is larger than 1/2."), assessment.ResultOptions{MaxAttempts: 2, NumAttempts: 1})

	assert.Equal(t, []string{"2-4", "2-3"}, q.Picked())
	view := q.View(60)
	assert.Contains(t, view, "Partially correct")
	assert.Contains(t, view, "2/3 is larger than 1/2.")

	_, changed := q.HandleKey(key(' '))
	assert.False(t, changed, "locked in review")

	q.Clean()
	assert.NotContains(t, q.View(60), "Partially correct")
}

func TestChoiceIgnoresMalformedResult(t *testing.T) {
	def := loadFractions(t)
	q := NewMCQ(def.Steps[1])
	q.HandleSubmit(json.RawMessage(`not json`), assessment.ResultOptions{})
	assert.Empty(t, q.Picked())
	assert.NotContains(t, q.View(60), "Correct")
}

func TestAnswer(t *testing.T) {
	def := loadFractions(t)
	a := NewAnswer(def.Steps[4])
	a.Display(assessment.DisplayOptions{})

	for _, r := range "too short" {
		a.HandleKey(key(r))
	}
	assert.Equal(t, "too short", a.Value())
	assert.Equal(t, assessment.Invalid, a.Validate())

	_, changed := a.HandleKey(key('!'))
	assert.True(t, changed)
	assert.Equal(t, assessment.Valid, a.Validate())
	assert.Equal(t, "too short!", a.ProduceSubmission())
}

func TestAnswerReview(t *testing.T) {
	def := loadFractions(t)
	a := NewAnswer(def.Steps[4])

	a.Display(assessment.DisplayOptions{Review: true})
	a.HandleReview(result(t, transport.CompletionCorrect, "Two quarters make a half."), assessment.ResultOptions{})
	assert.Equal(t, "Two quarters make a half.", a.Value())
	assert.Contains(t, a.View(60), "Correct")

	_, changed := a.HandleKey(key('x'))
	assert.False(t, changed)
}

func TestContentUnits(t *testing.T) {
	def := loadFractions(t)

	h := NewHTML(def.Steps[2])
	assert.Equal(t, true, h.ProduceSubmission())
	assert.Contains(t, h.View(60), "Submit to continue.")
	h.Display(assessment.DisplayOptions{Review: true})
	assert.NotContains(t, h.View(60), "Submit to continue.")

	m := NewMessage(def.Steps[0])
	assert.Contains(t, m.View(80), "Take your time.")
	_, changed := m.HandleKey(key('a'))
	assert.False(t, changed)
}

func TestReset(t *testing.T) {
	def := loadFractions(t)

	q := NewMRQ(def.Steps[3])
	q.HandleKey(key(' '))
	q.HandleSubmit(result(t, transport.CompletionPartial, []string{"2-4"}), assessment.ResultOptions{})
	q.Reset()
	assert.Empty(t, q.Picked())
	assert.NotContains(t, q.View(60), "Partially correct")

	a := NewAnswer(def.Steps[4])
	a.Display(assessment.DisplayOptions{})
	a.HandleKey(key('x'))
	a.Reset()
	assert.Empty(t, a.Value())
	assert.Equal(t, assessment.Invalid, a.Validate())
}
