package layout

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRenderHeader_DropsLeadingTrail(t *testing.T) {
	wide := ansi.Strip(RenderHeader([]string{"Assessments", "Fractions check-in"}, "Attempts: 1 of 2", 100))
	assert.Contains(t, wide, "Assessments › Fractions check-in")
	assert.Contains(t, wide, "Attempts: 1 of 2")

	long := "Equivalent fractions and mixed numbers: end of unit check-in"
	narrow := ansi.Strip(RenderHeader([]string{"Assessments", long}, "Attempts: 1 of 2", 100))
	assert.Contains(t, narrow, "… › "+long)
	assert.NotContains(t, narrow, "Assessments ›")
}

func TestRenderFooter_KeepsWhatFits(t *testing.T) {
	hints := []KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "n", Description: "Next"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	assert.Contains(t, ansi.Strip(RenderFooter(hints, 100)), "Ctrl+C Quit")

	short := ansi.Strip(RenderFooter(hints, 30))
	assert.Contains(t, short, "Enter Submit")
	assert.NotContains(t, short, "Quit")
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 30))
	assert.True(t, IsTooSmall(120, 23))
	assert.False(t, IsTooSmall(80, 24))
}
