package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSample(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "fractions.json"))
	require.NoError(t, err)

	assert.Equal(t, "fractions-101", def.ID)
	assert.Equal(t, 2, def.MaxAttempts)
	assert.True(t, def.ExtendedFeedback)
	require.Len(t, def.Steps, 5)

	assert.False(t, def.Steps[0].Displayable())
	assert.True(t, def.Steps[2].Displayable())
	assert.False(t, def.Steps[2].Graded())

	assert.Equal(t, 3, def.Questions())
	assert.Equal(t, 4.0, def.TotalWeight())
	assert.Equal(t, 1, def.Number("half"))
	assert.Equal(t, 2, def.Number("equivalent"))
	assert.Equal(t, 0, def.Number("intro-equivalent"))
	assert.Equal(t, 3, def.Index("equivalent"))
	assert.Equal(t, -1, def.Index(""))
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing steps", `{"id":"a","title":"A"}`},
		{"bad kind", `{"id":"a","title":"A","steps":[{"kind":"essay","name":"q"}]}`},
		{"mcq without choices", `{"id":"a","title":"A","steps":[{"kind":"mcq","name":"q","question":"?"}]}`},
		{"unknown correct value", `{"id":"a","title":"A","steps":[{"kind":"mcq","name":"q","question":"?","choices":[{"value":"x","label":"X"}],"correct":["y"]}]}`},
		{"two correct for mcq", `{"id":"a","title":"A","steps":[{"kind":"mcq","name":"q","question":"?","choices":[{"value":"x","label":"X"},{"value":"y","label":"Y"}],"correct":["x","y"]}]}`},
		{"duplicate names", `{"id":"a","title":"A","steps":[{"kind":"answer","name":"q","question":"?"},{"kind":"answer","name":"q","question":"?"}]}`},
		{"message last", `{"id":"a","title":"A","steps":[{"kind":"answer","name":"q","question":"?"},{"kind":"message","content":"bye"}]}`},
		{"no questions", `{"id":"a","title":"A","steps":[{"kind":"html","name":"h","content":"hi"}]}`},
		{"uppercase id", `{"id":"Algebra","title":"A","steps":[{"kind":"answer","name":"q","question":"?"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestStepWeightDefaults(t *testing.T) {
	two := 2.0
	assert.Equal(t, 1.0, Step{Kind: KindAnswer}.StepWeight())
	assert.Equal(t, 2.0, Step{Kind: KindMRQ, Weight: &two}.StepWeight())
	assert.Equal(t, 0.0, Step{Kind: KindHTML, Weight: &two}.StepWeight())
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	sample, err := os.ReadFile(filepath.Join("testdata", "fractions.json"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fractions.json"), sample, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"),
		[]byte(`{"id":"b","title":"B","steps":[{"kind":"answer","name":"q","question":"?"}]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	cat, err := LoadDir(dir)
	require.NoError(t, err)
	list := cat.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "fractions-101", list[1].ID)

	_, ok := cat.Get("b")
	assert.True(t, ok)
}

func TestNewCatalogDuplicate(t *testing.T) {
	_, err := NewCatalog(&Definition{ID: "a"}, &Definition{ID: "a"})
	assert.Error(t, err)
}
