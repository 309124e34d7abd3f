package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocomplete/internal/autocomplete"
	"autocomplete/internal/domain"
)

var _ autocomplete.ResultProvider = (*WordList)(nil)

func mains(cs []domain.Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Main)
	}
	return out
}

func TestParseWordListAcceptsBothForms(t *testing.T) {
	data := `
words:
  - hello
  - {main: help, left: "? ", right: " command"}
  - main: shell
    right: " noun"
`
	wl, err := ParseWordList([]byte(data), 0)
	require.NoError(t, err)
	require.Equal(t, 3, wl.Len())

	got, err := wl.Results("hel", 3)
	require.NoError(t, err)
	assert.Equal(t, []domain.Candidate{
		{Main: "hello"},
		{Main: "help", LeftMeta: "? ", RightMeta: " command"},
		{Main: "shell", RightMeta: " noun"},
	}, got)
}

func TestParseWordListRejectsBadData(t *testing.T) {
	_, err := ParseWordList([]byte("words: [\n"), 0)
	assert.Error(t, err)

	_, err = ParseWordList([]byte("words:\n  - {left: x}\n"), 0)
	assert.ErrorContains(t, err, "word 1")
}

func TestWordListPrefixMatchesComeFirst(t *testing.T) {
	wl := NewWordList([]domain.Candidate{{Main: "shell"}, {Main: "hello"}, {Main: "nutshell"}, {Main: "help"}}, 0)

	got, err := wl.Results("hel", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "help", "shell", "nutshell"}, mains(got))
}

func TestWordListIsCaseSensitive(t *testing.T) {
	wl := NewWordList([]domain.Candidate{{Main: "Hello"}, {Main: "hello"}}, 0)

	got, err := wl.Results("He", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello"}, mains(got))
}

func TestWordListEmptyTextHasNoResults(t *testing.T) {
	wl := NewWordList([]domain.Candidate{{Main: "hello"}}, 0)

	got, err := wl.Results("", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWordListLimit(t *testing.T) {
	wl := NewWordList([]domain.Candidate{{Main: "aa"}, {Main: "ab"}, {Main: "ac"}}, 2)

	got, err := wl.Results("a", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "ab"}, mains(got))
}

func TestDefaultWordList(t *testing.T) {
	wl, err := DefaultWordList(0)
	require.NoError(t, err)

	got, err := wl.Results("go", 2)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "go", got[0].Main)
	assert.Contains(t, mains(got), "goto")
}

func TestLoadWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte("words: [alpha, beta]\n"), 0644))

	wl, err := LoadWordList(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, wl.Len())

	_, err = LoadWordList(filepath.Join(t.TempDir(), "missing.yaml"), 0)
	assert.Error(t, err)
}
