package provider

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"autocomplete/internal/domain"
)

//go:embed words.yaml
var defaultWords []byte

// WordList completes the input's text against a fixed list of words. Words
// starting with the text come first, then words containing it elsewhere;
// file order is kept within each group. Matching is case-sensitive.
type WordList struct {
	words []domain.Candidate
	limit int
}

// wordFile is the YAML layout of a word list
type wordFile struct {
	Words []wordEntry `yaml:"words"`
}

// wordEntry accepts either a bare string or a mapping with columns
type wordEntry struct {
	Main  string `yaml:"main"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

func (e *wordEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		e.Main = value.Value
		return nil
	}
	type plain wordEntry
	return value.Decode((*plain)(e))
}

// NewWordList creates a word list from candidates. A limit of 0 returns every
// match.
func NewWordList(words []domain.Candidate, limit int) *WordList {
	return &WordList{words: words, limit: limit}
}

// DefaultWordList returns the built-in list of Go keywords, builtins and
// common packages
func DefaultWordList(limit int) (*WordList, error) {
	return ParseWordList(defaultWords, limit)
}

// LoadWordList reads a YAML word list from path
func LoadWordList(path string, limit int) (*WordList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	wl, err := ParseWordList(data, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wl, nil
}

// ParseWordList parses YAML word list data
func ParseWordList(data []byte, limit int) (*WordList, error) {
	var file wordFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse word list: %w", err)
	}

	words := make([]domain.Candidate, 0, len(file.Words))
	for i, w := range file.Words {
		if w.Main == "" {
			return nil, fmt.Errorf("word %d has no main text", i+1)
		}
		words = append(words, domain.Candidate{Main: w.Main, LeftMeta: w.Left, RightMeta: w.Right})
	}
	return NewWordList(words, limit), nil
}

// Len returns the number of words in the list
func (w *WordList) Len() int {
	return len(w.words)
}

// Results returns the words containing text. The cursor is not used: the
// whole text is the query, just as it is the highlight filter.
func (w *WordList) Results(text string, cursor int) ([]domain.Candidate, error) {
	if text == "" {
		return nil, nil
	}

	var prefixed, contained []domain.Candidate
	for _, word := range w.words {
		switch {
		case strings.HasPrefix(word.Main, text):
			prefixed = append(prefixed, word)
		case strings.Contains(word.Main, text):
			contained = append(contained, word)
		}
	}

	results := append(prefixed, contained...)
	if w.limit > 0 && len(results) > w.limit {
		results = results[:w.limit]
	}
	return results, nil
}
