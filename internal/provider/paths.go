package provider

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"autocomplete/internal/domain"
)

// Paths completes the input as a path relative to a root directory. The
// text before the cursor is split into a directory part and a name prefix;
// entries of that directory whose names start with the prefix (ignoring
// case) are returned, directories first. Hidden entries and anything the
// root's .gitignore excludes are skipped.
type Paths struct {
	root    string
	limit   int
	ignorer *ignore.GitIgnore
}

// NewPaths creates a path provider rooted at root. A limit of 0 returns every
// match.
func NewPaths(root string, limit int) (*Paths, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", abs)
	}

	return &Paths{
		root:    abs,
		limit:   limit,
		ignorer: loadIgnore(abs),
	}, nil
}

// Root returns the absolute root directory
func (p *Paths) Root() string {
	return p.root
}

func outside(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// loadIgnore compiles the root's .gitignore, if any
func loadIgnore(root string) *ignore.GitIgnore {
	rules := []string{".git/"}

	f, err := os.Open(filepath.Join(root, ".gitignore"))
	if err == nil {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" && !strings.HasPrefix(line, "#") {
				rules = append(rules, line)
			}
		}
	}

	return ignore.CompileIgnoreLines(rules...)
}

// Results lists the entries matching the text before the cursor
func (p *Paths) Results(text string, cursor int) ([]domain.Candidate, error) {
	query := beforeCursor(text, cursor)
	if query == "" {
		return nil, nil
	}

	dirPart, prefix := splitQuery(query)
	dir := filepath.Join(p.root, filepath.FromSlash(dirPart))
	if rel, err := filepath.Rel(p.root, dir); err != nil || outside(rel) {
		// Never list outside the root
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dirPart, err)
	}

	lowerPrefix := strings.ToLower(prefix)
	var dirs, files []domain.Candidate
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(name), lowerPrefix) {
			continue
		}

		rel := dirPart + name
		if entry.IsDir() {
			if p.ignorer.MatchesPath(rel + "/") {
				continue
			}
		} else if p.ignorer.MatchesPath(rel) {
			continue
		}

		c := domain.Candidate{Main: rel}
		if n := len([]rune(prefix)); n > 0 {
			start := len([]rune(dirPart))
			c.HighlightRanges = []domain.HighlightRange{{Start: start, End: start + n}}
		}

		if entry.IsDir() {
			c.Main += "/"
			c.LeftMeta = "d "
			c.RightMeta = " dir"
			dirs = append(dirs, c)
			continue
		}

		c.LeftMeta = "f "
		if info, err := entry.Info(); err == nil {
			c.RightMeta = " " + formatSize(info.Size())
		}
		files = append(files, c)
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Main < dirs[j].Main })
	sort.Slice(files, func(i, j int) bool { return files[i].Main < files[j].Main })

	results := append(dirs, files...)
	if p.limit > 0 && len(results) > p.limit {
		results = results[:p.limit]
	}
	return results, nil
}

// beforeCursor returns text up to the rune position cursor
func beforeCursor(text string, cursor int) string {
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	return string(runes[:cursor])
}

// splitQuery splits "a/b/pre" into "a/b/" and "pre"
func splitQuery(query string) (string, string) {
	i := strings.LastIndex(query, "/")
	if i < 0 {
		return "", query
	}
	return query[:i+1], query[i+1:]
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%dB", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%c", float64(size)/float64(div), "KMGTPE"[exp])
}
