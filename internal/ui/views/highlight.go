package views

import (
	"sort"
	"strings"
	"unicode/utf8"

	"autocomplete/internal/domain"
)

// Segment is a run of text that is either all highlighted or not at all
type Segment struct {
	Text        string
	Highlighted bool
}

// Highlights returns the rune ranges of main to emphasize. Explicit ranges
// win when present; otherwise every occurrence of filter is highlighted.
func Highlights(main, filter string, explicit []domain.HighlightRange) []domain.HighlightRange {
	if len(explicit) > 0 {
		return normalizeRanges(explicit, utf8.RuneCountInString(main))
	}
	return Occurrences(main, filter)
}

// Occurrences finds every non-overlapping, case-sensitive occurrence of
// filter in main, scanning left to right. A match must start and end on a
// character boundary of main.
func Occurrences(main, filter string) []domain.HighlightRange {
	if filter == "" {
		return nil
	}

	// runeAt maps a byte offset to its rune index, -1 inside a character
	runeAt := make([]int, len(main)+1)
	for i := range runeAt {
		runeAt[i] = -1
	}
	n := 0
	for b := range main {
		runeAt[b] = n
		n++
	}
	runeAt[len(main)] = n

	var ranges []domain.HighlightRange
	offset := 0
	for offset < len(main) {
		i := strings.Index(main[offset:], filter)
		if i < 0 {
			break
		}
		at := offset + i
		start, end := runeAt[at], runeAt[at+len(filter)]
		if start < 0 || end < 0 {
			offset = at + 1
			continue
		}
		ranges = append(ranges, domain.HighlightRange{Start: start, End: end})
		offset = at + len(filter)
	}
	return ranges
}

// normalizeRanges clamps ranges to [0, n], drops empty ones and merges
// overlaps so the result is sorted and disjoint
func normalizeRanges(ranges []domain.HighlightRange, n int) []domain.HighlightRange {
	clean := make([]domain.HighlightRange, 0, len(ranges))
	for _, r := range ranges {
		if r.Start < 0 {
			r.Start = 0
		}
		if r.End > n {
			r.End = n
		}
		if r.Empty() {
			continue
		}
		clean = append(clean, r)
	}
	sort.Slice(clean, func(i, j int) bool { return clean[i].Start < clean[j].Start })

	merged := clean[:0]
	for _, r := range clean {
		if last := len(merged) - 1; last >= 0 && r.Start <= merged[last].End {
			if r.End > merged[last].End {
				merged[last].End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Segments splits text at the boundaries of sorted, disjoint rune ranges.
// Ranges past the end of text are clipped.
func Segments(text string, ranges []domain.HighlightRange) []Segment {
	if len(ranges) == 0 {
		if text == "" {
			return nil
		}
		return []Segment{{Text: text}}
	}

	runes := []rune(text)
	var segments []Segment
	pos := 0
	for _, r := range ranges {
		r.Start = max(r.Start, pos)
		r.End = min(r.End, len(runes))
		if r.Start >= r.End {
			continue
		}
		if r.Start > pos {
			segments = append(segments, Segment{Text: string(runes[pos:r.Start])})
		}
		segments = append(segments, Segment{Text: string(runes[r.Start:r.End]), Highlighted: true})
		pos = r.End
	}
	if pos < len(runes) {
		segments = append(segments, Segment{Text: string(runes[pos:])})
	}
	return segments
}
