package domain

// Candidate is a single row of the autocomplete dropdown. It is a value, not
// a widget: providers build a fresh slice of them on every sync.
type Candidate struct {
	Main      string // text the user is completing towards, highlighted by default
	LeftMeta  string // leading column, often an icon or symbol
	RightMeta string // trailing column, often type or path information

	// HighlightRanges overrides substring highlighting of Main when non-empty.
	// Providers that match non-contiguously set these themselves.
	HighlightRanges []HighlightRange
}

// HighlightRange is a half-open [Start, End) range of rune offsets into Candidate.Main
type HighlightRange struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the range
func (r HighlightRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether the range covers nothing
func (r HighlightRange) Empty() bool {
	return r.Len() == 0
}
