package autocomplete

import "autocomplete/internal/domain"

// ResultProvider maps the input's text and cursor offset to an ordered list
// of candidates. It runs synchronously on the UI goroutine, so it must return
// quickly. Ranking, fuzziness and case handling are its own business; the
// dropdown shows candidates in the order returned.
type ResultProvider interface {
	Results(text string, cursor int) ([]domain.Candidate, error)
}

// ProviderFunc adapts an ordinary function to a ResultProvider
type ProviderFunc func(text string, cursor int) ([]domain.Candidate, error)

// Results calls f(text, cursor)
func (f ProviderFunc) Results(text string, cursor int) ([]domain.Candidate, error) {
	return f(text, cursor)
}

// StaticProvider returns a provider that ignores its input and always offers
// the same candidates
func StaticProvider(candidates ...domain.Candidate) ResultProvider {
	return ProviderFunc(func(string, int) ([]domain.Candidate, error) {
		return candidates, nil
	})
}
