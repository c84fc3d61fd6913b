package search

import (
	"github.com/nikbrunner/ql/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Shortcut       model.Shortcut
	MatchedIndexes []int
	Score          int
}

// shortcutNames implements fuzzy.Source for a shortcut slice.
type shortcutNames []model.Shortcut

func (sn shortcutNames) String(i int) string {
	return sn[i].Name
}

func (sn shortcutNames) Len() int {
	return len(sn)
}

// FuzzySearch searches shortcuts by name using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearch(shortcuts []model.Shortcut, query string) []SearchResult {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, shortcutNames(shortcuts))

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Shortcut:       shortcuts[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
