package app

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// filterRows keeps the rows matching query. Substring matches come first in
// list order, then near misses ranked by edit distance against the
// closest word of the title or file name.
func filterRows(rows []*Row, query string) []*Row {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	type match struct {
		row   *Row
		score int
	}
	matches := make([]match, 0, len(rows))
	for _, r := range rows {
		if score, ok := matchScore(r, query); ok {
			matches = append(matches, match{row: r, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})

	out := make([]*Row, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.row)
	}
	return out
}

func matchScore(r *Row, query string) (int, bool) {
	title := strings.ToLower(r.item.Title)
	file := strings.ToLower(r.item.File)
	if strings.Contains(title, query) || strings.Contains(file, query) {
		return 0, true
	}

	// Allow one edit per three characters of query.
	limit := max(1, len([]rune(query))/3)
	best := -1
	for _, word := range strings.FieldsFunc(title+" "+file, isWordBreak) {
		d := levenshtein.ComputeDistance(query, word)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 || best > limit {
		return 0, false
	}
	return best, true
}

func isWordBreak(r rune) bool {
	switch r {
	case ' ', '[', ']', '-', '.', '_':
		return true
	}
	return false
}
