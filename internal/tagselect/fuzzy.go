package tagselect

import "strings"

// Match reports whether query matches text, and how well. Matching is
// case-insensitive. An empty query matches everything with score 0. A
// substring match scores 1000 minus the index it starts at, so earlier
// occurrences rank higher. A scattered ordered-subsequence match scores in
// the 0-100 band, below any substring match.
func Match(text, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	lt := strings.ToLower(text)
	lq := strings.ToLower(query)

	if idx := strings.Index(lt, lq); idx >= 0 {
		return true, 1000 - idx
	}

	// Subsequence scan: every query rune must appear in order.
	tr := []rune(lt)
	qr := []rune(lq)
	if len(tr) == 0 {
		return false, 0
	}
	ti := 0
	for _, q := range qr {
		found := false
		for ti < len(tr) {
			r := tr[ti]
			ti++
			if r == q {
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}
	return true, len(qr) * 100 / len(tr)
}
