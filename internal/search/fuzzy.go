package search

import "math"

// fieldMatch is the best approximate occurrence of a pattern inside a field value.
type fieldMatch struct {
	errors int
	start  int
	end    int
	score  float64
}

// matcher finds the substring of a text with the lowest edit distance to a pattern
// (Sellers' variant of Levenshtein with a free starting column) and scores it as
// errors/len(pattern) plus start/distance.
type matcher struct {
	threshold   float64
	distance    int
	minMatchLen int
}

func (m matcher) match(pattern, text []rune) (fieldMatch, bool) {
	plen := len(pattern)
	if plen < m.minMatchLen || plen == 0 {
		return fieldMatch{}, false
	}

	// prev/curr hold one text column of the DP matrix, indexed by pattern position.
	// The start slices carry the text offset where the alignment in that cell began.
	prev := make([]int, plen+1)
	curr := make([]int, plen+1)
	prevStart := make([]int, plen+1)
	currStart := make([]int, plen+1)
	for i := range prev {
		prev[i] = i
	}

	best := fieldMatch{score: math.Inf(1)}
	found := false
	for j := 1; j <= len(text); j++ {
		curr[0] = 0
		currStart[0] = j
		for i := 1; i <= plen; i++ {
			cost := 1
			if pattern[i-1] == text[j-1] {
				cost = 0
			}
			// substitution or match
			d, s := prev[i-1]+cost, prevStart[i-1]
			// pattern character skipped
			if v := curr[i-1] + 1; v < d {
				d, s = v, currStart[i-1]
			}
			// text character skipped
			if v := prev[i] + 1; v < d {
				d, s = v, prevStart[i]
			}
			curr[i], currStart[i] = d, s
		}

		errs, start := curr[plen], currStart[plen]
		if j-start >= m.minMatchLen {
			score := m.score(errs, plen, start)
			if score <= m.threshold && score < best.score {
				best = fieldMatch{errors: errs, start: start, end: j, score: score}
				found = true
			}
		}

		prev, curr = curr, prev
		prevStart, currStart = currStart, prevStart
	}

	return best, found
}

func (m matcher) score(errs, plen, start int) float64 {
	score := float64(errs) / float64(plen)
	if m.distance > 0 {
		score += float64(start) / float64(m.distance)
	}
	return score
}
