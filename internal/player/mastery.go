package player

import "sort"

// Mastery score bounds and the threshold below which a concept is targeted by
// adaptive practice.
const (
	MasteryMin    = 0
	MasteryMax    = 100
	WeakThreshold = 60
)

// Mastery maps concept terms to a confidence score in [0,100]. Unseen terms
// default to 0.
type Mastery map[string]int

// Get returns the mastery score for a term, 0 for unseen terms.
func (m Mastery) Get(term string) int {
	return m[term]
}

// IsWeak reports whether a concept needs practice.
func (m Mastery) IsWeak(term string) bool {
	return m.Get(term) < WeakThreshold
}

// ApplyOutcome adjusts every exercised concept after a completed session:
// +10 for a mistake-free session, otherwise -10 per mistake. Scores are
// clamped to [0,100] regardless of delta magnitude.
func (m Mastery) ApplyOutcome(terms []string, mistakeCount int) {
	delta := 10
	if mistakeCount > 0 {
		delta = -10 * mistakeCount
	}
	for _, term := range terms {
		if term == "" {
			continue
		}
		m[term] = clampMastery(m[term] + delta)
	}
}

// WeakConcepts returns all terms below the weak threshold, sorted for
// deterministic selection.
func (m Mastery) WeakConcepts() []string {
	var weak []string
	for term, score := range m {
		if score < WeakThreshold {
			weak = append(weak, term)
		}
	}
	sort.Strings(weak)
	return weak
}

func clampMastery(score int) int {
	if score < MasteryMin {
		return MasteryMin
	}
	if score > MasteryMax {
		return MasteryMax
	}
	return score
}
