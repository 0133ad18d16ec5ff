package workout

import (
	"github.com/codelingo/backend/internal/catalog"
	"github.com/codelingo/backend/internal/player"
)

// DefaultSize caps a generated practice run at five questions.
const DefaultSize = 5

// BuildWorkout assembles a synthetic level targeting the player's weak
// concepts (mastery below the weak threshold). Questions come from every
// level that teaches a weak concept; when that pool is thin it is backfilled
// from completed levels. With no weak concepts the run degrades to a plain
// review of completed material.
func BuildWorkout(levels []catalog.Level, mastery player.Mastery, completed []int, size int, rng catalog.Rand) catalog.Level {
	if size <= 0 {
		size = DefaultSize
	}

	weak := mastery.WeakConcepts()
	title := "Smart Workout"

	seen := make(map[string]bool)
	var pool []catalog.Question
	if len(weak) > 0 {
		weakSet := make(map[string]bool, len(weak))
		for _, c := range weak {
			weakSet[c] = true
		}
		for _, lvl := range levels {
			if teachesAny(lvl, weakSet) {
				pool = appendEligible(pool, seen, lvl.Questions)
			}
		}
	} else {
		title = "Review"
	}

	// The backfill decision counts only questions that survive the validity,
	// theory and duplicate filters; a pool padded with theory cards or broken
	// questions still tops up from completed levels.
	if len(pool) < size {
		pool = appendEligible(pool, seen, fromCompleted(levels, completed))
	}

	questions := pick(pool, size, rng)
	return catalog.Level{
		ID:        catalog.LevelIDWorkout,
		Title:     title,
		Questions: questions,
		Teaches:   conceptUnion(questions),
	}
}

// BuildConceptPractice assembles a synthetic level scoped to one named
// concept, drawing from every level that teaches it and backfilling from
// completed levels when short.
func BuildConceptPractice(levels []catalog.Level, concept string, completed []int, size int, rng catalog.Rand) catalog.Level {
	if size <= 0 {
		size = DefaultSize
	}

	target := map[string]bool{concept: true}
	seen := make(map[string]bool)
	var pool []catalog.Question
	for _, lvl := range levels {
		if teachesAny(lvl, target) {
			pool = appendEligible(pool, seen, lvl.Questions)
		}
	}
	if len(pool) < size {
		pool = appendEligible(pool, seen, fromCompleted(levels, completed))
	}

	questions := pick(pool, size, rng)
	return catalog.Level{
		ID:        catalog.LevelIDConceptPractice,
		Title:     "Practice: " + concept,
		Questions: questions,
		Teaches:   conceptUnion(questions),
	}
}

// appendEligible extends dst with the gradable, non-theory questions from
// pool, skipping ids already drawn into seen.
func appendEligible(dst []catalog.Question, seen map[string]bool, pool []catalog.Question) []catalog.Question {
	for _, q := range catalog.FilterValid(pool) {
		if q.Kind == catalog.KindTheory || seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		dst = append(dst, q)
	}
	return dst
}

// pick shuffles and caps the eligible pool, then randomizes option order so
// repeat runs do not replay the same layout.
func pick(pool []catalog.Question, size int, rng catalog.Rand) []catalog.Question {
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > size {
		pool = pool[:size]
	}

	lvl := catalog.BuildPracticeSet(catalog.Level{Questions: pool}, size, rng)
	return lvl.Questions
}

func teachesAny(lvl catalog.Level, set map[string]bool) bool {
	for _, c := range lvl.Teaches {
		if set[c] {
			return true
		}
	}
	return false
}

func fromCompleted(levels []catalog.Level, completed []int) []catalog.Question {
	done := make(map[int]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	var out []catalog.Question
	for _, lvl := range levels {
		if done[lvl.ID] {
			out = append(out, lvl.Questions...)
		}
	}
	return out
}

func conceptUnion(questions []catalog.Question) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range questions {
		for _, c := range q.Concepts {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}
