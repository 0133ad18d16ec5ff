package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codelingo/backend/internal/catalog"
	"github.com/codelingo/backend/internal/player"
)

type orderedRand struct{}

func (orderedRand) Intn(n int) int                     { return 0 }
func (orderedRand) Shuffle(n int, swap func(i, j int)) {}

func mcq(id string, concepts ...string) catalog.Question {
	return catalog.Question{
		ID:     id,
		Kind:   catalog.KindMultipleChoice,
		Prompt: "Prompt " + id,
		Options: []catalog.Option{
			{ID: id + "-a", Text: "right", Correct: true},
			{ID: id + "-b", Text: "wrong"},
		},
		Concepts: concepts,
	}
}

func theory(id string) catalog.Question {
	return catalog.Question{ID: id, Kind: catalog.KindTheory, TheoryBody: "Body"}
}

// brokenMCQ has no correct option, so it never survives the validity filter.
func brokenMCQ(id string, concepts ...string) catalog.Question {
	return catalog.Question{
		ID:       id,
		Kind:     catalog.KindMultipleChoice,
		Prompt:   "Prompt " + id,
		Options:  []catalog.Option{{ID: id + "-a", Text: "a"}, {ID: id + "-b", Text: "b"}},
		Concepts: concepts,
	}
}

func curriculum() []catalog.Level {
	return []catalog.Level{
		{
			ID: 101, Title: "Loops", Teaches: []string{"loops"},
			Questions: []catalog.Question{theory("t1"), mcq("q1", "loops"), mcq("q2", "loops")},
		},
		{
			ID: 102, Title: "Conditionals", Teaches: []string{"conditionals"},
			Questions: []catalog.Question{mcq("q3", "conditionals"), mcq("q4", "conditionals")},
		},
		{
			ID: 103, Title: "Functions", Teaches: []string{"functions"},
			Questions: []catalog.Question{mcq("q5", "functions"), mcq("q6", "functions")},
		},
	}
}

func TestBuildWorkoutTargetsWeakConcepts(t *testing.T) {
	mastery := player.Mastery{"loops": 20, "conditionals": 80, "functions": 60}

	lvl := BuildWorkout(curriculum(), mastery, nil, 5, orderedRand{})

	assert.Equal(t, catalog.LevelIDWorkout, lvl.ID)
	assert.Equal(t, "Smart Workout", lvl.Title)
	assert.Len(t, lvl.Questions, 2)
	for _, q := range lvl.Questions {
		assert.Contains(t, q.Concepts, "loops", "only weak-concept levels feed the pool")
	}
	assert.Equal(t, []string{"loops"}, lvl.Teaches)
}

func TestBuildWorkoutExcludesTheory(t *testing.T) {
	mastery := player.Mastery{"loops": 0}

	lvl := BuildWorkout(curriculum(), mastery, nil, 5, orderedRand{})

	for _, q := range lvl.Questions {
		assert.NotEqual(t, catalog.KindTheory, q.Kind)
	}
}

func TestBuildWorkoutBackfillsFromCompleted(t *testing.T) {
	// Only one weak-concept question pool is short of a full run; completed
	// levels top it up.
	mastery := player.Mastery{"loops": 20, "conditionals": 80, "functions": 80}

	lvl := BuildWorkout(curriculum(), mastery, []int{102, 103}, 5, orderedRand{})

	assert.Len(t, lvl.Questions, 5)
}

func TestBuildWorkoutBackfillCountsOnlyEligibleQuestions(t *testing.T) {
	// The weak level holds five raw questions, but theory and broken entries
	// leave only one that can actually be played. The run must still top up
	// to a full set from completed material.
	levels := []catalog.Level{
		{
			ID: 201, Title: "Maps", Teaches: []string{"maps"},
			Questions: []catalog.Question{
				mcq("m1", "maps"), brokenMCQ("m2", "maps"), brokenMCQ("m3", "maps"),
				brokenMCQ("m4", "maps"), theory("mt"),
			},
		},
		{
			ID: 202, Title: "Slices", Teaches: []string{"slices"},
			Questions: []catalog.Question{
				mcq("s1", "slices"), mcq("s2", "slices"), mcq("s3", "slices"), mcq("s4", "slices"),
			},
		},
	}
	mastery := player.Mastery{"maps": 10, "slices": 90}

	lvl := BuildWorkout(levels, mastery, []int{202}, 5, orderedRand{})

	assert.Len(t, lvl.Questions, 5)
}

func TestBuildConceptPracticeBackfillCountsOnlyEligibleQuestions(t *testing.T) {
	levels := []catalog.Level{
		{
			ID: 201, Title: "Maps", Teaches: []string{"maps"},
			Questions: []catalog.Question{
				mcq("m1", "maps"), brokenMCQ("m2", "maps"), brokenMCQ("m3", "maps"),
				brokenMCQ("m4", "maps"), theory("mt"),
			},
		},
		{
			ID: 202, Title: "Slices", Teaches: []string{"slices"},
			Questions: []catalog.Question{
				mcq("s1", "slices"), mcq("s2", "slices"), mcq("s3", "slices"), mcq("s4", "slices"),
			},
		},
	}

	lvl := BuildConceptPractice(levels, "maps", []int{202}, 5, orderedRand{})

	assert.Len(t, lvl.Questions, 5)
}

func TestBuildWorkoutReviewFallback(t *testing.T) {
	// Everything mastered: the run degrades to a review of completed levels.
	mastery := player.Mastery{"loops": 90, "conditionals": 90, "functions": 90}

	lvl := BuildWorkout(curriculum(), mastery, []int{102}, 5, orderedRand{})

	assert.Equal(t, "Review", lvl.Title)
	assert.Len(t, lvl.Questions, 2)
	for _, q := range lvl.Questions {
		assert.Contains(t, q.Concepts, "conditionals")
	}
}

func TestBuildWorkoutEmptyPool(t *testing.T) {
	lvl := BuildWorkout(curriculum(), player.Mastery{"loops": 90, "conditionals": 90, "functions": 90}, nil, 5, orderedRand{})

	assert.Empty(t, lvl.Questions, "nothing weak and nothing completed yields an empty run")
}

func TestBuildWorkoutDeduplicatesQuestions(t *testing.T) {
	levels := curriculum()
	// The same question appears through two levels teaching the weak concept.
	levels = append(levels, catalog.Level{
		ID: 104, Title: "Loops II", Teaches: []string{"loops"},
		Questions: []catalog.Question{mcq("q1", "loops")},
	})
	mastery := player.Mastery{"loops": 10, "conditionals": 90, "functions": 90}

	lvl := BuildWorkout(levels, mastery, nil, 5, orderedRand{})

	seen := map[string]int{}
	for _, q := range lvl.Questions {
		seen[q.ID]++
	}
	assert.Equal(t, 1, seen["q1"])
}

func TestBuildConceptPractice(t *testing.T) {
	lvl := BuildConceptPractice(curriculum(), "functions", nil, 5, orderedRand{})

	assert.Equal(t, catalog.LevelIDConceptPractice, lvl.ID)
	assert.Equal(t, "Practice: functions", lvl.Title)
	assert.Len(t, lvl.Questions, 2)
	for _, q := range lvl.Questions {
		assert.Contains(t, q.Concepts, "functions")
	}
}

func TestBuildConceptPracticeUnknownConcept(t *testing.T) {
	lvl := BuildConceptPractice(curriculum(), "recursion", []int{101}, 5, orderedRand{})

	// No level teaches it; the pool backfills from completed material.
	assert.Len(t, lvl.Questions, 2)
}
