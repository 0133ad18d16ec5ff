package catalog

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// orderedRand keeps slices in their original order so selection is
// deterministic.
type orderedRand struct{}

func (orderedRand) Intn(n int) int                     { return 0 }
func (orderedRand) Shuffle(n int, swap func(i, j int)) {}

// reverseRand reverses every slice it shuffles, so tests can detect that a
// shuffle actually happened.
type reverseRand struct{}

func (reverseRand) Intn(n int) int { return 0 }
func (reverseRand) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func mcq(id string) Question {
	return Question{
		ID:     id,
		Kind:   KindMultipleChoice,
		Prompt: "Prompt " + id,
		Options: []Option{
			{ID: id + "-a", Text: "right", Correct: true},
			{ID: id + "-b", Text: "wrong"},
			{ID: id + "-c", Text: "also wrong"},
		},
	}
}

func theoryCard(id string) Question {
	return Question{ID: id, Kind: KindTheory, TheoryBody: "Body " + id}
}

func TestBuildPracticeSetPinsTheoryFirst(t *testing.T) {
	level := Level{
		ID:    1,
		Title: "Variables",
		Questions: []Question{
			mcq("q1"),
			mcq("q2"),
			theoryCard("t1"),
			mcq("q3"),
			mcq("q4"),
			mcq("q5"),
		},
	}

	set := BuildPracticeSet(level, 5, reverseRand{})

	assert.Len(t, set.Questions, 5)
	assert.Equal(t, KindTheory, set.Questions[0].Kind, "theory must open the session")
	for _, q := range set.Questions[1:] {
		assert.NotEqual(t, KindTheory, q.Kind)
	}
}

func TestBuildPracticeSetCapsAtSize(t *testing.T) {
	level := Level{ID: 2, Questions: []Question{
		mcq("q1"), mcq("q2"), mcq("q3"), mcq("q4"), mcq("q5"), mcq("q6"), mcq("q7"),
	}}

	set := BuildPracticeSet(level, 5, orderedRand{})

	assert.Len(t, set.Questions, 5)
}

func TestBuildPracticeSetShortLevelKeepsAll(t *testing.T) {
	level := Level{ID: 3, Questions: []Question{mcq("q1"), mcq("q2")}}

	set := BuildPracticeSet(level, 5, orderedRand{})

	assert.Len(t, set.Questions, 2)
}

func TestBuildPracticeSetDropsInvalidQuestions(t *testing.T) {
	level := Level{ID: 4, Questions: []Question{
		mcq("q1"),
		{ID: "broken", Kind: KindFillInBlank, Prompt: "no answer"},
		mcq("q2"),
	}}

	set := BuildPracticeSet(level, 5, orderedRand{})

	assert.Len(t, set.Questions, 2)
	for _, q := range set.Questions {
		assert.NotEqual(t, "broken", q.ID)
	}
}

func TestBuildPracticeSetShufflesOptionsWithoutMutatingCatalog(t *testing.T) {
	original := mcq("q1")
	level := Level{ID: 5, Questions: []Question{original}}

	set := BuildPracticeSet(level, 5, reverseRand{})

	got := set.Questions[0]
	assert.Equal(t, "q1-c", got.Options[0].ID, "option order should be shuffled")
	assert.Equal(t, "q1-a", level.Questions[0].Options[0].ID, "catalog copy must stay untouched")

	correct, ok := got.CorrectOptionID()
	assert.True(t, ok)
	assert.Equal(t, "q1-a", correct, "correct flag follows the option through the shuffle")
}

func TestServiceGetLevelConsultsSourcesInOrder(t *testing.T) {
	first := NewStaticSource([]Level{{ID: 1, Title: "from first", Questions: []Question{mcq("q1")}}})
	second := NewStaticSource([]Level{
		{ID: 1, Title: "from second", Questions: []Question{mcq("q9")}},
		{ID: 2, Title: "only in second", Questions: []Question{mcq("q2")}},
	})
	svc := NewService([]Source{first, second}, nil, ServiceOptions{}, zerolog.New(io.Discard))

	lvl, ok := svc.GetLevel(context.Background(), 1, orderedRand{})
	assert.True(t, ok)
	assert.Equal(t, "from first", lvl.Title)

	lvl, ok = svc.GetLevel(context.Background(), 2, orderedRand{})
	assert.True(t, ok)
	assert.Equal(t, "only in second", lvl.Title)

	_, ok = svc.GetLevel(context.Background(), 404, orderedRand{})
	assert.False(t, ok)
}

func TestServiceAllLevelsDeduplicates(t *testing.T) {
	first := NewStaticSource([]Level{{ID: 1}, {ID: 2}})
	second := NewStaticSource([]Level{{ID: 2}, {ID: 3}})
	svc := NewService([]Source{first, second}, nil, ServiceOptions{}, zerolog.New(io.Discard))

	levels := svc.AllLevels(context.Background())

	assert.Len(t, levels, 3)
}

func TestIsSynthetic(t *testing.T) {
	assert.True(t, IsSynthetic(LevelIDWorkout))
	assert.True(t, IsSynthetic(LevelIDConceptPractice))
	assert.False(t, IsSynthetic(101))
}
