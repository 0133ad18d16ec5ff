package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasteryApplyOutcomePerfect(t *testing.T) {
	m := Mastery{"loops": 50}

	m.ApplyOutcome([]string{"loops", "variables"}, 0)

	assert.Equal(t, 60, m.Get("loops"))
	assert.Equal(t, 10, m.Get("variables"), "unseen concepts start at zero")
}

func TestMasteryApplyOutcomeScalesWithMistakes(t *testing.T) {
	m := Mastery{"loops": 50}

	m.ApplyOutcome([]string{"loops"}, 3)

	assert.Equal(t, 20, m.Get("loops"))
}

func TestMasteryClampsToBounds(t *testing.T) {
	m := Mastery{"high": 95, "low": 5}

	m.ApplyOutcome([]string{"high"}, 0)
	m.ApplyOutcome([]string{"low"}, 4)

	assert.Equal(t, MasteryMax, m.Get("high"))
	assert.Equal(t, MasteryMin, m.Get("low"))
}

func TestMasteryIgnoresEmptyTerms(t *testing.T) {
	m := Mastery{}

	m.ApplyOutcome([]string{""}, 0)

	assert.Empty(t, m)
}

func TestWeakConceptsSortedBelowThreshold(t *testing.T) {
	m := Mastery{"zebra": 10, "apple": 59, "solid": 60, "mastered": 100}

	weak := m.WeakConcepts()

	assert.Equal(t, []string{"apple", "zebra"}, weak)
}

func TestIsWeak(t *testing.T) {
	m := Mastery{"known": 60}

	assert.False(t, m.IsWeak("known"))
	assert.True(t, m.IsWeak("unseen"), "unseen concepts are weak by definition")
}
