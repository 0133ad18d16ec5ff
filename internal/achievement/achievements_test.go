package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codelingo/backend/internal/lesson/scoring"
	"github.com/codelingo/backend/internal/player"
)

func unlockedIDs(defs []Definition) []string {
	ids := make([]string, 0, len(defs))
	for _, def := range defs {
		ids = append(ids, def.ID)
	}
	return ids
}

func TestEvaluateFirstLesson(t *testing.T) {
	p := player.NewProfile()
	p.LessonsCompleted = 1
	p.PerfectLessons = 1
	p.Streak = 1

	unlocked := Evaluate(Defaults(), p, scoring.SessionResult{MaxCombo: 4})

	ids := unlockedIDs(unlocked)
	assert.Contains(t, ids, "first_lesson")
	assert.Contains(t, ids, "perfect_1")
	assert.NotContains(t, ids, "combo_5")
	assert.NotContains(t, ids, "streak_3")
}

func TestEvaluateSkipsAlreadyEarned(t *testing.T) {
	p := player.NewProfile()
	p.LessonsCompleted = 2
	p.Achievements = []string{"first_lesson"}

	unlocked := Evaluate(Defaults(), p, scoring.SessionResult{})

	assert.NotContains(t, unlockedIDs(unlocked), "first_lesson", "each achievement fires at most once")
}

func TestEvaluateComboUsesSessionResult(t *testing.T) {
	p := player.NewProfile()

	unlocked := Evaluate(Defaults(), p, scoring.SessionResult{MaxCombo: 5})

	assert.Contains(t, unlockedIDs(unlocked), "combo_5")
}

func TestEvaluateMasteredConcept(t *testing.T) {
	p := player.NewProfile()
	p.Mastery = player.Mastery{"loops": player.MasteryMax}

	unlocked := Evaluate(Defaults(), p, scoring.SessionResult{})

	assert.Contains(t, unlockedIDs(unlocked), "mastered_concept")
}

func TestEvaluateStreakMilestones(t *testing.T) {
	p := player.NewProfile()
	p.Streak = 7

	ids := unlockedIDs(Evaluate(Defaults(), p, scoring.SessionResult{}))

	assert.Contains(t, ids, "streak_3")
	assert.Contains(t, ids, "streak_7")
	assert.NotContains(t, ids, "streak_30")
}

func TestDefaultsHaveUniqueIDsAndPredicates(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range Defaults() {
		assert.False(t, seen[def.ID], def.ID)
		seen[def.ID] = true
		assert.NotNil(t, def.Unlocked, def.ID)
		assert.Greater(t, def.Gems, 0, def.ID)
	}
}
