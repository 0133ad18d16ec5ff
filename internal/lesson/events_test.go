package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codelingo/backend/internal/quest"
)

func TestApplyToQuestsLessonCompleted(t *testing.T) {
	state := quest.State{Active: []quest.Quest{
		{TemplateID: "lesson_3", Type: quest.TypeLesson, Target: 3},
		{TemplateID: "xp_150", Type: quest.TypeXP, Target: 150},
		{TemplateID: "perfect_1", Type: quest.TypePerfect, Target: 1},
	}}

	ApplyToQuests([]Event{{Type: EventLessonCompleted, LevelID: 101, XP: 68, Mistakes: 0}}, &state)

	assert.Equal(t, 1, state.Active[0].Current)
	assert.Equal(t, 68, state.Active[1].Current)
	assert.True(t, state.Active[2].Completed)
}

func TestApplyToQuestsImperfectLessonSkipsPerfect(t *testing.T) {
	state := quest.State{Active: []quest.Quest{
		{TemplateID: "perfect_1", Type: quest.TypePerfect, Target: 1},
	}}

	ApplyToQuests([]Event{{Type: EventLessonCompleted, XP: 44, Mistakes: 2}}, &state)

	assert.Zero(t, state.Active[0].Current)
}

func TestApplyToQuestsStreakExtended(t *testing.T) {
	state := quest.State{Active: []quest.Quest{
		{TemplateID: "streak_3", Type: quest.TypeStreak, Target: 3},
	}}

	ApplyToQuests([]Event{{Type: EventStreakExtended, Amount: 2}}, &state)

	assert.Equal(t, 2, state.Active[0].Current)
	assert.False(t, state.Active[0].Completed)
}

func TestApplyToQuestsIgnoresUnknownEvents(t *testing.T) {
	state := quest.State{Active: []quest.Quest{
		{TemplateID: "lesson_1", Type: quest.TypeLesson, Target: 1},
	}}

	ApplyToQuests([]Event{{Type: "something_else"}}, &state)

	assert.Zero(t, state.Active[0].Current)
}
