package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// orderedRand leaves slices untouched and always picks index 0, making quest
// draws deterministic.
type orderedRand struct{}

func (orderedRand) Intn(n int) int                     { return 0 }
func (orderedRand) Shuffle(n int, swap func(i, j int)) {}

func TestEnsureDailyGeneratesThreeQuests(t *testing.T) {
	var s State

	generated := s.EnsureDaily("2026-08-31", TemplatePool(), orderedRand{})

	assert.True(t, generated)
	assert.Len(t, s.Active, 3)
	assert.Equal(t, "2026-08-31", s.LastGenDate)
	for _, q := range s.Active {
		assert.Zero(t, q.Current)
		assert.False(t, q.Completed)
		assert.False(t, q.Claimed)
	}
}

func TestEnsureDailySameDayIsNoOp(t *testing.T) {
	var s State
	s.EnsureDaily("2026-08-31", TemplatePool(), orderedRand{})
	s.Active[0].Current = 2

	generated := s.EnsureDaily("2026-08-31", TemplatePool(), orderedRand{})

	assert.False(t, generated)
	assert.Equal(t, 2, s.Active[0].Current, "progress must survive within the same day")
}

func TestEnsureDailyRollsOverOnNewDate(t *testing.T) {
	var s State
	s.EnsureDaily("2026-08-31", TemplatePool(), orderedRand{})
	s.Active[0].Current = 2
	s.Active[1].Completed = true

	generated := s.EnsureDaily("2026-09-01", TemplatePool(), orderedRand{})

	assert.True(t, generated)
	assert.Len(t, s.Active, 3)
	for _, q := range s.Active {
		assert.Zero(t, q.Current)
		assert.False(t, q.Completed)
	}
}

func TestRecordAccumulatesAndCompletes(t *testing.T) {
	s := State{Active: []Quest{
		{TemplateID: "lesson_3", Type: TypeLesson, Target: 3, Reward: 30},
		{TemplateID: "xp_50", Type: TypeXP, Target: 50, Reward: 15},
	}}

	s.Record(TypeLesson, 1)
	assert.Equal(t, 1, s.Active[0].Current)
	assert.False(t, s.Active[0].Completed)

	s.Record(TypeLesson, 1)
	s.Record(TypeLesson, 1)
	assert.True(t, s.Active[0].Completed)

	s.Record(TypeXP, 120)
	assert.Equal(t, 50, s.Active[1].Current, "progress caps at target")
	assert.True(t, s.Active[1].Completed)
}

func TestRecordIgnoresCompletedQuests(t *testing.T) {
	s := State{Active: []Quest{
		{TemplateID: "lesson_1", Type: TypeLesson, Target: 1, Current: 1, Completed: true},
	}}

	s.Record(TypeLesson, 1)

	assert.Equal(t, 1, s.Active[0].Current)
}

func TestClaim(t *testing.T) {
	s := State{Active: []Quest{
		{TemplateID: "lesson_1", Type: TypeLesson, Target: 1, Current: 1, Completed: true, Reward: 10},
		{TemplateID: "xp_50", Type: TypeXP, Target: 50, Reward: 15},
	}}

	reward, err := s.Claim("lesson_1")
	assert.NoError(t, err)
	assert.Equal(t, 10, reward)
	assert.True(t, s.Active[0].Claimed)

	_, err = s.Claim("lesson_1")
	assert.ErrorIs(t, err, ErrNotClaimable, "claiming twice grants nothing")

	_, err = s.Claim("xp_50")
	assert.ErrorIs(t, err, ErrNotClaimable, "incomplete quests cannot be claimed")

	_, err = s.Claim("nope")
	assert.ErrorIs(t, err, ErrQuestNotFound)
}

func TestResetSwapsWithinRewardTier(t *testing.T) {
	s := State{Active: []Quest{
		{TemplateID: "lesson_1", Type: TypeLesson, Target: 1, Current: 0, Reward: 10},
	}}

	err := s.Reset("lesson_1", TemplatePool(), orderedRand{})

	assert.NoError(t, err)
	replacement := s.Active[0]
	assert.NotEqual(t, "lesson_1", replacement.TemplateID)
	assert.LessOrEqual(t, replacement.Reward, 20, "replacement stays in the low tier")
	assert.Zero(t, replacement.Current)
	assert.False(t, replacement.Completed)
}

func TestResetRejectsCompletedQuest(t *testing.T) {
	s := State{Active: []Quest{
		{TemplateID: "lesson_1", Type: TypeLesson, Target: 1, Current: 1, Completed: true, Reward: 10},
	}}

	err := s.Reset("lesson_1", TemplatePool(), orderedRand{})

	assert.ErrorIs(t, err, ErrQuestCompleted)
	assert.Equal(t, "lesson_1", s.Active[0].TemplateID)
}

func TestResetWithoutTierMateRejectsCleanly(t *testing.T) {
	// A pool with one template per tier leaves nothing to swap to.
	pool := []Template{
		{ID: "lesson_1", Description: "Complete 1 lesson", Type: TypeLesson, Target: 1, Reward: 10},
		{ID: "xp_150", Description: "Earn 150 XP", Type: TypeXP, Target: 150, Reward: 40},
		{ID: "xp_300", Description: "Earn 300 XP", Type: TypeXP, Target: 300, Reward: 80},
	}
	var s State
	s.EnsureDaily("2026-08-31", pool, orderedRand{})
	s.Active[0].Current = 1
	before := append([]Quest(nil), s.Active...)

	err := s.Reset("lesson_1", pool, orderedRand{})

	assert.ErrorIs(t, err, ErrNoReplacement)
	assert.Equal(t, before, s.Active, "rejected reset mutates nothing")
}

func TestResetUnknownQuest(t *testing.T) {
	s := State{Active: []Quest{
		{TemplateID: "lesson_1", Type: TypeLesson, Target: 1, Reward: 10},
	}}

	err := s.Reset("nope", TemplatePool(), orderedRand{})

	assert.ErrorIs(t, err, ErrQuestNotFound)
}

func TestRewardTiers(t *testing.T) {
	assert.Equal(t, tierLow, rewardTier(10))
	assert.Equal(t, tierLow, rewardTier(20))
	assert.Equal(t, tierMid, rewardTier(30))
	assert.Equal(t, tierMid, rewardTier(60))
	assert.Equal(t, tierHigh, rewardTier(70))
}
