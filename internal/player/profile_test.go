package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var baseTime = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func TestNewProfileStarterKit(t *testing.T) {
	p := NewProfile()

	assert.Equal(t, DefaultMaxHearts, p.Hearts)
	assert.Equal(t, 100, p.Gems)
	assert.Equal(t, 1, p.SkipTokens)
	assert.NotNil(t, p.Mastery)
	assert.True(t, p.CanPlay())
}

func TestLoseHeartStampsRegenClock(t *testing.T) {
	p := NewProfile()

	p.LoseHeart(baseTime)

	assert.Equal(t, 4, p.Hearts)
	assert.NotNil(t, p.LastHeartLost)
	assert.Equal(t, baseTime, *p.LastHeartLost)
}

func TestLoseHeartPremiumIsImmune(t *testing.T) {
	p := NewProfile()
	p.IsPremium = true

	p.LoseHeart(baseTime)

	assert.Equal(t, DefaultMaxHearts, p.Hearts)
	assert.Nil(t, p.LastHeartLost)
}

func TestRegenHeartsLazy(t *testing.T) {
	p := NewProfile()
	p.LoseHeart(baseTime)
	p.LoseHeart(baseTime)
	p.LoseHeart(baseTime)
	assert.Equal(t, 2, p.Hearts)

	// Not enough elapsed time: nothing recovers.
	p.RegenHearts(baseTime.Add(20*time.Minute), DefaultMaxHearts, DefaultRegenInterval)
	assert.Equal(t, 2, p.Hearts)

	// One full interval recovers one heart and advances the clock so the
	// remainder keeps counting toward the next one.
	p.RegenHearts(baseTime.Add(40*time.Minute), DefaultMaxHearts, DefaultRegenInterval)
	assert.Equal(t, 3, p.Hearts)
	assert.Equal(t, baseTime.Add(35*time.Minute), *p.LastHeartLost)

	// Plenty of time: caps at max and clears the clock.
	p.RegenHearts(baseTime.Add(6*time.Hour), DefaultMaxHearts, DefaultRegenInterval)
	assert.Equal(t, DefaultMaxHearts, p.Hearts)
	assert.Nil(t, p.LastHeartLost)
}

func TestRegenHeartsPremiumPinnedAtMax(t *testing.T) {
	p := NewProfile()
	p.Hearts = 1
	p.IsPremium = true

	p.RegenHearts(baseTime, DefaultMaxHearts, DefaultRegenInterval)

	assert.Equal(t, DefaultMaxHearts, p.Hearts)
}

func TestCanPlay(t *testing.T) {
	p := NewProfile()
	p.Hearts = 0
	assert.False(t, p.CanPlay())

	p.IsPremium = true
	assert.True(t, p.CanPlay(), "premium players always can")
}

func TestSpendGems(t *testing.T) {
	p := NewProfile()

	assert.NoError(t, p.SpendGems(30))
	assert.Equal(t, 70, p.Gems)

	err := p.SpendGems(200)
	assert.ErrorIs(t, err, ErrInsufficientGems)
	assert.Equal(t, 70, p.Gems, "failed spend mutates nothing")
}

func TestSpendSkipToken(t *testing.T) {
	p := NewProfile()

	assert.NoError(t, p.SpendSkipToken())
	assert.Zero(t, p.SkipTokens)
	assert.ErrorIs(t, p.SpendSkipToken(), ErrNoSkipTokens)
}

func TestAddCompletedLevelSetSemantics(t *testing.T) {
	p := NewProfile()

	assert.True(t, p.AddCompletedLevel(101))
	assert.False(t, p.AddCompletedLevel(101), "repeat completion is not newly added")
	assert.Equal(t, []int{101}, p.CompletedLevels)
	assert.True(t, p.HasCompleted(101))
	assert.False(t, p.HasCompleted(102))
}

func TestTouchActivityStreak(t *testing.T) {
	p := NewProfile()

	day1 := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	assert.True(t, p.TouchActivity(day1))
	assert.Equal(t, 1, p.Streak)

	// Same day again: no change.
	assert.False(t, p.TouchActivity(day1.Add(5*time.Hour)))
	assert.Equal(t, 1, p.Streak)

	// Consecutive day extends.
	assert.True(t, p.TouchActivity(day1.AddDate(0, 0, 1)))
	assert.Equal(t, 2, p.Streak)

	// A missed day restarts at 1.
	assert.True(t, p.TouchActivity(day1.AddDate(0, 0, 4)))
	assert.Equal(t, 1, p.Streak)
}

func TestBuyHeartRefill(t *testing.T) {
	p := NewProfile()
	p.Hearts = 1
	lost := baseTime
	p.LastHeartLost = &lost

	assert.NoError(t, p.BuyHeartRefill(50, DefaultMaxHearts))
	assert.Equal(t, DefaultMaxHearts, p.Hearts)
	assert.Equal(t, 50, p.Gems)
	assert.Nil(t, p.LastHeartLost)
}

func TestBuyHeartRefillRejectedWhenFull(t *testing.T) {
	p := NewProfile()

	err := p.BuyHeartRefill(50, DefaultMaxHearts)

	assert.ErrorIs(t, err, ErrHeartsFull)
	assert.Equal(t, 100, p.Gems)
}

func TestBuyHeartRefillRejectedForPremium(t *testing.T) {
	p := NewProfile()
	p.IsPremium = true
	p.Hearts = 0

	assert.ErrorIs(t, p.BuyHeartRefill(50, DefaultMaxHearts), ErrHeartsFull)
}

func TestBuyHeartRefillUnaffordable(t *testing.T) {
	p := NewProfile()
	p.Hearts = 1
	p.Gems = 10

	err := p.BuyHeartRefill(50, DefaultMaxHearts)

	assert.ErrorIs(t, err, ErrInsufficientGems)
	assert.Equal(t, 1, p.Hearts, "failed purchase refills nothing")
}

func TestBuySkipToken(t *testing.T) {
	p := NewProfile()

	assert.NoError(t, p.BuySkipToken(30))
	assert.Equal(t, 2, p.SkipTokens)
	assert.Equal(t, 70, p.Gems)

	p.Gems = 5
	assert.ErrorIs(t, p.BuySkipToken(30), ErrInsufficientGems)
}
