package achievement

import (
	"github.com/codelingo/backend/internal/lesson/scoring"
	"github.com/codelingo/backend/internal/player"
)

// Predicate decides whether an achievement is satisfied by the updated
// profile and the session result that triggered the check. Predicates are
// supplied as configuration; the reward flow only orchestrates evaluation
// order and dedup.
type Predicate func(p *player.Profile, last scoring.SessionResult) bool

// Definition describes one achievement and its gem reward.
type Definition struct {
	ID          string
	Name        string
	Description string
	Gems        int
	Unlocked    Predicate
}

// Defaults returns the built-in achievement set.
func Defaults() []Definition {
	return []Definition{
		{
			ID: "first_lesson", Name: "First Steps", Description: "Complete your first lesson", Gems: 25,
			Unlocked: func(p *player.Profile, _ scoring.SessionResult) bool {
				return p.LessonsCompleted >= 1
			},
		},
		{
			ID: "lessons_10", Name: "Regular", Description: "Complete 10 lessons", Gems: 50,
			Unlocked: func(p *player.Profile, _ scoring.SessionResult) bool {
				return p.LessonsCompleted >= 10
			},
		},
		{
			ID: "lessons_50", Name: "Scholar", Description: "Complete 50 lessons", Gems: 150,
			Unlocked: func(p *player.Profile, _ scoring.SessionResult) bool {
				return p.LessonsCompleted >= 50
			},
		},
		{
			ID: "perfect_1", Name: "Flawless", Description: "Finish a lesson with no mistakes", Gems: 20,
			Unlocked: func(p *player.Profile, _ scoring.SessionResult) bool {
				return p.PerfectLessons >= 1
			},
		},
		{
			ID: "perfect_10", Name: "Perfectionist", Description: "Finish 10 perfect lessons", Gems: 80,
			Unlocked: func(p *player.Profile, _ scoring.SessionResult) bool {
				return p.PerfectLessons >= 10
			},
		},
		{
			ID: "combo_5", Name: "On Fire", Description: "Hit a 5-answer combo", Gems: 15,
			Unlocked: func(_ *player.Profile, last scoring.SessionResult) bool {
				return last.MaxCombo >= 5
			},
		},
		{
			ID: "streak_3", Name: "Warming Up", Description: "Reach a 3-day streak", Gems: 15,
			Unlocked: func(p *player.Profile, _ scoring.SessionResult) bool {
				return p.Streak >= 3
			},
		},
		{
			ID: "streak_7", Name: "Week Warrior", Description: "Reach a 7-day streak", Gems: 40,
			Unlocked: func(p *player.Profile, _ scoring.SessionResult) bool {
				return p.Streak >= 7
			},
		},
		{
			ID: "streak_30", Name: "Monthly Master", Description: "Reach a 30-day streak", Gems: 120,
			Unlocked: func(p *player.Profile, _ scoring.SessionResult) bool {
				return p.Streak >= 30
			},
		},
		{
			ID: "xp_1000", Name: "Rising Star", Description: "Earn 1,000 total XP", Gems: 30,
			Unlocked: func(p *player.Profile, _ scoring.SessionResult) bool {
				return p.TotalXP >= 1000
			},
		},
		{
			ID: "mastered_concept", Name: "Deep Knowledge", Description: "Bring a concept to full mastery", Gems: 50,
			Unlocked: func(p *player.Profile, _ scoring.SessionResult) bool {
				for _, score := range p.Mastery {
					if score >= player.MasteryMax {
						return true
					}
				}
				return false
			},
		},
	}
}

// Evaluate returns newly satisfied achievements, skipping ids already on the
// profile. Each achievement fires at most once; the caller appends ids and
// credits rewards.
func Evaluate(defs []Definition, p *player.Profile, last scoring.SessionResult) []Definition {
	var unlocked []Definition
	for _, def := range defs {
		if def.Unlocked == nil || p.HasAchievement(def.ID) {
			continue
		}
		if def.Unlocked(p, last) {
			unlocked = append(unlocked, def)
		}
	}
	return unlocked
}
