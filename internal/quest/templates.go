package quest

// Template describes a daily quest blueprint. Reward tiers: low <=20,
// mid <=60, high >60 gems.
type Template struct {
	ID          string
	Description string
	Type        string
	Target      int
	Reward      int
}

// TemplatePool returns a fresh copy of the daily quest templates.
func TemplatePool() []Template {
	return []Template{
		{ID: "lesson_1", Description: "Complete 1 lesson", Type: TypeLesson, Target: 1, Reward: 10},
		{ID: "lesson_3", Description: "Complete 3 lessons", Type: TypeLesson, Target: 3, Reward: 30},
		{ID: "lesson_5", Description: "Complete 5 lessons", Type: TypeLesson, Target: 5, Reward: 70},
		{ID: "xp_50", Description: "Earn 50 XP", Type: TypeXP, Target: 50, Reward: 15},
		{ID: "xp_150", Description: "Earn 150 XP", Type: TypeXP, Target: 150, Reward: 40},
		{ID: "xp_300", Description: "Earn 300 XP", Type: TypeXP, Target: 300, Reward: 80},
		{ID: "perfect_1", Description: "Finish a lesson with no mistakes", Type: TypePerfect, Target: 1, Reward: 20},
		{ID: "perfect_3", Description: "Finish 3 lessons with no mistakes", Type: TypePerfect, Target: 3, Reward: 60},
		{ID: "streak_keep", Description: "Practice today to keep your streak", Type: TypeStreak, Target: 1, Reward: 10},
		{ID: "streak_3", Description: "Reach a 3-day streak", Type: TypeStreak, Target: 3, Reward: 50},
	}
}
