package lesson

import "github.com/codelingo/backend/internal/quest"

// Domain event types emitted by the reward flow. The quest tracker is their
// only consumer today; the list keeps production and consumption decoupled
// without a real message bus.
const (
	EventLessonCompleted = "lesson_completed"
	EventStreakExtended  = "streak_extended"
)

// Event is one domain occurrence derived from a finished session.
type Event struct {
	Type     string `json:"type"`
	LevelID  int    `json:"level_id,omitempty"`
	XP       int    `json:"xp,omitempty"`
	Mistakes int    `json:"mistakes,omitempty"`
	Amount   int    `json:"amount,omitempty"`
}

// ApplyToQuests folds events into quest progress.
func ApplyToQuests(events []Event, state *quest.State) {
	for _, ev := range events {
		switch ev.Type {
		case EventLessonCompleted:
			state.Record(quest.TypeLesson, 1)
			state.Record(quest.TypeXP, ev.XP)
			if ev.Mistakes == 0 {
				state.Record(quest.TypePerfect, 1)
			}
		case EventStreakExtended:
			state.Record(quest.TypeStreak, ev.Amount)
		}
	}
}
