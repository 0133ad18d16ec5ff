package quest

import "errors"

// Quest event types. Progress accrues when a matching event is recorded.
const (
	TypeLesson  = "lesson"
	TypeXP      = "xp"
	TypePerfect = "perfect"
	TypeStreak  = "streak"
)

// Reward tiers used when swapping a quest for a replacement.
const (
	tierLow  = iota // reward <= 20
	tierMid         // reward <= 60
	tierHigh        // reward > 60
)

const dailyQuestCount = 3

var (
	// ErrNotClaimable rejects claims on incomplete or already-claimed quests.
	ErrNotClaimable = errors.New("quest not claimable")
	// ErrQuestNotFound rejects operations on unknown template ids.
	ErrQuestNotFound = errors.New("quest not found")
	// ErrQuestCompleted rejects resetting a quest that is already done.
	ErrQuestCompleted = errors.New("quest already completed")
	// ErrNoReplacement rejects a reset when no same-tier template remains.
	ErrNoReplacement = errors.New("no replacement quest available")
)

// Rand is the randomness needed for quest draws. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Quest is one live daily quest instantiated from a template.
type Quest struct {
	TemplateID  string `json:"template_id"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Target      int    `json:"target"`
	Current     int    `json:"current"`
	Reward      int    `json:"reward"` // gems
	Completed   bool   `json:"completed"`
	Claimed     bool   `json:"claimed"`
}

// State is the player's live quest slate, persisted inside the profile blob.
type State struct {
	LastGenDate string  `json:"last_gen_date"` // calendar date, e.g. 2026-08-31
	Active      []Quest `json:"active"`
}

// EnsureDaily regenerates the slate when the calendar date has rolled over.
// Three quests are drawn from pool without replacement with progress,
// completed and claimed zeroed. Returns true if a new slate was generated.
func (s *State) EnsureDaily(today string, pool []Template, rng Rand) bool {
	if s.LastGenDate == today && len(s.Active) > 0 {
		return false
	}

	draw := append(make([]Template, 0, len(pool)), pool...)
	rng.Shuffle(len(draw), func(i, j int) {
		draw[i], draw[j] = draw[j], draw[i]
	})

	count := dailyQuestCount
	if count > len(draw) {
		count = len(draw)
	}

	s.Active = s.Active[:0]
	for _, tpl := range draw[:count] {
		s.Active = append(s.Active, Quest{
			TemplateID:  tpl.ID,
			Description: tpl.Description,
			Type:        tpl.Type,
			Target:      tpl.Target,
			Reward:      tpl.Reward,
		})
	}
	s.LastGenDate = today
	return true
}

// Record adds amount to every active, not-yet-completed quest of the matching
// type, marking quests completed once their target is reached.
func (s *State) Record(eventType string, amount int) {
	for i := range s.Active {
		q := &s.Active[i]
		if q.Type != eventType || q.Completed {
			continue
		}
		q.Current += amount
		if q.Current >= q.Target {
			q.Current = q.Target
			q.Completed = true
		}
	}
}

// Claim marks a completed quest claimed and returns its gem reward. Claiming
// twice, or claiming an incomplete quest, mutates nothing and grants nothing.
func (s *State) Claim(templateID string) (int, error) {
	for i := range s.Active {
		q := &s.Active[i]
		if q.TemplateID != templateID {
			continue
		}
		if !q.Completed || q.Claimed {
			return 0, ErrNotClaimable
		}
		q.Claimed = true
		return q.Reward, nil
	}
	return 0, ErrQuestNotFound
}

// Reset swaps an uncompleted quest for a fresh template of the same reward
// tier drawn from pool, excluding the current template. When no tier-mate
// exists the reset is rejected with no mutation so the caller must not
// charge for it.
func (s *State) Reset(templateID string, pool []Template, rng Rand) error {
	for i := range s.Active {
		q := &s.Active[i]
		if q.TemplateID != templateID {
			continue
		}
		if q.Completed {
			return ErrQuestCompleted
		}

		candidates := make([]Template, 0)
		for _, tpl := range pool {
			if tpl.ID != templateID && rewardTier(tpl.Reward) == rewardTier(q.Reward) {
				candidates = append(candidates, tpl)
			}
		}
		if len(candidates) == 0 {
			return ErrNoReplacement
		}

		tpl := candidates[rng.Intn(len(candidates))]
		s.Active[i] = Quest{
			TemplateID:  tpl.ID,
			Description: tpl.Description,
			Type:        tpl.Type,
			Target:      tpl.Target,
			Reward:      tpl.Reward,
		}
		return nil
	}
	return ErrQuestNotFound
}

func rewardTier(reward int) int {
	switch {
	case reward <= 20:
		return tierLow
	case reward <= 60:
		return tierMid
	default:
		return tierHigh
	}
}
