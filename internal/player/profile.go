package player

import (
	"errors"
	"time"

	"github.com/codelingo/backend/internal/quest"
)

// Gameplay defaults; services may override via config.
const (
	DefaultMaxHearts     = 5
	DefaultRegenInterval = 35 * time.Minute

	startingGems       = 100
	startingSkipTokens = 1
)

var (
	// ErrOutOfHearts blocks starting or continuing a session with no lives.
	ErrOutOfHearts = errors.New("out of hearts")
	// ErrInsufficientGems rejects purchases the player cannot afford.
	ErrInsufficientGems = errors.New("insufficient gems")
	// ErrNoSkipTokens rejects a skip with an empty token balance.
	ErrNoSkipTokens = errors.New("no skip tokens")
	// ErrHeartsFull rejects a refill purchase at full hearts.
	ErrHeartsFull = errors.New("hearts already full")
)

const dateLayout = "2006-01-02"

// Profile is the single shared mutable aggregate for one player: hearts,
// currency, XP, progress, mastery and quest state. It has one owner (the
// player) and no concurrent writers within a session; it round-trips to the
// progress store as one JSON blob.
type Profile struct {
	Hearts            int         `json:"hearts"`
	LastHeartLost     *time.Time  `json:"last_heart_lost,omitempty"`
	Gems              int         `json:"gems"`
	TotalXP           int         `json:"total_xp"`
	CompletedLevels   []int       `json:"completed_levels"`
	LessonsCompleted  int         `json:"lessons_completed"`
	PerfectLessons    int         `json:"perfect_lessons"`
	QuestionsAnswered int         `json:"questions_answered"`
	SkipTokens        int         `json:"skip_tokens"`
	IsPremium         bool        `json:"is_premium"`
	Streak            int         `json:"streak"`
	LastActiveDate    string      `json:"last_active_date,omitempty"`
	Mastery           Mastery     `json:"mastery"`
	Quests            quest.State `json:"quests"`
	Achievements      []string    `json:"achievements,omitempty"`
}

// NewProfile creates a fresh profile with full hearts and starter currency.
func NewProfile() *Profile {
	return &Profile{
		Hearts:     DefaultMaxHearts,
		Gems:       startingGems,
		SkipTokens: startingSkipTokens,
		Mastery:    Mastery{},
	}
}

// Normalize repairs zero-value fields after JSON decoding.
func (p *Profile) Normalize() {
	if p.Mastery == nil {
		p.Mastery = Mastery{}
	}
}

// CanPlay reports whether a session may start or continue. Premium players
// always can.
func (p *Profile) CanPlay() bool {
	return p.IsPremium || p.Hearts > 0
}

// RegenHearts applies passive time-based recovery: one heart per interval
// since the last heart was lost, capped at max. Premium players are pinned at
// max. Evaluated lazily on read; there are no background timers.
func (p *Profile) RegenHearts(now time.Time, max int, interval time.Duration) {
	if max <= 0 {
		max = DefaultMaxHearts
	}
	if interval <= 0 {
		interval = DefaultRegenInterval
	}
	if p.IsPremium {
		p.Hearts = max
		p.LastHeartLost = nil
		return
	}
	if p.Hearts >= max || p.LastHeartLost == nil {
		return
	}
	recovered := int(now.Sub(*p.LastHeartLost) / interval)
	if recovered <= 0 {
		return
	}
	p.Hearts += recovered
	if p.Hearts >= max {
		p.Hearts = max
		p.LastHeartLost = nil
		return
	}
	next := p.LastHeartLost.Add(time.Duration(recovered) * interval)
	p.LastHeartLost = &next
}

// LoseHeart deducts one life and stamps the regeneration clock. Premium
// players never lose hearts.
func (p *Profile) LoseHeart(now time.Time) {
	if p.IsPremium || p.Hearts <= 0 {
		return
	}
	p.Hearts--
	t := now
	p.LastHeartLost = &t
}

// SpendGems deducts cost, rejecting with no mutation when unaffordable.
func (p *Profile) SpendGems(cost int) error {
	if p.Gems < cost {
		return ErrInsufficientGems
	}
	p.Gems -= cost
	return nil
}

// SpendSkipToken consumes one skip token.
func (p *Profile) SpendSkipToken() error {
	if p.SkipTokens <= 0 {
		return ErrNoSkipTokens
	}
	p.SkipTokens--
	return nil
}

// HasCompleted reports whether the level id is already in completedLevels.
func (p *Profile) HasCompleted(levelID int) bool {
	for _, id := range p.CompletedLevels {
		if id == levelID {
			return true
		}
	}
	return false
}

// AddCompletedLevel appends the level id with set semantics; returns true if
// it was newly added.
func (p *Profile) AddCompletedLevel(levelID int) bool {
	if p.HasCompleted(levelID) {
		return false
	}
	p.CompletedLevels = append(p.CompletedLevels, levelID)
	return true
}

// HasAchievement reports whether the achievement already fired.
func (p *Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// TouchActivity records activity on the calendar date of now, extending or
// restarting the daily streak. Returns true on the first activity of the day.
func (p *Profile) TouchActivity(now time.Time) bool {
	today := now.Format(dateLayout)
	if p.LastActiveDate == today {
		return false
	}
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if p.LastActiveDate == yesterday {
		p.Streak++
	} else {
		p.Streak = 1
	}
	p.LastActiveDate = today
	return true
}
