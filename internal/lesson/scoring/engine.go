package scoring

import "math"

// RewardConfig holds configurable reward constants (defaults match the
// production values).
type RewardConfig struct {
	BaseXPPerQuestion    int // default: 10
	ComboBonusMultiplier int // default: 2 per max-combo step
	PerfectLessonBonus   int // default: 20, only when mistake-free
	BaseGems             int // default: 8 per completed session
	PerfectGemBonus      int // default: 5 extra when mistake-free
}

// DefaultRewardConfig returns production defaults.
func DefaultRewardConfig() RewardConfig {
	return RewardConfig{
		BaseXPPerQuestion:    10,
		ComboBonusMultiplier: 2,
		PerfectLessonBonus:   20,
		BaseGems:             8,
		PerfectGemBonus:      5,
	}
}

// SessionResult is the reward breakdown for one finished session. XP and gems
// are independent reward tracks.
type SessionResult struct {
	LevelID      int  `json:"level_id"`
	Synthetic    bool `json:"synthetic"`
	BaseXP       int  `json:"base_xp"`
	ComboBonus   int  `json:"combo_bonus"`
	PerfectBonus int  `json:"perfect_bonus"`
	TotalXP      int  `json:"total_xp"`
	Gems         int  `json:"gems"`
	CorrectCount int  `json:"correct_count"`
	MistakeCount int  `json:"mistake_count"`
	MaxCombo     int  `json:"max_combo"`
}

// Perfect reports a mistake-free run.
func (r SessionResult) Perfect() bool {
	return r.MistakeCount == 0
}

// Engine converts session tallies into reward deltas.
type Engine struct {
	config RewardConfig
}

// NewEngine creates a reward engine with the provided config.
func NewEngine(config RewardConfig) *Engine {
	return &Engine{config: config}
}

// Result computes the reward breakdown:
//   - baseXP: correct answers times the per-question rate
//   - comboBonus: best consecutive-correct streak times the multiplier
//   - perfectBonus: flat bonus iff the session had zero mistakes
//   - gems: flat award plus a perfect bonus, independent of XP
func (e *Engine) Result(correctCount, mistakeCount, maxCombo int) SessionResult {
	baseXP := correctCount * e.config.BaseXPPerQuestion
	comboBonus := maxCombo * e.config.ComboBonusMultiplier

	perfectBonus := 0
	gems := e.config.BaseGems
	if mistakeCount == 0 {
		perfectBonus = e.config.PerfectLessonBonus
		gems += e.config.PerfectGemBonus
	}

	return SessionResult{
		BaseXP:       baseXP,
		ComboBonus:   comboBonus,
		PerfectBonus: perfectBonus,
		TotalXP:      baseXP + comboBonus + perfectBonus,
		Gems:         gems,
		CorrectCount: correctCount,
		MistakeCount: mistakeCount,
		MaxCombo:     maxCombo,
	}
}

// LevelForXP derives the player level from cumulative XP.
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return int(math.Sqrt(float64(totalXP)/100)) + 1
}

// XPForNextLevel returns the cumulative XP required to leave the given level.
func XPForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return 100 * level * level
}
