package lesson

import (
	"errors"
	"time"

	"github.com/codelingo/backend/internal/catalog"
	"github.com/codelingo/backend/internal/player"
)

// Session lifecycle states.
const (
	StateAwaitingTheory = "awaiting_theory"
	StateAwaitingAnswer = "awaiting_answer"
	StateComplete       = "complete"
	StateAbandoned      = "abandoned"
)

var (
	// ErrSessionFinished rejects interactions with a completed or abandoned
	// session.
	ErrSessionFinished = errors.New("session already finished")
	// ErrAwaitingTheory rejects answer submissions while a theory card is up.
	ErrAwaitingTheory = errors.New("session awaiting theory acknowledgement")
	// ErrNotTheory rejects a theory acknowledgement outside a theory card.
	ErrNotTheory = errors.New("current question is not theory")
	// ErrPairSubmission redirects pair-match answers to SubmitPair.
	ErrPairSubmission = errors.New("pair-match questions take pair submissions")
	// ErrNotPairMatch rejects a pair submission on other kinds.
	ErrNotPairMatch = errors.New("current question is not pair-match")
)

// Session is the live per-player play-through of one level. It owns question
// ordering, combo tallies and theory bookkeeping; heart, token and streak
// mutations are delegated to the profile. One session per player at a time;
// the store enforces that.
type Session struct {
	LevelID      int                `json:"level_id"`
	Title        string             `json:"title"`
	Synthetic    bool               `json:"synthetic"`
	Teaches      []string           `json:"teaches,omitempty"`
	Questions    []catalog.Question `json:"questions"`
	Index        int                `json:"index"`
	State        string             `json:"state"`
	Combo        int                `json:"combo"`
	MaxCombo     int                `json:"max_combo"`
	CorrectCount int                `json:"correct_count"`
	MistakeCount int                `json:"mistake_count"`
	TheorySeen   map[string]bool    `json:"theory_seen,omitempty"`
	Matched      map[string]bool    `json:"matched,omitempty"`
	StartedAt    time.Time          `json:"started_at"`
}

// Outcome reports the effect of one interaction on the session.
type Outcome struct {
	Correct  bool   `json:"correct"`
	Skipped  bool   `json:"skipped,omitempty"`
	Retry    bool   `json:"retry,omitempty"` // same question stays up
	Feedback string `json:"feedback,omitempty"`
	Done     bool   `json:"done"`
}

// PairOutcome reports one pair selection on a pair-match question.
type PairOutcome struct {
	Matched    bool `json:"matched"`
	AllMatched bool `json:"all_matched"`
	Done       bool `json:"done"`
}

// NewSession starts a play-through of the prepared question set. The set must
// already be shuffled and trimmed (see catalog.Service.BuildPracticeSet).
func NewSession(level catalog.Level, now time.Time) *Session {
	s := &Session{
		LevelID:    level.ID,
		Title:      level.Title,
		Synthetic:  catalog.IsSynthetic(level.ID),
		Teaches:    level.Teaches,
		Questions:  level.Questions,
		TheorySeen: map[string]bool{},
		Matched:    map[string]bool{},
		StartedAt:  now,
	}
	s.enter()
	return s
}

// Current returns the question the session is positioned on.
func (s *Session) Current() (catalog.Question, bool) {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return catalog.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Finished reports a terminal state.
func (s *Session) Finished() bool {
	return s.State == StateComplete || s.State == StateAbandoned
}

// enter positions the state for the question at Index, skipping theory cards
// whose concepts were all shown earlier in the session.
func (s *Session) enter() {
	for {
		if s.Index >= len(s.Questions) {
			s.State = StateComplete
			return
		}
		q := s.Questions[s.Index]
		if q.Kind != catalog.KindTheory {
			s.State = StateAwaitingAnswer
			s.Matched = map[string]bool{}
			return
		}
		if s.theoryUnseen(q) {
			s.State = StateAwaitingTheory
			return
		}
		s.Index++
	}
}

// theoryUnseen reports whether the theory card introduces anything new. Cards
// with no concept tags always show.
func (s *Session) theoryUnseen(q catalog.Question) bool {
	if len(q.Concepts) == 0 {
		return !s.TheorySeen["card:"+q.ID]
	}
	for _, c := range q.Concepts {
		if !s.TheorySeen[c] {
			return true
		}
	}
	return false
}

// AdvanceTheory acknowledges the current theory card and moves on.
func (s *Session) AdvanceTheory() error {
	if s.Finished() {
		return ErrSessionFinished
	}
	if s.State != StateAwaitingTheory {
		return ErrNotTheory
	}
	q := s.Questions[s.Index]
	s.TheorySeen["card:"+q.ID] = true
	for _, c := range q.Concepts {
		s.TheorySeen[c] = true
	}
	s.Index++
	s.enter()
	return nil
}

// Submit grades an answer against the current question. Wrong answers cost a
// heart, break the combo and keep the question up for retry. At zero hearts
// the submission is refused before grading; the client must quit or refill.
func (s *Session) Submit(p *player.Profile, now time.Time, ans Answer) (Outcome, error) {
	if s.Finished() {
		return Outcome{}, ErrSessionFinished
	}
	if s.State == StateAwaitingTheory {
		return Outcome{}, ErrAwaitingTheory
	}
	if !p.CanPlay() {
		return Outcome{}, player.ErrOutOfHearts
	}
	q := s.Questions[s.Index]
	if q.Kind == catalog.KindPairMatch {
		return Outcome{}, ErrPairSubmission
	}

	if !Grade(q, ans) {
		s.markWrong(p, now)
		return Outcome{Retry: true, Feedback: q.FeedbackWrong}, nil
	}
	s.markCorrect()
	s.Index++
	s.enter()
	return Outcome{Correct: true, Feedback: q.FeedbackRight, Done: s.State == StateComplete}, nil
}

// SubmitPair grades one pair selection. A mismatch is a full wrong answer
// (heart, combo, mistake count) but the question stays up; the question
// completes as one correct answer once every pair is matched.
func (s *Session) SubmitPair(p *player.Profile, now time.Time, leftID, rightID string) (PairOutcome, error) {
	if s.Finished() {
		return PairOutcome{}, ErrSessionFinished
	}
	if s.State == StateAwaitingTheory {
		return PairOutcome{}, ErrAwaitingTheory
	}
	if !p.CanPlay() {
		return PairOutcome{}, player.ErrOutOfHearts
	}
	q := s.Questions[s.Index]
	if q.Kind != catalog.KindPairMatch {
		return PairOutcome{}, ErrNotPairMatch
	}

	left, leftOK := findPairItem(q.Pairs, leftID)
	right, rightOK := findPairItem(q.Pairs, rightID)
	matched := leftOK && rightOK &&
		leftID != rightID &&
		!s.Matched[leftID] && !s.Matched[rightID] &&
		left.PairID == right.ID && right.PairID == left.ID

	if !matched {
		s.markWrong(p, now)
		return PairOutcome{}, nil
	}

	s.Matched[leftID] = true
	s.Matched[rightID] = true
	if len(s.Matched) < len(q.Pairs) {
		return PairOutcome{Matched: true}, nil
	}
	s.markCorrect()
	s.Index++
	s.enter()
	return PairOutcome{Matched: true, AllMatched: true, Done: s.State == StateComplete}, nil
}

// Skip spends a skip token to pass the current question. The question counts
// as answered correctly and extends the combo. On a theory card the request
// is a no-op: nothing is spent and nothing moves.
func (s *Session) Skip(p *player.Profile) (Outcome, error) {
	if s.Finished() {
		return Outcome{}, ErrSessionFinished
	}
	if s.State == StateAwaitingTheory {
		return Outcome{}, nil
	}
	if !p.CanPlay() {
		return Outcome{}, player.ErrOutOfHearts
	}
	if err := p.SpendSkipToken(); err != nil {
		return Outcome{}, err
	}
	s.markCorrect()
	s.Index++
	s.enter()
	return Outcome{Correct: true, Skipped: true, Done: s.State == StateComplete}, nil
}

// Quit abandons the session. Hearts and tokens already spent stay spent; no
// rewards are granted. Legal in any non-terminal state.
func (s *Session) Quit() {
	if !s.Finished() {
		s.State = StateAbandoned
	}
}

func (s *Session) markCorrect() {
	s.CorrectCount++
	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
}

func (s *Session) markWrong(p *player.Profile, now time.Time) {
	s.MistakeCount++
	s.Combo = 0
	p.LoseHeart(now)
}

func findPairItem(items []catalog.PairItem, id string) (catalog.PairItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return catalog.PairItem{}, false
}
