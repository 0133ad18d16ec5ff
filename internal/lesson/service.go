package lesson

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/codelingo/backend/internal/achievement"
	"github.com/codelingo/backend/internal/catalog"
	"github.com/codelingo/backend/internal/lesson/scoring"
	"github.com/codelingo/backend/internal/player"
	"github.com/codelingo/backend/internal/quest"
	"github.com/codelingo/backend/internal/workout"
)

var (
	// ErrLevelNotFound rejects starting a lesson on an unknown level id.
	ErrLevelNotFound = errors.New("level not found")
	// ErrNoActiveSession rejects play calls with no session in flight.
	ErrNoActiveSession = errors.New("no active session")
	// ErrNothingToPractice rejects a practice run that would have no questions.
	ErrNothingToPractice = errors.New("nothing to practice")
)

const dateLayout = "2006-01-02"

// ProfileStore loads and saves player profiles. A nil profile with a nil
// error means the player has no progress yet.
type ProfileStore interface {
	Load(ctx context.Context, playerID uuid.UUID) (*player.Profile, error)
	Save(ctx context.Context, playerID uuid.UUID, p *player.Profile) error
}

// SessionStore holds the single in-flight session per player. A nil session
// with a nil error means none is active.
type SessionStore interface {
	Get(ctx context.Context, playerID uuid.UUID) (*Session, error)
	Put(ctx context.Context, playerID uuid.UUID, s *Session) error
	Delete(ctx context.Context, playerID uuid.UUID) error
}

// sessionLocker is implemented by stores that can serialize read-modify-write
// cycles across connections (see RedisSessionStore.Lock).
type sessionLocker interface {
	Lock(ctx context.Context, playerID uuid.UUID) (func() error, error)
}

// Options tunes the lesson service. Rand and Clock exist for deterministic
// tests; zero values fall back to math/rand and time.Now.
type Options struct {
	MaxHearts          int
	HeartRegenInterval time.Duration
	Rand               func() *rand.Rand
	Clock              func() time.Time
}

// Service runs lesson sessions end to end: start, answer, skip, theory,
// quit, and the reward settlement when a session completes.
type Service struct {
	catalog      *catalog.Service
	profiles     ProfileStore
	sessions     SessionStore
	engine       *scoring.Engine
	achievements []achievement.Definition
	opts         Options
	logger       zerolog.Logger
}

// NewService wires the lesson service.
func NewService(
	cat *catalog.Service,
	profiles ProfileStore,
	sessions SessionStore,
	engine *scoring.Engine,
	achievements []achievement.Definition,
	opts Options,
	logger zerolog.Logger,
) *Service {
	if opts.MaxHearts <= 0 {
		opts.MaxHearts = player.DefaultMaxHearts
	}
	if opts.HeartRegenInterval <= 0 {
		opts.HeartRegenInterval = player.DefaultRegenInterval
	}
	if opts.Rand == nil {
		opts.Rand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Service{
		catalog:      cat,
		profiles:     profiles,
		sessions:     sessions,
		engine:       engine,
		achievements: achievements,
		opts:         opts,
		logger:       logger,
	}
}

// StartLesson begins a play-through of a curriculum level. Starting replaces
// any session already in flight; clients that care about the old one quit it
// first.
func (s *Service) StartLesson(ctx context.Context, playerID uuid.UUID, levelID int) (*Session, *player.Profile, error) {
	defer s.lockSession(ctx, playerID)()

	p, err := s.loadProfile(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	if !p.CanPlay() {
		_ = s.profiles.Save(ctx, playerID, p)
		return nil, nil, player.ErrOutOfHearts
	}

	lvl, ok := s.catalog.GetLevel(ctx, levelID, s.opts.Rand())
	if !ok || catalog.IsSynthetic(levelID) {
		return nil, nil, ErrLevelNotFound
	}
	return s.begin(ctx, playerID, p, lvl)
}

// StartWorkout begins a synthetic run built from the player's weak concepts.
func (s *Service) StartWorkout(ctx context.Context, playerID uuid.UUID) (*Session, *player.Profile, error) {
	defer s.lockSession(ctx, playerID)()

	p, err := s.loadProfile(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	if !p.CanPlay() {
		_ = s.profiles.Save(ctx, playerID, p)
		return nil, nil, player.ErrOutOfHearts
	}

	levels := s.catalog.AllLevels(ctx)
	lvl := workout.BuildWorkout(levels, p.Mastery, p.CompletedLevels, s.catalog.PracticeSetSize(), s.opts.Rand())
	return s.begin(ctx, playerID, p, lvl)
}

// StartConceptPractice begins a synthetic run scoped to one concept.
func (s *Service) StartConceptPractice(ctx context.Context, playerID uuid.UUID, concept string) (*Session, *player.Profile, error) {
	defer s.lockSession(ctx, playerID)()

	p, err := s.loadProfile(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	if !p.CanPlay() {
		_ = s.profiles.Save(ctx, playerID, p)
		return nil, nil, player.ErrOutOfHearts
	}

	levels := s.catalog.AllLevels(ctx)
	lvl := workout.BuildConceptPractice(levels, concept, p.CompletedLevels, s.catalog.PracticeSetSize(), s.opts.Rand())
	return s.begin(ctx, playerID, p, lvl)
}

// ActiveSession returns the in-flight session, if any.
func (s *Service) ActiveSession(ctx context.Context, playerID uuid.UUID) (*Session, error) {
	sess, err := s.sessions.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}
	return sess, nil
}

// Submit grades an answer against the active session and settles rewards if
// the session completes.
func (s *Service) Submit(ctx context.Context, playerID uuid.UUID, ans Answer) (*Session, Outcome, *scoring.SessionResult, error) {
	defer s.lockSession(ctx, playerID)()

	sess, p, err := s.loadPlay(ctx, playerID)
	if err != nil {
		return nil, Outcome{}, nil, err
	}

	out, err := sess.Submit(p, s.opts.Clock(), ans)
	if err != nil {
		_ = s.profiles.Save(ctx, playerID, p)
		return sess, Outcome{}, nil, err
	}

	result, err := s.settle(ctx, playerID, p, sess)
	return sess, out, result, err
}

// SubmitPair grades one pair selection on a pair-match question.
func (s *Service) SubmitPair(ctx context.Context, playerID uuid.UUID, leftID, rightID string) (*Session, PairOutcome, *scoring.SessionResult, error) {
	defer s.lockSession(ctx, playerID)()

	sess, p, err := s.loadPlay(ctx, playerID)
	if err != nil {
		return nil, PairOutcome{}, nil, err
	}

	out, err := sess.SubmitPair(p, s.opts.Clock(), leftID, rightID)
	if err != nil {
		_ = s.profiles.Save(ctx, playerID, p)
		return sess, PairOutcome{}, nil, err
	}

	result, err := s.settle(ctx, playerID, p, sess)
	return sess, out, result, err
}

// Skip spends a skip token on the current question.
func (s *Service) Skip(ctx context.Context, playerID uuid.UUID) (*Session, Outcome, *scoring.SessionResult, error) {
	defer s.lockSession(ctx, playerID)()

	sess, p, err := s.loadPlay(ctx, playerID)
	if err != nil {
		return nil, Outcome{}, nil, err
	}

	out, err := sess.Skip(p)
	if err != nil {
		_ = s.profiles.Save(ctx, playerID, p)
		return sess, Outcome{}, nil, err
	}

	result, err := s.settle(ctx, playerID, p, sess)
	return sess, out, result, err
}

// AcknowledgeTheory advances past the current theory card. A session ending
// on a theory card settles rewards here.
func (s *Service) AcknowledgeTheory(ctx context.Context, playerID uuid.UUID) (*Session, Outcome, *scoring.SessionResult, error) {
	defer s.lockSession(ctx, playerID)()

	sess, p, err := s.loadPlay(ctx, playerID)
	if err != nil {
		return nil, Outcome{}, nil, err
	}

	if err := sess.AdvanceTheory(); err != nil {
		return sess, Outcome{}, nil, err
	}

	result, err := s.settle(ctx, playerID, p, sess)
	return sess, Outcome{Done: sess.State == StateComplete}, result, err
}

// Quit abandons the active session. Spent hearts and tokens stay spent.
func (s *Service) Quit(ctx context.Context, playerID uuid.UUID) error {
	defer s.lockSession(ctx, playerID)()

	sess, err := s.sessions.Get(ctx, playerID)
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrNoActiveSession
	}
	sess.Quit()
	return s.sessions.Delete(ctx, playerID)
}

func (s *Service) begin(ctx context.Context, playerID uuid.UUID, p *player.Profile, lvl catalog.Level) (*Session, *player.Profile, error) {
	if len(lvl.Questions) == 0 {
		return nil, nil, ErrNothingToPractice
	}
	sess := NewSession(lvl, s.opts.Clock())
	if err := s.sessions.Put(ctx, playerID, sess); err != nil {
		return nil, nil, err
	}
	if err := s.profiles.Save(ctx, playerID, p); err != nil {
		return nil, nil, err
	}
	s.logger.Info().
		Stringer("player_id", playerID).
		Int("level_id", sess.LevelID).
		Bool("synthetic", sess.Synthetic).
		Int("questions", len(sess.Questions)).
		Msg("session started")
	return sess, p, nil
}

// lockSession serializes play interactions for one player when the store
// supports it. A lock that cannot be acquired degrades to best effort; the
// single-connection hub already makes contention rare.
func (s *Service) lockSession(ctx context.Context, playerID uuid.UUID) func() {
	locker, ok := s.sessions.(sessionLocker)
	if !ok {
		return func() {}
	}
	unlock, err := locker.Lock(ctx, playerID)
	if err != nil {
		s.logger.Debug().Err(err).Stringer("player_id", playerID).Msg("session lock unavailable")
		return func() {}
	}
	return func() { _ = unlock() }
}

func (s *Service) loadPlay(ctx context.Context, playerID uuid.UUID) (*Session, *player.Profile, error) {
	sess, err := s.sessions.Get(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	if sess == nil {
		return nil, nil, ErrNoActiveSession
	}
	p, err := s.loadProfile(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	return sess, p, nil
}

// loadProfile fetches or creates the profile, applies lazy heart regen and
// rolls the daily quest slate.
func (s *Service) loadProfile(ctx context.Context, playerID uuid.UUID) (*player.Profile, error) {
	p, err := s.profiles.Load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = player.NewProfile()
	}
	p.Normalize()
	now := s.opts.Clock()
	p.RegenHearts(now, s.opts.MaxHearts, s.opts.HeartRegenInterval)
	p.Quests.EnsureDaily(now.Format(dateLayout), quest.TemplatePool(), s.opts.Rand())
	return p, nil
}

// settle persists the session and profile after an interaction; a completed
// session is torn down and converted into rewards first.
func (s *Service) settle(ctx context.Context, playerID uuid.UUID, p *player.Profile, sess *Session) (*scoring.SessionResult, error) {
	var result *scoring.SessionResult
	if sess.State == StateComplete {
		result = s.complete(playerID, p, sess)
		if err := s.sessions.Delete(ctx, playerID); err != nil {
			return nil, err
		}
	} else {
		if err := s.sessions.Put(ctx, playerID, sess); err != nil {
			return nil, err
		}
	}
	if err := s.profiles.Save(ctx, playerID, p); err != nil {
		return nil, err
	}
	return result, nil
}

// complete settles a finished session: rewards, progress counters, mastery,
// streak, quest progress and achievements, in that order.
func (s *Service) complete(playerID uuid.UUID, p *player.Profile, sess *Session) *scoring.SessionResult {
	result := s.engine.Result(sess.CorrectCount, sess.MistakeCount, sess.MaxCombo)
	result.LevelID = sess.LevelID
	result.Synthetic = sess.Synthetic

	p.TotalXP += result.TotalXP
	p.Gems += result.Gems
	p.QuestionsAnswered += sess.CorrectCount
	if sess.Synthetic {
		p.LessonsCompleted++
	} else if p.AddCompletedLevel(sess.LevelID) {
		p.LessonsCompleted++
	}
	if result.Perfect() {
		p.PerfectLessons++
	}

	p.Mastery.ApplyOutcome(sess.Teaches, sess.MistakeCount)

	events := []Event{{
		Type:     EventLessonCompleted,
		LevelID:  sess.LevelID,
		XP:       result.TotalXP,
		Mistakes: result.MistakeCount,
	}}
	now := s.opts.Clock()
	if p.TouchActivity(now) {
		events = append(events, Event{Type: EventStreakExtended, Amount: p.Streak})
	}
	ApplyToQuests(events, &p.Quests)

	for _, def := range achievement.Evaluate(s.achievements, p, result) {
		p.Achievements = append(p.Achievements, def.ID)
		p.Gems += def.Gems
		s.logger.Info().
			Stringer("player_id", playerID).
			Str("achievement", def.ID).
			Int("gems", def.Gems).
			Msg("achievement unlocked")
	}

	s.logger.Info().
		Stringer("player_id", playerID).
		Int("level_id", sess.LevelID).
		Int("xp", result.TotalXP).
		Int("gems", result.Gems).
		Bool("perfect", result.Perfect()).
		Msg("session completed")
	return &result
}
