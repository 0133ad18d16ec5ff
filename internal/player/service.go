package player

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/codelingo/backend/internal/lesson/scoring"
	"github.com/codelingo/backend/internal/quest"
)

const dateFormat = "2006-01-02"

// ProfileStore loads and saves profiles. A nil profile with a nil error
// means the player has no progress yet.
type ProfileStore interface {
	Load(ctx context.Context, playerID uuid.UUID) (*Profile, error)
	Save(ctx context.Context, playerID uuid.UUID, p *Profile) error
}

// ServiceOptions tunes the profile service.
type ServiceOptions struct {
	MaxHearts          int
	HeartRegenInterval time.Duration
	QuestResetCost     int
	HeartRefillCost    int
	SkipTokenCost      int
	Rand               func() *rand.Rand
	Clock              func() time.Time
	Templates          func() []quest.Template
}

// Service owns profile reads and the out-of-lesson mutations: quest claims
// and resets, and shop purchases.
type Service struct {
	store  ProfileStore
	opts   ServiceOptions
	logger zerolog.Logger
}

// NewService creates a profile service.
func NewService(store ProfileStore, opts ServiceOptions, logger zerolog.Logger) *Service {
	if opts.MaxHearts <= 0 {
		opts.MaxHearts = DefaultMaxHearts
	}
	if opts.HeartRegenInterval <= 0 {
		opts.HeartRegenInterval = DefaultRegenInterval
	}
	if opts.QuestResetCost <= 0 {
		opts.QuestResetCost = 50
	}
	if opts.HeartRefillCost <= 0 {
		opts.HeartRefillCost = 50
	}
	if opts.SkipTokenCost <= 0 {
		opts.SkipTokenCost = 30
	}
	if opts.Rand == nil {
		opts.Rand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Templates == nil {
		opts.Templates = quest.TemplatePool
	}
	return &Service{store: store, opts: opts, logger: logger}
}

// Get returns the player's profile, creating a fresh one on first contact.
// Lazy heart regen and the daily quest roll happen here, so a plain read is
// enough to keep the profile current.
func (s *Service) Get(ctx context.Context, playerID uuid.UUID) (*Profile, error) {
	p, changed, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := s.store.Save(ctx, playerID, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// SetPremium updates the premium flag on the profile.
func (s *Service) SetPremium(ctx context.Context, playerID uuid.UUID, premium bool) (*Profile, error) {
	p, _, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	p.IsPremium = premium
	if premium {
		p.Hearts = s.opts.MaxHearts
		p.LastHeartLost = nil
	}
	return p, s.store.Save(ctx, playerID, p)
}

// ClaimQuest collects the gem reward of a completed quest.
func (s *Service) ClaimQuest(ctx context.Context, playerID uuid.UUID, templateID string) (*Profile, int, error) {
	p, _, err := s.load(ctx, playerID)
	if err != nil {
		return nil, 0, err
	}

	reward, err := p.Quests.Claim(templateID)
	if err != nil {
		return nil, 0, err
	}
	p.Gems += reward

	if err := s.store.Save(ctx, playerID, p); err != nil {
		return nil, 0, err
	}
	s.logger.Info().
		Stringer("player_id", playerID).
		Str("quest", templateID).
		Int("reward", reward).
		Msg("quest claimed")
	return p, reward, nil
}

// ResetQuest swaps an uncompleted quest for a same-tier replacement at a gem
// cost. An unaffordable or unswappable reset mutates nothing and charges
// nothing.
func (s *Service) ResetQuest(ctx context.Context, playerID uuid.UUID, templateID string) (*Profile, error) {
	p, _, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if p.Gems < s.opts.QuestResetCost {
		return nil, ErrInsufficientGems
	}
	if err := p.Quests.Reset(templateID, s.opts.Templates(), s.opts.Rand()); err != nil {
		return nil, err
	}
	if err := p.SpendGems(s.opts.QuestResetCost); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, playerID, p); err != nil {
		return nil, err
	}
	s.logger.Info().
		Stringer("player_id", playerID).
		Str("quest", templateID).
		Msg("quest reset")
	return p, nil
}

// BuyHeartRefill restores hearts to max for gems.
func (s *Service) BuyHeartRefill(ctx context.Context, playerID uuid.UUID) (*Profile, error) {
	p, _, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if err := p.BuyHeartRefill(s.opts.HeartRefillCost, s.opts.MaxHearts); err != nil {
		return nil, err
	}
	return p, s.store.Save(ctx, playerID, p)
}

// BuySkipToken exchanges gems for one skip token.
func (s *Service) BuySkipToken(ctx context.Context, playerID uuid.UUID) (*Profile, error) {
	p, _, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if err := p.BuySkipToken(s.opts.SkipTokenCost); err != nil {
		return nil, err
	}
	return p, s.store.Save(ctx, playerID, p)
}

// PlayerLevel derives the display level from total XP.
func (s *Service) PlayerLevel(p *Profile) int {
	return scoring.LevelForXP(p.TotalXP)
}

// load fetches the profile and applies time-based upkeep. The changed flag
// reports whether upkeep mutated anything worth persisting.
func (s *Service) load(ctx context.Context, playerID uuid.UUID) (*Profile, bool, error) {
	p, err := s.store.Load(ctx, playerID)
	if err != nil {
		return nil, false, err
	}

	changed := false
	if p == nil {
		p = NewProfile()
		changed = true
	}
	p.Normalize()

	now := s.opts.Clock()
	before := p.Hearts
	p.RegenHearts(now, s.opts.MaxHearts, s.opts.HeartRegenInterval)
	if p.Hearts != before {
		changed = true
	}
	if p.Quests.EnsureDaily(now.Format(dateFormat), s.opts.Templates(), s.opts.Rand()) {
		changed = true
	}
	return p, changed, nil
}
