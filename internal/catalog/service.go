package catalog

import (
	"context"

	"github.com/rs/zerolog"
)

const defaultPracticeSetSize = 5

// Source supplies raw levels. The embedded curriculum and the Postgres-curated
// level table both implement it.
type Source interface {
	Level(ctx context.Context, id int) (Level, bool, error)
	Levels(ctx context.Context) ([]Level, error)
}

// Service resolves levels through an optional cache and an ordered list of
// sources, then shapes them into practice sets for the session engine.
type Service struct {
	sources []Source
	cache   *Cache
	size    int
	logger  zerolog.Logger
}

// ServiceOptions tunes level selection.
type ServiceOptions struct {
	PracticeSetSize int
}

// NewService creates a catalog service. Sources are consulted in order; the
// first one that knows a level id wins.
func NewService(sources []Source, cache *Cache, opts ServiceOptions, logger zerolog.Logger) *Service {
	size := opts.PracticeSetSize
	if size <= 0 {
		size = defaultPracticeSetSize
	}
	return &Service{
		sources: sources,
		cache:   cache,
		size:    size,
		logger:  logger,
	}
}

// GetLevel returns a play-ready practice set for the level id. A missing id
// yields ok=false, never an error: callers treat it as "cannot start lesson."
func (s *Service) GetLevel(ctx context.Context, id int, rng Rand) (Level, bool) {
	raw, ok := s.rawLevel(ctx, id)
	if !ok {
		return Level{}, false
	}
	return BuildPracticeSet(raw, s.size, rng), true
}

// AllLevels returns every known raw level, de-duplicated by id across sources.
func (s *Service) AllLevels(ctx context.Context) []Level {
	seen := make(map[int]bool)
	var all []Level
	for _, src := range s.sources {
		levels, err := src.Levels(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("level source listing failed")
			continue
		}
		for _, lvl := range levels {
			if !seen[lvl.ID] {
				seen[lvl.ID] = true
				all = append(all, lvl)
			}
		}
	}
	return all
}

// PracticeSetSize exposes the configured per-session question count.
func (s *Service) PracticeSetSize() int {
	return s.size
}

func (s *Service) rawLevel(ctx context.Context, id int) (Level, bool) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
			return *cached, true
		}
	}
	for _, src := range s.sources {
		lvl, ok, err := src.Level(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Int("level_id", id).Msg("level source lookup failed")
			continue
		}
		if ok {
			if s.cache != nil {
				_ = s.cache.Set(ctx, lvl)
			}
			return lvl, true
		}
	}
	return Level{}, false
}

// BuildPracticeSet filters invalid questions, pins the first theory question
// as item 0 if one exists, fills remaining slots by sampling the rest without
// replacement, and shuffles option order for choice-bearing kinds. If fewer
// than size valid questions exist, all of them are returned.
func BuildPracticeSet(level Level, size int, rng Rand) Level {
	valid := FilterValid(level.Questions)

	var pinned []Question
	rest := make([]Question, 0, len(valid))
	for _, q := range valid {
		if len(pinned) == 0 && q.Kind == KindTheory {
			pinned = append(pinned, q)
			continue
		}
		rest = append(rest, q)
	}

	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	selected := pinned
	for _, q := range rest {
		if len(selected) >= size {
			break
		}
		selected = append(selected, q)
	}

	out := make([]Question, len(selected))
	for i, q := range selected {
		out[i] = shuffleOptions(q, rng)
	}

	return Level{
		ID:        level.ID,
		Title:     level.Title,
		Questions: out,
		Teaches:   level.Teaches,
	}
}

// shuffleOptions returns a copy of the question with option order randomized.
// The copy keeps catalog data immutable.
func shuffleOptions(q Question, rng Rand) Question {
	if !q.HasOptions() || len(q.Options) < 2 {
		return q
	}
	opts := make([]Option, len(q.Options))
	copy(opts, q.Options)
	rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	q.Options = opts
	return q
}

// StaticSource serves the embedded curriculum.
type StaticSource struct {
	levels []Level
}

// NewStaticSource wraps a fixed level list.
func NewStaticSource(levels []Level) *StaticSource {
	return &StaticSource{levels: levels}
}

// Level returns the level with the given id, if present.
func (s *StaticSource) Level(ctx context.Context, id int) (Level, bool, error) {
	for _, lvl := range s.levels {
		if lvl.ID == id {
			return lvl, true, nil
		}
	}
	return Level{}, false, nil
}

// Levels returns all embedded levels.
func (s *StaticSource) Levels(ctx context.Context) ([]Level, error) {
	return s.levels, nil
}
