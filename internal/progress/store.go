package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/codelingo/backend/internal/db/repository"
	"github.com/codelingo/backend/internal/player"
)

const (
	hotKeyPrefix = "progress:profile:"
	dirtySetKey  = "progress:dirty"
	hotTTL       = 24 * time.Hour
)

// Store is the write-behind profile store. Reads hit the Redis hot copy and
// fall back to Postgres; writes land in Redis and mark the player dirty, and
// the SyncWorker drains the dirty set into Postgres. A lost Redis node costs
// at most one flush interval of progress.
type Store struct {
	repo   *repository.ProgressRepository
	redis  *redis.Client
	logger zerolog.Logger
}

// NewStore creates a progress store.
func NewStore(repo *repository.ProgressRepository, rdb *redis.Client, logger zerolog.Logger) *Store {
	return &Store{
		repo:   repo,
		redis:  rdb,
		logger: logger,
	}
}

// Load returns the player's profile, nil when the player has none yet.
func (s *Store) Load(ctx context.Context, playerID uuid.UUID) (*player.Profile, error) {
	data, err := s.redis.Get(ctx, hotKeyPrefix+playerID.String()).Bytes()
	if err == redis.Nil {
		return s.loadCold(ctx, playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("load hot profile: %w", err)
	}
	return decode(data)
}

// Save writes the profile to the hot copy and marks the player for the next
// Postgres flush.
func (s *Store) Save(ctx context.Context, playerID uuid.UUID, p *player.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, hotKeyPrefix+playerID.String(), data, hotTTL)
	pipe.SAdd(ctx, dirtySetKey, playerID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save hot profile: %w", err)
	}
	return nil
}

// Flush writes one player's hot copy to Postgres and clears the dirty mark.
func (s *Store) Flush(ctx context.Context, playerID uuid.UUID) error {
	data, err := s.redis.Get(ctx, hotKeyPrefix+playerID.String()).Bytes()
	if err == redis.Nil {
		// Hot copy expired before the flush; nothing newer than Postgres.
		return s.redis.SRem(ctx, dirtySetKey, playerID.String()).Err()
	}
	if err != nil {
		return fmt.Errorf("read hot profile: %w", err)
	}

	if err := s.repo.Save(ctx, playerID, data); err != nil {
		return err
	}
	return s.redis.SRem(ctx, dirtySetKey, playerID.String()).Err()
}

// DirtyPlayers lists players with unflushed writes.
func (s *Store) DirtyPlayers(ctx context.Context) ([]uuid.UUID, error) {
	members, err := s.redis.SMembers(ctx, dirtySetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list dirty players: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			s.logger.Warn().Str("member", m).Msg("skip malformed dirty set member")
			_ = s.redis.SRem(ctx, dirtySetKey, m).Err()
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Store) loadCold(ctx context.Context, playerID uuid.UUID) (*player.Profile, error) {
	data, err := s.repo.Load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	p, err := decode(data)
	if err != nil {
		return nil, err
	}

	// Warm the hot copy without marking dirty; nothing changed.
	if err := s.redis.Set(ctx, hotKeyPrefix+playerID.String(), data, hotTTL).Err(); err != nil {
		s.logger.Warn().Err(err).Stringer("player_id", playerID).Msg("warm hot profile failed")
	}
	return p, nil
}

func decode(data []byte) (*player.Profile, error) {
	var p player.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	p.Normalize()
	return &p, nil
}
