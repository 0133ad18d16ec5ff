package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProgressRepository persists player progress blobs. The profile aggregate is
// stored as one JSONB document per player; the domain owns its shape.
type ProgressRepository struct {
	pool *pgxpool.Pool
}

// NewProgressRepository creates a progress repository.
func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{pool: pool}
}

// Load returns the raw progress document, nil when the player has none yet.
func (r *ProgressRepository) Load(ctx context.Context, playerID uuid.UUID) ([]byte, error) {
	const q = `SELECT data FROM player_progress WHERE player_id = $1`

	var data []byte
	err := r.pool.QueryRow(ctx, q, playerID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return data, nil
}

// Save upserts the progress document.
func (r *ProgressRepository) Save(ctx context.Context, playerID uuid.UUID, data []byte) error {
	const q = `
		INSERT INTO player_progress (player_id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (player_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()`

	if _, err := r.pool.Exec(ctx, q, playerID, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
