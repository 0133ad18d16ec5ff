package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codelingo/backend/internal/catalog"
)

// LevelRepository serves curated levels from Postgres. It sits in front of
// the embedded curriculum as a catalog source, so content updates do not
// require a deploy.
type LevelRepository struct {
	pool *pgxpool.Pool
}

// NewLevelRepository creates a level repository.
func NewLevelRepository(pool *pgxpool.Pool) *LevelRepository {
	return &LevelRepository{pool: pool}
}

// Level returns one curated level by id.
func (r *LevelRepository) Level(ctx context.Context, id int) (catalog.Level, bool, error) {
	const q = `SELECT data FROM levels WHERE level_id = $1`

	var data []byte
	err := r.pool.QueryRow(ctx, q, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Level{}, false, nil
	}
	if err != nil {
		return catalog.Level{}, false, fmt.Errorf("get level: %w", err)
	}

	var lvl catalog.Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return catalog.Level{}, false, fmt.Errorf("decode level %d: %w", id, err)
	}
	return lvl, true, nil
}

// Levels returns every curated level.
func (r *LevelRepository) Levels(ctx context.Context) ([]catalog.Level, error) {
	rows, err := r.pool.Query(ctx, `SELECT data FROM levels ORDER BY level_id`)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	defer rows.Close()

	var levels []catalog.Level
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan level: %w", err)
		}
		var lvl catalog.Level
		if err := json.Unmarshal(data, &lvl); err != nil {
			return nil, fmt.Errorf("decode level: %w", err)
		}
		levels = append(levels, lvl)
	}
	return levels, rows.Err()
}
