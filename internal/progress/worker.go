package progress

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// SyncWorker periodically drains the dirty set into Postgres.
type SyncWorker struct {
	store    *Store
	logger   zerolog.Logger
	interval time.Duration
}

// NewSyncWorker creates a sync worker.
func NewSyncWorker(store *Store, interval time.Duration, logger zerolog.Logger) *SyncWorker {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &SyncWorker{
		store:    store,
		logger:   logger.With().Str("component", "progress_sync_worker").Logger(),
		interval: interval,
	}
}

// Run blocks until context cancellation, flushing one final time on the way
// out so shutdown does not drop writes.
func (w *SyncWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			w.tick(flushCtx)
			cancel()
			return ctx.Err()
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *SyncWorker) tick(ctx context.Context) {
	ids, err := w.store.DirtyPlayers(ctx)
	if err != nil {
		w.logger.Warn().Err(err).Msg("dirty set read failed")
		return
	}

	flushed := 0
	for _, id := range ids {
		if err := w.store.Flush(ctx, id); err != nil {
			w.logger.Warn().Err(err).Stringer("player_id", id).Msg("flush failed")
			continue
		}
		flushed++
	}
	if flushed > 0 {
		w.logger.Debug().Int("flushed", flushed).Msg("progress flushed")
	}
}
