package store

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuibee/internal/model"
)

// Record keys in the kv table.
const (
	keyDailyProgress = "dailyProgress"
	keyGameStats     = "gameStats"
)

// LoadProgress reads the saved daily progress. A missing or corrupt blob is
// treated as absence: the session simply starts fresh.
func (s *Store) LoadProgress(ctx context.Context, log zerolog.Logger) (model.DailyProgress, bool) {
	var progress model.DailyProgress
	blob, ok, err := s.Get(ctx, keyDailyProgress)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read daily progress")
		return progress, false
	}
	if !ok {
		return progress, false
	}
	if err := json.Unmarshal([]byte(blob), &progress); err != nil {
		log.Warn().Err(err).Msg("corrupt daily progress blob, discarding")
		return model.DailyProgress{}, false
	}
	return progress, true
}

// SaveProgress overwrites the daily progress record.
func (s *Store) SaveProgress(ctx context.Context, progress model.DailyProgress) error {
	blob, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	return s.Set(ctx, keyDailyProgress, string(blob))
}

// ClearProgress removes the daily progress record.
func (s *Store) ClearProgress(ctx context.Context) error {
	return s.Remove(ctx, keyDailyProgress)
}

// LoadStats reads the lifetime stats. Missing numeric fields from older blobs
// decode to zero and missing collections are backfilled to empty; a corrupt
// blob yields fresh stats.
func (s *Store) LoadStats(ctx context.Context, log zerolog.Logger) model.GameStats {
	var stats model.GameStats
	blob, ok, err := s.Get(ctx, keyGameStats)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read game stats")
	} else if ok {
		if err := json.Unmarshal([]byte(blob), &stats); err != nil {
			log.Warn().Err(err).Msg("corrupt game stats blob, starting empty")
			stats = model.GameStats{}
		}
	}
	stats.Normalize()
	return stats
}

// SaveStats overwrites the lifetime stats record.
func (s *Store) SaveStats(ctx context.Context, stats model.GameStats) error {
	blob, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.Set(ctx, keyGameStats, string(blob))
}
