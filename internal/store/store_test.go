package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuibee/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tuibee.db")
	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestKVRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := st.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}
	if err := st.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, ok, err := st.Get(ctx, "k")
	if err != nil || !ok || value != "v2" {
		t.Fatalf("expected v2, got %q ok=%v err=%v", value, ok, err)
	}
	if err := st.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := st.Get(ctx, "k"); ok {
		t.Fatalf("expected key removed")
	}
	if err := st.Remove(ctx, "k"); err != nil {
		t.Fatalf("removing absent key should not error: %v", err)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	log := zerolog.Nop()

	if _, ok := st.LoadProgress(ctx, log); ok {
		t.Fatalf("expected no progress initially")
	}

	progress := model.DailyProgress{
		Date:         "2024-01-03",
		FoundWords:   []string{"BEAD", "DECAF"},
		Score:        6,
		CenterLetter: "A",
		OuterLetters: []string{"C", "B", "D", "F", "G", "E"},
	}
	if err := st.SaveProgress(ctx, progress); err != nil {
		t.Fatalf("save progress: %v", err)
	}
	loaded, ok := st.LoadProgress(ctx, log)
	if !ok {
		t.Fatalf("expected saved progress")
	}
	if loaded.Date != progress.Date || loaded.Score != progress.Score {
		t.Fatalf("unexpected progress: %+v", loaded)
	}
	if len(loaded.FoundWords) != 2 || loaded.FoundWords[0] != "BEAD" {
		t.Fatalf("unexpected found words: %v", loaded.FoundWords)
	}

	if err := st.ClearProgress(ctx); err != nil {
		t.Fatalf("clear progress: %v", err)
	}
	if _, ok := st.LoadProgress(ctx, log); ok {
		t.Fatalf("expected progress cleared")
	}
}

func TestCorruptProgressTreatedAsAbsence(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.Set(ctx, "dailyProgress", "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok := st.LoadProgress(ctx, zerolog.Nop()); ok {
		t.Fatalf("corrupt blob should read as absence")
	}
}

func TestStatsRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	log := zerolog.Nop()

	stats := st.LoadStats(ctx, log)
	if stats.RankDistribution == nil || stats.DailyScores == nil {
		t.Fatalf("expected normalized empty stats, got %+v", stats)
	}

	stats.TotalGamesPlayed = 2
	stats.TotalPoints = 45
	stats.RankDistribution["Good"] = 2
	stats.DailyScores = append(stats.DailyScores, model.DailyScore{Date: "2024-01-01", Score: 20, Rank: "Good", WordsFound: 6})
	if err := st.SaveStats(ctx, stats); err != nil {
		t.Fatalf("save stats: %v", err)
	}

	loaded := st.LoadStats(ctx, log)
	if loaded.TotalGamesPlayed != 2 || loaded.TotalPoints != 45 {
		t.Fatalf("unexpected stats: %+v", loaded)
	}
	if loaded.RankDistribution["Good"] != 2 || len(loaded.DailyScores) != 1 {
		t.Fatalf("collections not restored: %+v", loaded)
	}
}

func TestLegacyStatsBlobBackfills(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	// Older schema without totalPoints/totalPangramsFound or collections.
	legacy := `{"totalGamesPlayed":4,"topScore":31,"topScoreDate":"2023-12-30","totalWordsFound":40}`
	if err := st.Set(ctx, "gameStats", legacy); err != nil {
		t.Fatalf("set: %v", err)
	}
	stats := st.LoadStats(ctx, zerolog.Nop())
	if stats.TotalPoints != 0 || stats.TotalPangramsFound != 0 {
		t.Fatalf("missing numerics should default to 0: %+v", stats)
	}
	if stats.RankDistribution == nil || stats.DailyScores == nil {
		t.Fatalf("missing collections should backfill to empty: %+v", stats)
	}
	if stats.TotalGamesPlayed != 4 || stats.TopScore != 31 {
		t.Fatalf("present fields should survive: %+v", stats)
	}
}

func TestCorruptStatsStartsEmpty(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.Set(ctx, "gameStats", "!!"); err != nil {
		t.Fatalf("set: %v", err)
	}
	stats := st.LoadStats(ctx, zerolog.Nop())
	if stats.TotalGamesPlayed != 0 || len(stats.DailyScores) != 0 {
		t.Fatalf("corrupt blob should yield empty stats: %+v", stats)
	}
}
