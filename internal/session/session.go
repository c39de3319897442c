// Package session owns one day's game state and its persistence.
package session

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuibee/internal/model"
	"github.com/verte-zerg/tuibee/internal/puzzle"
	"github.com/verte-zerg/tuibee/internal/rank"
	"github.com/verte-zerg/tuibee/internal/stats"
	"github.com/verte-zerg/tuibee/internal/store"
)

// DaySeed returns the canonical YYYY-MM-DD identifier for a moment in the
// reference timezone. All players in the same timezone share a puzzle.
func DaySeed(now time.Time, loc *time.Location) string {
	return now.In(loc).Format("2006-01-02")
}

// Session holds the active puzzle, the words found so far, and the lifetime
// stats snapshot. All methods are synchronous; the model is single-player,
// single-device.
type Session struct {
	store *store.Store
	log   zerolog.Logger
	rnd   *rand.Rand

	date     string
	puzzle   *puzzle.Puzzle
	found    []string
	foundSet map[string]struct{}
	score    int
	pangrams int
	stats    model.GameStats
}

// New generates the puzzle for date, restores any compatible saved progress,
// and loads the lifetime stats. Saved progress for a different date, or with
// letters that no longer match the freshly generated puzzle, is discarded.
func New(ctx context.Context, st *store.Store, log zerolog.Logger, dictionary []string, date string) (*Session, error) {
	p, err := puzzle.Generate(dictionary, date)
	if err != nil {
		return nil, err
	}
	s := &Session{
		store:    st,
		log:      log,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		date:     date,
		puzzle:   p,
		foundSet: map[string]struct{}{},
		stats:    st.LoadStats(ctx, log),
	}
	if progress, ok := st.LoadProgress(ctx, log); ok {
		s.restore(ctx, progress)
	}
	return s, nil
}

func (s *Session) restore(ctx context.Context, progress model.DailyProgress) {
	if progress.Date != s.date {
		s.log.Info().Str("saved", progress.Date).Str("today", s.date).Msg("day rolled over, starting fresh")
		s.clearSaved(ctx)
		return
	}
	if !s.lettersMatch(progress) {
		s.log.Warn().Str("date", progress.Date).Msg("saved letters do not match the generated puzzle, discarding progress")
		s.clearSaved(ctx)
		return
	}
	// The saved outer-letter order is the player's last shuffle.
	restored := make([]rune, 0, len(progress.OuterLetters))
	for _, l := range progress.OuterLetters {
		restored = append(restored, []rune(l)[0])
	}
	s.puzzle.OuterLetters = restored

	for _, w := range progress.FoundWords {
		if !s.puzzle.IsWord(w) {
			continue
		}
		if _, dup := s.foundSet[w]; dup {
			continue
		}
		s.found = append(s.found, w)
		s.foundSet[w] = struct{}{}
		isPangram := s.puzzle.IsPangram(w)
		s.score += puzzle.Score(w, isPangram)
		if isPangram {
			s.pangrams++
		}
	}
}

// lettersMatch checks the saved center letter and outer-letter multiset
// against the fresh puzzle. Order is ignored: shuffling permutes it locally.
func (s *Session) lettersMatch(progress model.DailyProgress) bool {
	if progress.CenterLetter != string(s.puzzle.CenterLetter) {
		return false
	}
	if len(progress.OuterLetters) != len(s.puzzle.OuterLetters) {
		return false
	}
	want := map[string]int{}
	for _, l := range s.puzzle.OuterLetters {
		want[string(l)]++
	}
	for _, l := range progress.OuterLetters {
		if want[l] == 0 {
			return false
		}
		want[l]--
	}
	return true
}

func (s *Session) clearSaved(ctx context.Context) {
	if err := s.store.ClearProgress(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear saved progress")
	}
}

// Submit checks a candidate word and, when accepted, records it, saves the
// daily progress, and reconciles the lifetime stats.
func (s *Session) Submit(ctx context.Context, candidate string) puzzle.SubmitResult {
	res := s.puzzle.Submit(candidate, s.foundSet)
	if !res.Accepted {
		return res
	}
	s.found = append(s.found, res.Word)
	s.foundSet[res.Word] = struct{}{}
	s.score += res.Points
	if res.Pangram {
		s.pangrams++
	}
	s.save(ctx)
	return res
}

// Shuffle rearranges the outer letters and persists the new order.
func (s *Session) Shuffle(ctx context.Context) {
	s.puzzle.OuterLetters = puzzle.ReshuffleOuter(s.puzzle.OuterLetters, s.rnd)
	s.saveProgress(ctx)
}

func (s *Session) save(ctx context.Context) {
	s.saveProgress(ctx)
	s.stats = stats.Upsert(s.stats, s.date, s.score, s.Rank(), len(s.found), s.pangrams)
	if err := s.store.SaveStats(ctx, s.stats); err != nil {
		s.log.Warn().Err(err).Msg("failed to save game stats")
	}
}

func (s *Session) saveProgress(ctx context.Context) {
	outer := make([]string, len(s.puzzle.OuterLetters))
	for i, l := range s.puzzle.OuterLetters {
		outer[i] = string(l)
	}
	progress := model.DailyProgress{
		Date:         s.date,
		FoundWords:   append([]string(nil), s.found...),
		Score:        s.score,
		CenterLetter: string(s.puzzle.CenterLetter),
		OuterLetters: outer,
	}
	if err := s.store.SaveProgress(ctx, progress); err != nil {
		s.log.Warn().Err(err).Msg("failed to save daily progress")
	}
}

// Rank is the current rank tier name for today's score.
func (s *Session) Rank() string {
	return rank.ForScore(s.score, s.puzzle.MaxScore())
}

// Puzzle returns the active puzzle.
func (s *Session) Puzzle() *puzzle.Puzzle {
	return s.puzzle
}

// Date returns the day seed this session plays.
func (s *Session) Date() string {
	return s.date
}

// FoundWords returns the discovered words in discovery order.
func (s *Session) FoundWords() []string {
	return append([]string(nil), s.found...)
}

// Score returns today's score.
func (s *Session) Score() int {
	return s.score
}

// PangramsFound returns how many pangrams have been discovered today.
func (s *Session) PangramsFound() int {
	return s.pangrams
}

// Stats returns the current lifetime stats snapshot.
func (s *Session) Stats() model.GameStats {
	return s.stats
}
