// Package model defines shared data structures.
package model

// Config defines game settings.
type Config struct {
	Lang       string
	Timezone   string
	Dictionary string
}

// DailyProgress is the single mutable record of today's in-progress game.
// CenterLetter and OuterLetters are stored for an integrity check against a
// freshly generated puzzle: a mismatch means the dictionary changed and the
// saved progress is discarded.
type DailyProgress struct {
	Date         string   `json:"date"`
	FoundWords   []string `json:"foundWords"`
	Score        int      `json:"score"`
	CenterLetter string   `json:"centerLetter"`
	OuterLetters []string `json:"outerLetters"`
}

// DailyScore is one per-day entry in the lifetime history. Each date appears
// at most once; the entry for the current day is overwritten in place as the
// day's game evolves.
type DailyScore struct {
	Date          string `json:"date"`
	Score         int    `json:"score"`
	Rank          string `json:"rank"`
	WordsFound    int    `json:"wordsFound"`
	PangramsFound int    `json:"pangramsFound"`
}

// GameStats holds cumulative lifetime totals across all days played.
type GameStats struct {
	TotalGamesPlayed   int            `json:"totalGamesPlayed"`
	TotalPoints        int            `json:"totalPoints"`
	TopScore           int            `json:"topScore"`
	TopScoreDate       string         `json:"topScoreDate"`
	TotalWordsFound    int            `json:"totalWordsFound"`
	TotalPangramsFound int            `json:"totalPangramsFound"`
	RankDistribution   map[string]int `json:"rankDistribution"`
	DailyScores        []DailyScore   `json:"dailyScores"`
}

// Normalize backfills collections left nil by older persisted blobs.
func (s *GameStats) Normalize() {
	if s.RankDistribution == nil {
		s.RankDistribution = map[string]int{}
	}
	if s.DailyScores == nil {
		s.DailyScores = []DailyScore{}
	}
}

// Clone returns a deep copy so a reconciler pass never aliases the snapshot
// it was given.
func (s GameStats) Clone() GameStats {
	out := s
	out.RankDistribution = make(map[string]int, len(s.RankDistribution))
	for rank, count := range s.RankDistribution {
		out.RankDistribution[rank] = count
	}
	out.DailyScores = make([]DailyScore, len(s.DailyScores))
	copy(out.DailyScores, s.DailyScores)
	return out
}

// EntryFor returns the index of the daily entry for date, or -1.
func (s GameStats) EntryFor(date string) int {
	for i := range s.DailyScores {
		if s.DailyScores[i].Date == date {
			return i
		}
	}
	return -1
}
