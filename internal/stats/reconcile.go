// Package stats reconciles per-day results into lifetime totals and renders
// statistics reports.
package stats

import "github.com/verte-zerg/tuibee/internal/model"

// Upsert folds one day's result into the lifetime stats and returns the next
// snapshot; the input is never mutated. Repeated calls for the same date with
// non-decreasing values are idempotent for totalGamesPlayed and apply only the
// deltas to the lifetime totals, so repeated saves within a day never double
// count.
func Upsert(prev model.GameStats, date string, score int, rankName string, wordsFound, pangramsFound int) model.GameStats {
	next := prev.Clone()
	i := next.EntryFor(date)
	if i < 0 {
		next.DailyScores = append(next.DailyScores, model.DailyScore{
			Date:          date,
			Score:         score,
			Rank:          rankName,
			WordsFound:    wordsFound,
			PangramsFound: pangramsFound,
		})
		next.TotalGamesPlayed++
		next.TotalPoints += score
		next.TotalWordsFound += wordsFound
		next.TotalPangramsFound += pangramsFound
		next.RankDistribution[rankName]++
	} else {
		entry := &next.DailyScores[i]
		// Deltas can be negative if the caller regresses a value; apply
		// them as computed so the totals keep matching the entries.
		next.TotalPoints += score - entry.Score
		next.TotalWordsFound += wordsFound - entry.WordsFound
		next.TotalPangramsFound += pangramsFound - entry.PangramsFound
		if rankName != entry.Rank {
			// Decrement clamps at zero so an out-of-order call cannot
			// drive a count negative.
			if next.RankDistribution[entry.Rank] > 0 {
				next.RankDistribution[entry.Rank]--
			}
			next.RankDistribution[rankName]++
		}
		entry.Score = score
		entry.Rank = rankName
		entry.WordsFound = wordsFound
		entry.PangramsFound = pangramsFound
	}
	if score > next.TopScore {
		next.TopScore = score
		next.TopScoreDate = date
	}
	return next
}
