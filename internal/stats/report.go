package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/tuibee/internal/model"
	"github.com/verte-zerg/tuibee/internal/rank"
)

const (
	sparkChars          = " .:-=+*#%@"
	terminalWidthBackup = 80
)

// RenderSummary prints the lifetime totals.
func RenderSummary(w io.Writer, s model.GameStats) error {
	if s.TotalGamesPlayed == 0 {
		_, err := fmt.Fprintln(w, "No games played yet.")
		return err
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Games played: %d", s.TotalGamesPlayed),
		fmt.Sprintf("Total points: %d", s.TotalPoints),
		fmt.Sprintf("Top score: %d (%s)", s.TopScore, s.TopScoreDate),
		fmt.Sprintf("Words found: %d", s.TotalWordsFound),
		fmt.Sprintf("Pangrams found: %d", s.TotalPangramsFound),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderRankDistribution prints per-tier day counts in tier order.
func RenderRankDistribution(w io.Writer, s model.GameStats) error {
	if len(s.RankDistribution) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Rank Distribution"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(rank.Tiers))
	for _, tier := range rank.Tiers {
		count := s.RankDistribution[tier.Name]
		if count == 0 {
			continue
		}
		rows = append(rows, []string{tier.Name, strconv.Itoa(count)})
	}
	lines := formatTable([]string{"Rank", "Days"}, rows, map[int]bool{1: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderHistory prints the most recent daily entries, oldest first, capped at
// last. A non-positive last prints everything.
func RenderHistory(w io.Writer, s model.GameStats, last int) error {
	entries := s.DailyScores
	if last > 0 && len(entries) > last {
		entries = entries[len(entries)-last:]
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No daily history yet.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Daily History"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Date,
			strconv.Itoa(e.Score),
			e.Rank,
			strconv.Itoa(e.WordsFound),
			strconv.Itoa(e.PangramsFound),
		})
	}
	rightAlign := map[int]bool{1: true, 3: true, 4: true}
	lines := formatTable([]string{"Date", "Score", "Rank", "Words", "Pangrams"}, rows, rightAlign)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderScoreTrend prints a sparkline of recent daily scores sized to the
// terminal width.
func RenderScoreTrend(w io.Writer, s model.GameStats) error {
	if len(s.DailyScores) < 2 {
		return nil
	}
	values := make([]float64, len(s.DailyScores))
	for i, e := range s.DailyScores {
		values[i] = float64(e.Score)
	}
	width := terminalWidth()
	if len(values) > width {
		values = values[len(values)-width:]
	}
	if _, err := fmt.Fprintln(w, "Score Trend"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Sparkline(values)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderReport prints the full stats report.
func RenderReport(w io.Writer, s model.GameStats, last int) error {
	if err := RenderSummary(w, s); err != nil {
		return err
	}
	if err := RenderRankDistribution(w, s); err != nil {
		return err
	}
	if err := RenderScoreTrend(w, s); err != nil {
		return err
	}
	return RenderHistory(w, s, last)
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
