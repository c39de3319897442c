// Package rank maps a day's score onto the named rank tiers.
package rank

import "math"

// Tier is a named band of cumulative score percentage.
type Tier struct {
	Name            string
	MinScorePercent int
}

// Tiers is ordered ascending; the first tier starts at zero.
var Tiers = []Tier{
	{Name: "Beginner", MinScorePercent: 0},
	{Name: "Good Start", MinScorePercent: 2},
	{Name: "Moving Up", MinScorePercent: 5},
	{Name: "Good", MinScorePercent: 8},
	{Name: "Solid", MinScorePercent: 15},
	{Name: "Nice", MinScorePercent: 25},
	{Name: "Great", MinScorePercent: 40},
	{Name: "Genius", MinScorePercent: 70},
}

// defaultTotal substitutes for a zero or negative maximum score so the
// thresholds stay meaningful.
const defaultTotal = 100

// ForScore returns the highest tier whose threshold the score meets.
// Exactly-at-threshold scores belong to the higher tier; negative scores
// behave as zero; scores above the top threshold stay at the top tier.
func ForScore(score, totalPossible int) string {
	if totalPossible <= 0 {
		totalPossible = defaultTotal
	}
	if score < 0 {
		score = 0
	}
	name := Tiers[0].Name
	for _, tier := range Tiers {
		if score >= Threshold(tier, totalPossible) {
			name = tier.Name
		}
	}
	return name
}

// Threshold returns the minimum score for a tier against a total.
// Ceil keeps fractional cutoffs from rounding a tier easier.
func Threshold(tier Tier, totalPossible int) int {
	return int(math.Ceil(float64(tier.MinScorePercent) / 100 * float64(totalPossible)))
}

// Top reports the name of the highest tier.
func Top() string {
	return Tiers[len(Tiers)-1].Name
}

// Lowest reports the name of the first tier.
func Lowest() string {
	return Tiers[0].Name
}
