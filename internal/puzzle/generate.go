// Package puzzle derives the daily letter set and validates submissions.
package puzzle

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/verte-zerg/tuibee/internal/rng"
)

const (
	// GameSize is the number of distinct letters in a puzzle.
	GameSize = 7
	// MinWordLen is the shortest playable word.
	MinWordLen = 4
	// PangramBonus is added on top of the length score for pangrams.
	PangramBonus = 7
)

// NoPangramError reports a dictionary with no 7-distinct-letter word; such a
// dictionary cannot seed a puzzle.
type NoPangramError struct {
	Words int
}

func (e NoPangramError) Error() string {
	return "no pangram candidate in dictionary"
}

// Puzzle holds one day's letters and the words playable with them.
type Puzzle struct {
	Seed         string
	CenterLetter rune
	OuterLetters []rune

	// ValidWords keeps dictionary order for display; membership tests go
	// through the sets below.
	ValidWords []string

	letters  map[rune]struct{}
	words    map[string]struct{}
	pangrams map[string]struct{}
	maxScore int
}

// Generate derives the puzzle for a seed from the dictionary. The same
// dictionary ordering and seed always produce the same puzzle.
func Generate(dictionary []string, seed string) (*Puzzle, error) {
	upper := foldDictionary(dictionary)
	var candidates []string
	for _, w := range upper {
		if len(distinctLetters(w)) == GameSize {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return nil, NoPangramError{Words: len(upper)}
	}

	r := rng.New(seed)
	pangram := candidates[r.Intn(len(candidates))]
	letters := distinctLetters(pangram)
	center := letters[r.Intn(GameSize)]
	outer := make([]rune, 0, GameSize-1)
	for _, l := range letters {
		if l != center {
			outer = append(outer, l)
		}
	}
	outer = rng.Shuffle(outer, r)

	p := newPuzzle(seed, center, outer)
	p.scan(upper)
	return p, nil
}

// FromLetters builds the puzzle for a fixed letter set instead of deriving
// one from a seed. The solve command uses it to answer "what is playable
// with these letters".
func FromLetters(dictionary []string, center rune, outer []rune) (*Puzzle, error) {
	if len(outer) != GameSize-1 {
		return nil, fmt.Errorf("expected %d outer letters, got %d", GameSize-1, len(outer))
	}
	center = unicode.ToUpper(center)
	upperOuter := make([]rune, len(outer))
	seen := map[rune]struct{}{center: {}}
	for i, l := range outer {
		l = unicode.ToUpper(l)
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("duplicate letter %q", l)
		}
		seen[l] = struct{}{}
		upperOuter[i] = l
	}
	p := newPuzzle("", center, upperOuter)
	p.scan(foldDictionary(dictionary))
	return p, nil
}

func newPuzzle(seed string, center rune, outer []rune) *Puzzle {
	p := &Puzzle{
		Seed:         seed,
		CenterLetter: center,
		OuterLetters: outer,
		letters:      make(map[rune]struct{}, GameSize),
		words:        map[string]struct{}{},
		pangrams:     map[string]struct{}{},
	}
	p.letters[center] = struct{}{}
	for _, l := range outer {
		p.letters[l] = struct{}{}
	}
	return p
}

// scan walks the dictionary once, collecting valid words, pangrams, and the
// maximum score.
func (p *Puzzle) scan(upper []string) {
	for _, w := range upper {
		if !p.qualifies(w) {
			continue
		}
		if _, seen := p.words[w]; seen {
			continue
		}
		p.words[w] = struct{}{}
		p.ValidWords = append(p.ValidWords, w)
		isPangram := len(distinctLetters(w)) == GameSize
		if isPangram {
			p.pangrams[w] = struct{}{}
		}
		p.maxScore += Score(w, isPangram)
	}
}

// qualifies reports whether a word is playable: long enough, uses the center
// letter, and draws only from the 7-letter set.
func (p *Puzzle) qualifies(word string) bool {
	runes := []rune(word)
	if len(runes) < MinWordLen {
		return false
	}
	hasCenter := false
	for _, r := range runes {
		if _, ok := p.letters[r]; !ok {
			return false
		}
		if r == p.CenterLetter {
			hasCenter = true
		}
	}
	return hasCenter
}

// IsWord reports membership in the valid-word set.
func (p *Puzzle) IsWord(word string) bool {
	_, ok := p.words[word]
	return ok
}

// IsPangram reports whether a valid word uses all 7 letters.
func (p *Puzzle) IsPangram(word string) bool {
	_, ok := p.pangrams[word]
	return ok
}

// Pangrams returns the pangrams in dictionary order.
func (p *Puzzle) Pangrams() []string {
	var out []string
	for _, w := range p.ValidWords {
		if p.IsPangram(w) {
			out = append(out, w)
		}
	}
	return out
}

// MaxScore is the score for finding every valid word.
func (p *Puzzle) MaxScore() int {
	return p.maxScore
}

// Letters returns the 7 puzzle letters, center first, outer in current order.
func (p *Puzzle) Letters() []rune {
	out := make([]rune, 0, GameSize)
	out = append(out, p.CenterLetter)
	return append(out, p.OuterLetters...)
}

func foldDictionary(dictionary []string) []string {
	upper := make([]string, 0, len(dictionary))
	for _, w := range dictionary {
		u := strings.ToUpper(strings.TrimSpace(w))
		if u == "" {
			continue
		}
		upper = append(upper, u)
	}
	return upper
}

// distinctLetters returns a word's unique runes in first-occurrence order.
func distinctLetters(word string) []rune {
	seen := map[rune]struct{}{}
	var out []rune
	for _, r := range word {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
