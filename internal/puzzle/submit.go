package puzzle

import "strings"

// RejectReason identifies why a submission was not accepted. Rejections are
// expected, frequent outcomes; they are values the caller branches on, never
// errors.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectInvalidLetters
	RejectTooShort
	RejectMissingCenterLetter
	RejectAlreadyFound
	RejectNotInDictionary
)

// String returns a short player-facing description of the rejection.
func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return ""
	case RejectInvalidLetters:
		return "bad letters"
	case RejectTooShort:
		return "too short"
	case RejectMissingCenterLetter:
		return "missing center letter"
	case RejectAlreadyFound:
		return "already found"
	case RejectNotInDictionary:
		return "not in word list"
	default:
		return "rejected"
	}
}

// SubmitResult is the outcome of checking one candidate word.
type SubmitResult struct {
	Word     string
	Accepted bool
	Reason   RejectReason
	Points   int
	Pangram  bool
}

// Submit applies the rejection rules in order, first match wins. Appending an
// accepted word to the found set and adding its points is the caller's job.
func (p *Puzzle) Submit(candidate string, found map[string]struct{}) SubmitResult {
	word := strings.ToUpper(strings.TrimSpace(candidate))
	res := SubmitResult{Word: word}

	runes := []rune(word)
	for _, r := range runes {
		if _, ok := p.letters[r]; !ok {
			res.Reason = RejectInvalidLetters
			return res
		}
	}
	if len(runes) < MinWordLen {
		res.Reason = RejectTooShort
		return res
	}
	if !strings.ContainsRune(word, p.CenterLetter) {
		res.Reason = RejectMissingCenterLetter
		return res
	}
	if _, ok := found[word]; ok {
		res.Reason = RejectAlreadyFound
		return res
	}
	// Letter legality is necessary but not sufficient: proper nouns and
	// other non-dictionary strings fall through to here.
	if !p.IsWord(word) {
		res.Reason = RejectNotInDictionary
		return res
	}

	res.Accepted = true
	res.Pangram = p.IsPangram(word)
	res.Points = Score(word, res.Pangram)
	return res
}

// Score returns the point value of an accepted word: 1 for a 4-letter word,
// otherwise its length, plus the pangram bonus.
func Score(word string, pangram bool) int {
	n := len([]rune(word))
	points := n
	if n == MinWordLen {
		points = 1
	}
	if pangram {
		points += PangramBonus
	}
	return points
}
