package wordlist

import "strings"

// DefaultMinLength is the shortest word kept by cleaning, matching the
// shortest playable word.
const DefaultMinLength = 4

// Clean prepares a raw word list for play: case-fold, drop duplicates, drop
// words carrying hyphens, tildes, or apostrophes, and drop words shorter than
// minLength runes. Order of first occurrence is preserved.
func Clean(words []string, minLength int) []string {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	cleaned := make([]string, 0, len(words))
	seen := map[string]struct{}{}
	for _, word := range words {
		word = strings.ToUpper(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		if strings.ContainsAny(word, "-~'’") {
			continue
		}
		if len([]rune(word)) < minLength {
			continue
		}
		cleaned = append(cleaned, word)
		seen[word] = struct{}{}
	}
	return cleaned
}
