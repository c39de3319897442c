package puzzle

import (
	"math/rand"
	"testing"
)

// testDict has a single pangram candidate so the derived letter set is fixed.
var testDict = []string{"ABCDEFG", "DECAF", "BEAD", "FACE", "CAGE", "EDGE", "BEAD"}

// centerASeed yields center letter A for testDict.
const centerASeed = "2024-01-03"

func mustGenerate(t *testing.T, dict []string, seed string) *Puzzle {
	t.Helper()
	p, err := Generate(dict, seed)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return p
}

func TestGenerateDeterministic(t *testing.T) {
	a := mustGenerate(t, testDict, centerASeed)
	b := mustGenerate(t, testDict, centerASeed)
	if a.CenterLetter != b.CenterLetter {
		t.Fatalf("center differs: %c != %c", a.CenterLetter, b.CenterLetter)
	}
	if string(a.OuterLetters) != string(b.OuterLetters) {
		t.Fatalf("outer differs: %s != %s", string(a.OuterLetters), string(b.OuterLetters))
	}
	if len(a.ValidWords) != len(b.ValidWords) {
		t.Fatalf("valid words differ: %v vs %v", a.ValidWords, b.ValidWords)
	}
	for i := range a.ValidWords {
		if a.ValidWords[i] != b.ValidWords[i] {
			t.Fatalf("valid words differ at %d: %q != %q", i, a.ValidWords[i], b.ValidWords[i])
		}
	}
}

func TestGenerateFixedSeed(t *testing.T) {
	p := mustGenerate(t, testDict, centerASeed)
	if p.CenterLetter != 'A' {
		t.Fatalf("expected center A, got %c", p.CenterLetter)
	}
	if string(p.OuterLetters) != "CBDFGE" {
		t.Fatalf("unexpected outer order: %s", string(p.OuterLetters))
	}
}

func TestGenerateInvariants(t *testing.T) {
	for _, seed := range []string{"2024-01-01", "2024-01-02", "s1", "s2", "s3"} {
		p := mustGenerate(t, testDict, seed)
		if len(p.OuterLetters) != GameSize-1 {
			t.Fatalf("seed %s: expected 6 outer letters, got %d", seed, len(p.OuterLetters))
		}
		for _, l := range p.OuterLetters {
			if l == p.CenterLetter {
				t.Fatalf("seed %s: center %c appears in outer letters", seed, l)
			}
		}
		letterSet := map[rune]struct{}{p.CenterLetter: {}}
		for _, l := range p.OuterLetters {
			letterSet[l] = struct{}{}
		}
		for _, w := range p.ValidWords {
			runes := []rune(w)
			if len(runes) < MinWordLen {
				t.Fatalf("seed %s: short valid word %q", seed, w)
			}
			hasCenter := false
			for _, r := range runes {
				if _, ok := letterSet[r]; !ok {
					t.Fatalf("seed %s: word %q uses letter %c outside the set", seed, w, r)
				}
				if r == p.CenterLetter {
					hasCenter = true
				}
			}
			if !hasCenter {
				t.Fatalf("seed %s: word %q lacks the center letter", seed, w)
			}
		}
		for _, w := range p.Pangrams() {
			if !p.IsWord(w) {
				t.Fatalf("seed %s: pangram %q missing from valid words", seed, w)
			}
		}
	}
}

func TestGenerateDeduplicates(t *testing.T) {
	p := mustGenerate(t, testDict, centerASeed)
	seen := map[string]int{}
	for _, w := range p.ValidWords {
		seen[w]++
	}
	if seen["BEAD"] != 1 {
		t.Fatalf("expected BEAD once, got %d", seen["BEAD"])
	}
}

func TestGenerateCaseFolds(t *testing.T) {
	lower := []string{"abcdefg", "decaf", "bead", "face", "cage", "edge", "bead"}
	a := mustGenerate(t, lower, centerASeed)
	b := mustGenerate(t, testDict, centerASeed)
	if a.CenterLetter != b.CenterLetter || string(a.OuterLetters) != string(b.OuterLetters) {
		t.Fatalf("case folding changed the puzzle")
	}
}

func TestGenerateNoPangram(t *testing.T) {
	_, err := Generate([]string{"APPLE", "BANANA"}, "2024-01-01")
	if err == nil {
		t.Fatalf("expected NoPangramError")
	}
	if _, ok := err.(NoPangramError); !ok {
		t.Fatalf("expected NoPangramError, got %T", err)
	}
}

func TestMaxScore(t *testing.T) {
	p := mustGenerate(t, testDict, centerASeed)
	// ABCDEFG (7+7) + DECAF (5) + BEAD/FACE/CAGE (1 each).
	if p.MaxScore() != 22 {
		t.Fatalf("expected max score 22, got %d", p.MaxScore())
	}
}

func TestCyrillicDictionary(t *testing.T) {
	dict := []string{"АБВГДЕЖ", "АБВА", "ГДЕА", "ВЕГА"}
	p, err := Generate(dict, "2024-01-01")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(p.OuterLetters) != 6 {
		t.Fatalf("expected 6 outer letters, got %d", len(p.OuterLetters))
	}
	if !p.IsWord("АБВГДЕЖ") {
		t.Fatalf("expected the pangram to be a valid word")
	}
	if !p.IsPangram("АБВГДЕЖ") {
		t.Fatalf("expected АБВГДЕЖ to be a pangram")
	}
}

func TestFromLetters(t *testing.T) {
	p, err := FromLetters(testDict, 'a', []rune("bcdefg"))
	if err != nil {
		t.Fatalf("from letters: %v", err)
	}
	if p.CenterLetter != 'A' {
		t.Fatalf("expected folded center A, got %c", p.CenterLetter)
	}
	for _, w := range []string{"ABCDEFG", "DECAF", "BEAD", "FACE", "CAGE"} {
		if !p.IsWord(w) {
			t.Fatalf("expected %q valid", w)
		}
	}
	if p.IsWord("EDGE") {
		t.Fatalf("EDGE lacks the center letter")
	}
	if p.MaxScore() != 22 {
		t.Fatalf("expected max score 22, got %d", p.MaxScore())
	}
}

func TestFromLettersRejectsBadInput(t *testing.T) {
	if _, err := FromLetters(testDict, 'A', []rune("BCDEF")); err == nil {
		t.Fatalf("expected error for 5 outer letters")
	}
	if _, err := FromLetters(testDict, 'A', []rune("BCDEFA")); err == nil {
		t.Fatalf("expected error for duplicate letter")
	}
}

func TestReshuffleOuterIsPermutation(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	prev := []rune("CBDFGE")
	next := ReshuffleOuter(prev, rnd)
	if len(next) != len(prev) {
		t.Fatalf("length changed: %d", len(next))
	}
	counts := map[rune]int{}
	for _, r := range prev {
		counts[r]++
	}
	for _, r := range next {
		counts[r]--
	}
	for r, c := range counts {
		if c != 0 {
			t.Fatalf("multiset changed for %c: %d", r, c)
		}
	}
	if string(prev) != "CBDFGE" {
		t.Fatalf("input mutated: %s", string(prev))
	}
}

func TestReshuffleOuterDiffersWhenPossible(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	prev := []rune("CBDFGE")
	differed := false
	for i := 0; i < 5; i++ {
		next := ReshuffleOuter(prev, rnd)
		if string(next) != string(prev) {
			differed = true
			break
		}
	}
	if !differed {
		t.Fatalf("reshuffle never produced a different order")
	}
}

func TestReshuffleOuterDegenerate(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	out := ReshuffleOuter([]rune{'A'}, rnd)
	if string(out) != "A" {
		t.Fatalf("single letter changed: %s", string(out))
	}
}
