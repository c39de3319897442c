// Package tui provides the Bubble Tea game interface.
package tui

import "github.com/mattn/go-runewidth"

// wrapWords lays words out into lines no wider than width, one space between
// words. A word wider than the whole line gets a line of its own.
func wrapWords(words []string, width int) [][]string {
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return [][]string{words}
	}
	var lines [][]string
	var line []string
	lineWidth := 0
	for _, word := range words {
		w := runewidth.StringWidth(word)
		needed := w
		if len(line) > 0 {
			needed++ // separating space
		}
		if len(line) > 0 && lineWidth+needed > width {
			lines = append(lines, line)
			line = nil
			lineWidth = 0
			needed = w
		}
		line = append(line, word)
		lineWidth += needed
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}
