package stats

import "testing"

func TestFormatTableAlignment(t *testing.T) {
	headers := []string{"Date", "Score"}
	rows := [][]string{
		{"2024-01-01", "5"},
		{"2024-01-02", "120"},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(lines))
	}
	if lines[1] != "2024-01-01      5" {
		t.Fatalf("unexpected right alignment: %q", lines[1])
	}
	if lines[2] != "2024-01-02    120" {
		t.Fatalf("unexpected right alignment: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	headers := []string{"Word", "Points"}
	rows := [][]string{
		{"ВЕЧЕРА", "6"},
		{"МЕД", "1"},
	}
	lines := formatTable(headers, rows, nil)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	// Cyrillic is single-width; both words pad to the same column.
	if lines[1][:6] == lines[2][:6] {
		t.Fatalf("rows should differ in the first column: %q vs %q", lines[1], lines[2])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil for empty input, got %v", lines)
	}
}
