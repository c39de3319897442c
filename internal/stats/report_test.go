package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/tuibee/internal/model"
)

func sampleStats() model.GameStats {
	var s model.GameStats
	s = Upsert(s, "2024-01-01", 10, "Good", 4, 0)
	s = Upsert(s, "2024-01-02", 35, "Solid", 9, 1)
	s = Upsert(s, "2024-01-03", 80, "Genius", 20, 2)
	return s
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, sampleStats()); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Games played: 3", "Total points: 125", "Top score: 80 (2024-01-03)", "Pangrams found: 3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, model.GameStats{}); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(buf.String(), "No games played yet.") {
		t.Fatalf("expected empty-state message, got %q", buf.String())
	}
}

func TestRenderHistoryLimit(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, sampleStats(), 2); err != nil {
		t.Fatalf("render history: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "2024-01-01") {
		t.Fatalf("expected oldest entry trimmed:\n%s", out)
	}
	for _, want := range []string{"2024-01-02", "2024-01-03", "Genius"} {
		if !strings.Contains(out, want) {
			t.Fatalf("history missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRankDistributionOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderRankDistribution(&buf, sampleStats()); err != nil {
		t.Fatalf("render distribution: %v", err)
	}
	out := buf.String()
	good := strings.Index(out, "Good")
	solid := strings.Index(out, "Solid")
	genius := strings.Index(out, "Genius")
	if good < 0 || solid < 0 || genius < 0 {
		t.Fatalf("distribution missing tiers:\n%s", out)
	}
	if !(good < solid && solid < genius) {
		t.Fatalf("tiers not in ascending order:\n%s", out)
	}
}

func TestSparkline(t *testing.T) {
	line := Sparkline([]float64{0, 5, 10})
	if len(line) != 3 {
		t.Fatalf("expected 3 chars, got %d", len(line))
	}
	if line[0] != sparkChars[0] || line[2] != sparkChars[len(sparkChars)-1] {
		t.Fatalf("expected min/max at the ends, got %q", line)
	}
}

func TestSparklineFlat(t *testing.T) {
	line := Sparkline([]float64{4, 4, 4, 4})
	if len(line) != 4 {
		t.Fatalf("expected 4 chars, got %d", len(line))
	}
	for i := 1; i < len(line); i++ {
		if line[i] != line[0] {
			t.Fatalf("flat series should render uniformly, got %q", line)
		}
	}
}
