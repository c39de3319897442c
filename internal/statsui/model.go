// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuibee/internal/model"
	"github.com/verte-zerg/tuibee/internal/rank"
	"github.com/verte-zerg/tuibee/internal/stats"
)

const (
	tabOverview = iota
	tabHistory
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	stats model.GameStats

	tabs      []string
	activeTab int
	overview  viewport.Model
	history   table.Model

	width  int
	height int
}

// NewModel constructs a stats UI model.
func NewModel(s model.GameStats) *Model {
	m := &Model{
		stats: s,
		tabs:  []string{"Overview", "History"},
	}
	m.overview = viewport.New(0, 0)
	m.history = buildHistoryTable(s.DailyScores, 0, 1)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.overview.SetContent(m.renderOverview())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			if m.activeTab == tabHistory {
				m.history.GotoTop()
			} else {
				m.overview.GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabHistory {
				m.history.GotoBottom()
			} else {
				m.overview.GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabHistory {
				var cmd tea.Cmd
				m.history, cmd = m.history.Update(msg)
				return m, cmd
			}
			var cmd tea.Cmd
			m.overview, cmd = m.overview.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderTabs()
	var body string
	if m.activeTab == tabHistory {
		body = m.history.View()
	} else {
		body = m.overview.View()
	}
	footer := headerStyle.Render("←/→ switch tab · ↑/↓ scroll · q quit")
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabHistory {
		m.history.Focus()
	} else {
		m.history.Blur()
	}
}

func (m *Model) updateLayout() {
	headerHeight := lipgloss.Height(m.renderTabs())
	bodyHeight := m.height - headerHeight - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	m.history = buildHistoryTable(m.stats.DailyScores, m.width, bodyHeight)
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderOverview() string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Games", strconv.Itoa(m.stats.TotalGamesPlayed)),
		card("Points", strconv.Itoa(m.stats.TotalPoints)),
		card("Top Score", fmt.Sprintf("%d (%s)", m.stats.TopScore, m.stats.TopScoreDate)),
		card("Words", strconv.Itoa(m.stats.TotalWordsFound)),
		card("Pangrams", strconv.Itoa(m.stats.TotalPangramsFound)),
	)

	var buf bytes.Buffer
	if err := stats.RenderRankDistribution(&buf, m.stats); err != nil {
		// Rendering to a buffer cannot fail; keep the view best-effort.
		_ = err
	}
	if err := stats.RenderScoreTrend(&buf, m.stats); err != nil {
		_ = err
	}
	return cards + "\n\n" + buf.String()
}

func card(title, value string) string {
	content := cardTitleStyle.Render(title) + "\n" + cardValueStyle.Render(value)
	return cardStyle.Render(content)
}

func buildHistoryTable(entries []model.DailyScore, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Rank", Width: rankColumnWidth()},
		{Title: "Words", Width: 7},
		{Title: "Pangrams", Width: 9},
	}
	rows := make([]table.Row, 0, len(entries))
	// Newest first for browsing.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		rows = append(rows, table.Row{
			e.Date,
			strconv.Itoa(e.Score),
			e.Rank,
			strconv.Itoa(e.WordsFound),
			strconv.Itoa(e.PangramsFound),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height-1)),
	)
	if width > 0 {
		t.SetWidth(width)
	}
	return t
}

func rankColumnWidth() int {
	width := 0
	for _, tier := range rank.Tiers {
		if len(tier.Name) > width {
			width = len(tier.Name)
		}
	}
	return width + 2
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
