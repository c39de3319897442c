package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuibee/internal/rank"
	"github.com/verte-zerg/tuibee/internal/session"
)

var (
	centerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	outerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	inputStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Underline(true)
	acceptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7CB87C"))
	rejectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pangramStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	foundStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

const footerHelp = "enter submit · tab shuffle · backspace delete · ctrl+c quit"

// Model implements the Bubble Tea game UI.
type Model struct {
	session *session.Session

	width  int
	height int

	input   []rune
	message string
	good    bool
}

// NewModel constructs the game TUI model.
func NewModel(s *session.Session) *Model {
	return &Model{session: s}
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
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyBackspace, tea.KeyDelete:
			m.handleBackspace()
			return m, nil
		case tea.KeyEnter:
			m.handleSubmit()
			return m, nil
		case tea.KeyTab:
			m.session.Shuffle(context.Background())
			return m, nil
		case tea.KeyRunes:
			m.handleRunes(msg.Runes)
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

func (m *Model) handleBackspace() {
	if len(m.input) == 0 {
		return
	}
	m.input = m.input[:len(m.input)-1]
}

func (m *Model) handleRunes(runes []rune) {
	for _, r := range runes {
		if r == ' ' {
			continue
		}
		m.input = append(m.input, r)
	}
	m.message = ""
}

func (m *Model) handleSubmit() {
	if len(m.input) == 0 {
		return
	}
	res := m.session.Submit(context.Background(), string(m.input))
	m.input = nil
	if res.Accepted {
		m.good = true
		if res.Pangram {
			m.message = fmt.Sprintf("Pangram! %s +%d", res.Word, res.Points)
		} else {
			m.message = fmt.Sprintf("%s +%d", res.Word, res.Points)
		}
		return
	}
	m.good = false
	m.message = res.Reason.String()
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		m.renderHeader(),
		"",
		m.renderHive(),
		"",
		m.renderInput(),
		m.renderMessage(),
		"",
		m.renderFound(),
	}
	content := strings.Join(sections, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	footer := footerStyle.Render(footerHelp)
	bodyHeight := m.height - 1
	if bodyHeight < 1 {
		return content
	}
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderHeader() string {
	score := m.session.Score()
	line := fmt.Sprintf("%s   %s · %d pts", m.session.Date(), m.session.Rank(), score)
	if target, name, ok := nextTier(score, m.session.Puzzle().MaxScore()); ok {
		line += fmt.Sprintf(" · %s at %d", name, target)
	}
	return headerStyle.Render(line)
}

// nextTier returns the threshold and name of the first tier above score.
func nextTier(score, maxScore int) (int, string, bool) {
	for _, tier := range rank.Tiers {
		threshold := rank.Threshold(tier, maxScore)
		if threshold > score {
			return threshold, tier.Name, true
		}
	}
	return 0, "", false
}

func (m *Model) renderHive() string {
	p := m.session.Puzzle()
	o := p.OuterLetters
	if len(o) != 6 {
		return ""
	}
	outer := func(i int) string { return outerStyle.Render(string(o[i])) }
	center := centerStyle.Render(string(p.CenterLetter))
	lines := []string{
		fmt.Sprintf("  %s   %s", outer(0), outer(1)),
		fmt.Sprintf("%s  [%s]  %s", outer(2), center, outer(3)),
		fmt.Sprintf("  %s   %s", outer(4), outer(5)),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderInput() string {
	return "> " + inputStyle.Render(strings.ToUpper(string(m.input))) + cursorStyle.Render("_")
}

func (m *Model) renderMessage() string {
	if m.message == "" {
		return ""
	}
	if m.good {
		return acceptStyle.Render(m.message)
	}
	return rejectStyle.Render(m.message)
}

func (m *Model) renderFound() string {
	p := m.session.Puzzle()
	words := m.session.FoundWords()
	header := headerStyle.Render(fmt.Sprintf("Found %d/%d", len(words), len(p.ValidWords)))
	if len(words) == 0 {
		return header
	}
	width := m.width / 2
	if width < 20 {
		width = 40
	}
	var b strings.Builder
	b.WriteString(header)
	for _, line := range wrapWords(words, width) {
		b.WriteByte('\n')
		styled := make([]string, 0, len(line))
		for _, w := range line {
			if p.IsPangram(w) {
				styled = append(styled, pangramStyle.Render(w))
			} else {
				styled = append(styled, foundStyle.Render(w))
			}
		}
		b.WriteString(strings.Join(styled, " "))
	}
	return b.String()
}
