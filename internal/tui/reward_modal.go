package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/taskloot/internal/config"
	"github.com/akyairhashvil/taskloot/internal/rewards"
	"github.com/akyairhashvil/taskloot/internal/util"
)

// RewardModel shows one completion outcome in a centered modal and
// quits on any key.
type RewardModel struct {
	outcome *rewards.Outcome
	theme   Theme
	width   int
	height  int
	done    bool
}

func NewRewardModel(out *rewards.Outcome, theme Theme) RewardModel {
	return RewardModel{outcome: out, theme: theme}
}

func (m RewardModel) Init() tea.Cmd {
	return nil
}

func (m RewardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m RewardModel) View() string {
	if m.done {
		return ""
	}
	out := m.outcome

	title := "Reward!"
	if out.Inspirational {
		title = "Inspiration"
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Render(title) + "\n\n")
	if !out.Inspirational {
		tag := m.theme.TierStyle(out.Reward.Tier).Render(FormatTierTag(out.Tier.Label, out.Tier.Value))
		b.WriteString(tag + "\n")
	}
	b.WriteString(m.theme.Label.Render(rewardSentence(out)) + "\n")
	if out.Reward.Link != nil {
		b.WriteString(m.theme.Highlight.Render(*out.Reward.Link) + "\n")
	}
	if out.Task != "" {
		b.WriteString("\n" + m.theme.Dim.Render("for: "+out.Task) + "\n")
	}
	b.WriteString("\n" + m.theme.Dim.Render("press any key"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2).
		Width(config.ModalWidth).
		Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// rewardSentence joins the preface and the reward text. Inspirational
// outcomes carry no preface.
func rewardSentence(out *rewards.Outcome) string {
	return strings.TrimSpace(out.Preface + " " + out.Reward.Text)
}

// PlainOutcome renders an outcome for non-interactive output.
func PlainOutcome(out *rewards.Outcome) string {
	line := rewardSentence(out)
	if !out.Inspirational {
		line += " " + FormatTierTag(out.Tier.Label, out.Tier.Value)
	}
	if link := util.Deref(out.Reward.Link); link != "" {
		line += " " + link
	}
	return line
}
