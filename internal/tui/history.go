package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/taskloot/internal/config"
	"github.com/akyairhashvil/taskloot/internal/database"
	"github.com/akyairhashvil/taskloot/internal/models"
	"github.com/akyairhashvil/taskloot/internal/util"
)

// ThemeSettingKey is the app-state key holding the active theme name.
const ThemeSettingKey = "theme"

// HistoryModel lists granted rewards with totals and the most granted
// picks.
type HistoryModel struct {
	db        Database
	ctx       context.Context
	theme     Theme
	themeName string
	grants    []models.Grant
	top       []database.RewardCount
	count     int
	scroll    int
	status    string
	err       error
	width     int
	height    int
	quitting  bool
}

func NewHistoryModel(ctx context.Context, db Database) HistoryModel {
	name, ok := db.GetSetting(ctx, ThemeSettingKey)
	if !ok {
		name = ThemeOrder[0]
	}
	m := HistoryModel{
		db:        db,
		ctx:       ctx,
		theme:     ResolveTheme(name),
		themeName: name,
	}
	m.refresh()
	return m
}

func (m *HistoryModel) refresh() {
	grants, err := m.db.RecentGrants(m.ctx, config.MaxHistoryRows)
	if err != nil {
		m.err = err
		return
	}
	count, err := m.db.CountGrants(m.ctx)
	if err != nil {
		m.err = err
		return
	}
	top, err := m.db.TopRewards(m.ctx, 3)
	if err != nil {
		m.err = err
		return
	}
	m.grants, m.count, m.top, m.err = grants, count, top, nil
}

func (m HistoryModel) Init() tea.Cmd {
	return nil
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
			return m, nil
		case "down", "j":
			if m.scroll < maxScroll(len(m.grants)) {
				m.scroll++
			}
			return m, nil
		case "t":
			return m.cycleTheme(), nil
		case "p":
			return m.exportPDF(), nil
		}
	}
	return m, nil
}

func (m HistoryModel) cycleTheme() HistoryModel {
	m.themeName = NextThemeName(m.themeName)
	m.theme = ResolveTheme(m.themeName)
	if err := m.db.SetSetting(m.ctx, ThemeSettingKey, m.themeName); err != nil {
		m.setStatusError(fmt.Sprintf("Error saving theme: %v", err))
	} else {
		m.status = "Theme: " + m.theme.Name
	}
	return m
}

func (m HistoryModel) exportPDF() HistoryModel {
	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatusError(fmt.Sprintf("Error creating report directory: %v", err))
		return m
	}
	path := filepath.Join(dir, fmt.Sprintf("history_%s.pdf", time.Now().Format(config.DailyNoteLayout)))
	if err := WriteHistoryPDF(path, m.grants, m.top, m.count); err != nil {
		m.setStatusError(fmt.Sprintf("Error writing PDF: %v", err))
		return m
	}
	m.status = "PDF written: " + path
	return m
}

func (m *HistoryModel) setStatusError(s string) {
	m.status = s
}

func maxScroll(rows int) int {
	if rows <= config.MaxVisibleRows {
		return 0
	}
	return rows - config.MaxVisibleRows
}

func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Reward history"))
	b.WriteString("  ")
	b.WriteString(m.theme.Dim.Render(FormatGrantCount(m.count)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.theme.Error.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
		return m.theme.Base.Render(b.String())
	}

	if len(m.grants) == 0 {
		b.WriteString(m.theme.Dim.Render("Nothing granted yet. Complete a task!") + "\n")
	}

	now := time.Now()
	end := m.scroll + config.MaxVisibleRows
	if end > len(m.grants) {
		end = len(m.grants)
	}
	for _, g := range m.grants[m.scroll:end] {
		b.WriteString(m.renderGrant(g, now) + "\n")
	}
	if end < len(m.grants) {
		b.WriteString(m.theme.Dim.Render("  ↓ more") + "\n")
	}

	if len(m.top) > 0 {
		b.WriteString("\n" + m.theme.Highlight.Render("Most granted") + "\n")
		for _, rc := range m.top {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				m.theme.Label.Render(truncateLabel(rc.Reward, m.width/2)),
				m.theme.Dim.Render(fmt.Sprintf("x%d", rc.Count))))
		}
	}

	b.WriteString("\n" + m.theme.Dim.Render("[t]theme [p]pdf [q]quit"))
	if m.status != "" {
		b.WriteString("\n" + m.theme.Highlight.Render(m.status))
	}
	return m.theme.Base.Render(b.String())
}

func (m HistoryModel) renderGrant(g models.Grant, now time.Time) string {
	tier := tierIndexForLabel(g.Tier)
	when := m.theme.Dim.Render(fmt.Sprintf("%-12s", FormatGrantedAt(g.GrantedAt, now)))
	tag := m.theme.TierStyle(tier).Render(FormatTierTag(g.Tier, g.Chance))
	text := m.theme.Label.Render(truncateLabel(g.Reward, m.width/2))
	line := fmt.Sprintf("  %s %s %s", when, tag, text)
	if g.Task != "" {
		line += " " + m.theme.Dim.Render("("+truncateLabel(g.Task, m.width/4)+")")
	}
	return line
}

// tierIndexForLabel maps the recorded tier label back to a display tier.
// Custom labels fall back to the default tier style.
func tierIndexForLabel(label string) int {
	switch strings.ToLower(label) {
	case config.DefaultRareLabel:
		return 1
	case config.DefaultLegendaryLabel:
		return 2
	default:
		return 0
	}
}
