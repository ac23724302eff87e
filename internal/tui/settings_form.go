package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/taskloot/internal/config"
	"github.com/akyairhashvil/taskloot/internal/models"
	"github.com/akyairhashvil/taskloot/internal/store"
	"github.com/akyairhashvil/taskloot/internal/util"
)

// control describes one row of the settings form. apply validates a raw
// text value and writes it into the settings; it reports whether the
// value was accepted and whether the stored form differs from what was
// typed (which forces a full input rebuild so the row shows the stored
// value).
type control struct {
	title      string
	desc       string
	toggle     bool
	resettable bool
	charLimit  int
	value      func(*models.Settings) string
	apply      func(*models.Settings, string) (accepted, rebuild bool)
	flip       func(*models.Settings)
	reset      func(*models.Settings)
}

// SettingsModel is the bubbletea model for the settings form. Every
// accepted mutation is written back to the store immediately.
type SettingsModel struct {
	store    store.Store
	settings *models.Settings
	controls []control
	inputs   []textinput.Model
	registry *HandlerRegistry
	theme    Theme
	focus    int
	scroll   int
	editing  bool
	width    int
	height   int
	quitting bool
}

func NewSettingsModel(st store.Store, s *models.Settings, theme Theme) SettingsModel {
	m := SettingsModel{
		store:    st,
		settings: s,
		controls: buildControls(),
		theme:    theme,
	}
	m.rebuildInputs()
	m.registry = newSettingsRegistry()
	return m
}

func (m SettingsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		if next, cmd, handled := m.registry.Handle(m, msg.String()); handled {
			return next, cmd
		}
	}
	return m, nil
}

func (m SettingsModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.commitEdit(), nil
	case tea.KeyEsc:
		m.editing = false
		m.inputs[m.focus].Blur()
		m.inputs[m.focus].SetValue(m.controls[m.focus].value(m.settings))
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// commitEdit validates the focused input. Rejected values are dropped
// and the row re-renders with the stored value; accepted values persist
// immediately. When the stored value differs from the raw input (clamp,
// path normalization, heading trim) all inputs are rebuilt.
func (m SettingsModel) commitEdit() SettingsModel {
	c := m.controls[m.focus]
	raw := m.inputs[m.focus].Value()
	m.editing = false
	m.inputs[m.focus].Blur()

	accepted, rebuild := c.apply(m.settings, raw)
	if !accepted {
		m.inputs[m.focus].SetValue(c.value(m.settings))
		return m
	}
	if rebuild {
		m.rebuildInputs()
	} else {
		m.inputs[m.focus].SetValue(c.value(m.settings))
	}
	m.persist()
	return m
}

// rebuildInputs reseeds every text input from the current settings.
func (m *SettingsModel) rebuildInputs() {
	inputs := make([]textinput.Model, len(m.controls))
	for i, c := range m.controls {
		if c.toggle {
			continue
		}
		ti := textinput.New()
		ti.CharLimit = c.charLimit
		ti.Width = config.MaxInputWidth
		ti.SetValue(c.value(m.settings))
		inputs[i] = ti
	}
	m.inputs = inputs
}

func (m *SettingsModel) persist() {
	util.LogError("save settings", m.store.Save(m.settings))
}

func (m *SettingsModel) moveFocus(delta int) {
	next := m.focus + delta
	if next < 0 {
		next = 0
	}
	if next > len(m.controls)-1 {
		next = len(m.controls) - 1
	}
	m.focus = next
	if m.focus < m.scroll {
		m.scroll = m.focus
	}
	if m.focus >= m.scroll+config.MaxVisibleRows {
		m.scroll = m.focus - config.MaxVisibleRows + 1
	}
}

func newSettingsRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "up", Handler: handleMoveFocus, Description: "move"})
	r.Register(KeyBinding{Key: "k", Handler: handleMoveFocus})
	r.Register(KeyBinding{Key: "down", Handler: handleMoveFocus})
	r.Register(KeyBinding{Key: "j", Handler: handleMoveFocus})
	r.Register(KeyBinding{Key: "enter", Handler: handleActivate, Description: "edit"})
	r.Register(KeyBinding{Key: " ", Handler: handleToggle, Description: "toggle"})
	r.Register(KeyBinding{Key: "r", Handler: handleReset, Description: "reset"})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit"})
	r.Register(KeyBinding{Key: "esc", Handler: handleQuit})
	return r
}

func handleMoveFocus(m SettingsModel, key string) (SettingsModel, tea.Cmd, bool) {
	delta := 1
	if key == "up" || key == "k" {
		delta = -1
	}
	m.moveFocus(delta)
	return m, nil, true
}

func handleActivate(m SettingsModel, _ string) (SettingsModel, tea.Cmd, bool) {
	c := m.controls[m.focus]
	if c.toggle {
		c.flip(m.settings)
		m.persist()
		return m, nil, true
	}
	m.editing = true
	m.inputs[m.focus].SetValue(c.value(m.settings))
	m.inputs[m.focus].CursorEnd()
	cmd := m.inputs[m.focus].Focus()
	return m, cmd, true
}

func handleToggle(m SettingsModel, _ string) (SettingsModel, tea.Cmd, bool) {
	c := m.controls[m.focus]
	if !c.toggle {
		return m, nil, false
	}
	c.flip(m.settings)
	m.persist()
	return m, nil, true
}

func handleReset(m SettingsModel, _ string) (SettingsModel, tea.Cmd, bool) {
	c := m.controls[m.focus]
	if !c.resettable {
		return m, nil, false
	}
	c.reset(m.settings)
	m.persist()
	m.rebuildInputs()
	return m, nil, true
}

func handleQuit(m SettingsModel, _ string) (SettingsModel, tea.Cmd, bool) {
	m.quitting = true
	return m, tea.Quit, true
}

func buildControls() []control {
	controls := []control{
		{
			title:      "Completed task character",
			desc:       "Mark placed inside the checkbox of a finished task",
			charLimit:  config.MaxMarkerLength,
			resettable: true,
			value:      func(s *models.Settings) string { return s.CompletedTaskCharacter },
			apply:      applyMarker(func(s *models.Settings, v string) { s.CompletedTaskCharacter = v }),
			reset:      func(s *models.Settings) { s.CompletedTaskCharacter = config.DefaultCompletedTaskCharacter },
		},
		{
			title:      "Escape character (begin)",
			desc:       "Opens a metadata token inside a reward entry",
			charLimit:  config.MaxMarkerLength,
			resettable: true,
			value:      func(s *models.Settings) string { return s.EscapeCharacterBegin },
			apply:      applyMarker(func(s *models.Settings, v string) { s.EscapeCharacterBegin = v }),
			reset:      func(s *models.Settings) { s.EscapeCharacterBegin = config.DefaultEscapeCharacterBegin },
		},
		{
			title:      "Escape character (end)",
			desc:       "Closes a metadata token inside a reward entry",
			charLimit:  config.MaxMarkerLength,
			resettable: true,
			value:      func(s *models.Settings) string { return s.EscapeCharacterEnd },
			apply:      applyMarker(func(s *models.Settings, v string) { s.EscapeCharacterEnd = v }),
			reset:      func(s *models.Settings) { s.EscapeCharacterEnd = config.DefaultEscapeCharacterEnd },
		},
	}
	for i := 0; i < config.OccurrenceTierCount; i++ {
		controls = append(controls, tierLabelControl(i), tierChanceControl(i))
	}
	controls = append(controls,
		control{
			title:      "Rewards file",
			desc:       "Vault-relative path to the rewards list",
			charLimit:  config.MaxPathLength,
			resettable: true,
			value:      func(s *models.Settings) string { return s.RewardsFile },
			apply: func(s *models.Settings, raw string) (bool, bool) {
				normalized := util.NormalizePath(raw)
				if normalized == "" {
					normalized = config.DefaultRewardsFile
				}
				s.RewardsFile = normalized
				return true, normalized != raw
			},
			reset: func(s *models.Settings) { s.RewardsFile = config.DefaultRewardsFile },
		},
		control{
			title:      "Save reward to daily note",
			desc:       "Append each granted reward to today's note",
			toggle:     true,
			resettable: true,
			value:      func(s *models.Settings) string { return checkbox(s.SaveRewardToDaily) },
			flip:       func(s *models.Settings) { s.SaveRewardToDaily = !s.SaveRewardToDaily },
			reset:      func(s *models.Settings) { s.SaveRewardToDaily = false },
		},
		control{
			title:      "Reward section heading",
			desc:       "Markdown heading the reward lines go under",
			charLimit:  config.MaxLabelLength,
			resettable: true,
			value:      func(s *models.Settings) string { return util.Deref(s.SaveRewardSectionHeading) },
			apply:      applyHeading(func(s *models.Settings, h *string) { s.SaveRewardSectionHeading = h }),
			reset:      func(s *models.Settings) { s.SaveRewardSectionHeading = nil },
		},
		control{
			title:      "Save task to daily note",
			desc:       "Append each completed task to today's note",
			toggle:     true,
			resettable: true,
			value:      func(s *models.Settings) string { return checkbox(s.SaveTaskToDaily) },
			flip:       func(s *models.Settings) { s.SaveTaskToDaily = !s.SaveTaskToDaily },
			reset:      func(s *models.Settings) { s.SaveTaskToDaily = false },
		},
		control{
			title:      "Task section heading",
			desc:       "Markdown heading the task lines go under",
			charLimit:  config.MaxLabelLength,
			resettable: true,
			value:      func(s *models.Settings) string { return util.Deref(s.SaveTaskSectionHeading) },
			apply:      applyHeading(func(s *models.Settings, h *string) { s.SaveTaskSectionHeading = h }),
			reset:      func(s *models.Settings) { s.SaveTaskSectionHeading = nil },
		},
		control{
			title:  "Show reward modal",
			desc:   "Pop a modal with the granted reward",
			toggle: true,
			value:  func(s *models.Settings) string { return checkbox(s.ShowModal) },
			flip:   func(s *models.Settings) { s.ShowModal = !s.ShowModal },
		},
		control{
			title:  "Inspirational mode",
			desc:   "Show rewards as prompts only, nothing is granted",
			toggle: true,
			value:  func(s *models.Settings) string { return checkbox(s.UseAsInspirational) },
			flip:   func(s *models.Settings) { s.UseAsInspirational = !s.UseAsInspirational },
		},
		control{
			title:      "Reward preface",
			desc:       "Text placed before the reward in notes and modal",
			charLimit:  config.MaxPrefaceLength,
			resettable: true,
			value:      func(s *models.Settings) string { return s.RewardPreface },
			apply: func(s *models.Settings, raw string) (bool, bool) {
				s.RewardPreface = raw
				return true, false
			},
			reset: func(s *models.Settings) { s.RewardPreface = config.DefaultRewardPreface },
		},
	)
	return controls
}

func tierLabelControl(i int) control {
	return control{
		title:      fmt.Sprintf("Occurrence %d label", i+1),
		desc:       tierDesc(i),
		charLimit:  config.MaxLabelLength,
		resettable: true,
		value:      func(s *models.Settings) string { return s.OccurrenceTypes[i].Label },
		apply: func(s *models.Settings, raw string) (bool, bool) {
			trimmed := strings.TrimSpace(raw)
			if trimmed == "" {
				return false, false
			}
			s.OccurrenceTypes[i].Label = trimmed
			return true, trimmed != raw
		},
		reset: func(s *models.Settings) { s.OccurrenceTypes[i].Label = defaultTier(i).Label },
	}
}

func tierChanceControl(i int) control {
	return control{
		title:      fmt.Sprintf("Occurrence %d chance", i+1),
		desc:       "Percent chance, clamped to 0.1 through 100",
		charLimit:  10,
		resettable: true,
		value: func(s *models.Settings) string {
			return strconv.FormatFloat(s.OccurrenceTypes[i].Value, 'f', -1, 64)
		},
		apply: func(s *models.Settings, raw string) (bool, bool) {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return false, false
			}
			clamped := util.ClampFloat(v, config.MinOccurrenceChance, config.MaxOccurrenceChance)
			s.OccurrenceTypes[i].Value = clamped
			return true, clamped != v
		},
		reset: func(s *models.Settings) { s.OccurrenceTypes[i].Value = defaultTier(i).Value },
	}
}

func tierDesc(i int) string {
	if i == 0 {
		return "Default tier for rewards without a tag"
	}
	return "Tag rewards with this label to use its chance"
}

func defaultTier(i int) models.OccurrenceType {
	return models.DefaultSettings().OccurrenceTypes[i]
}

func applyMarker(set func(*models.Settings, string)) func(*models.Settings, string) (bool, bool) {
	return func(s *models.Settings, raw string) (bool, bool) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return false, false
		}
		set(s, trimmed)
		return true, trimmed != raw
	}
}

// applyHeading validates with the same predicate the model layer uses, so
// leading whitespace fails like any other malformed heading. Empty input is
// dropped too; reset is the only way back to absent.
func applyHeading(set func(*models.Settings, *string)) func(*models.Settings, string) (bool, bool) {
	return func(s *models.Settings, raw string) (bool, bool) {
		trimmed := strings.TrimRight(raw, " \t")
		if !models.ValidSectionHeading(trimmed) {
			return false, false
		}
		set(s, util.Ptr(trimmed))
		return true, trimmed != raw
	}
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
