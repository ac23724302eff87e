package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Border        lipgloss.Color
	Header        lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Input         lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Highlight     lipgloss.Style
	Error         lipgloss.Style
	TierCommon    lipgloss.Style
	TierRare      lipgloss.Style
	TierLegendary lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("63"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Value:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		TierCommon:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TierRare:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		TierLegendary: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("62"),                                                // Purple
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),     // Cyan
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),               // White
		Value:         lipgloss.NewStyle().Foreground(lipgloss.Color("120")),               // Green
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),    // Pink
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),                // Comment
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),    // Red
		TierCommon:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		TierRare:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),    // Cyan
		TierLegendary: lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),    // Orange
	},
}

// ThemeOrder fixes the cycling order for the theme key.
var ThemeOrder = []string{"default", "dracula"}

func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// NextThemeName returns the theme following current in the cycle order.
func NextThemeName(current string) string {
	for i, name := range ThemeOrder {
		if name == current {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}

// TierStyle maps an occurrence tier index to its display style.
func (t Theme) TierStyle(tier int) lipgloss.Style {
	switch tier {
	case 1:
		return t.TierRare
	case 2:
		return t.TierLegendary
	default:
		return t.TierCommon
	}
}
