package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/taskloot/internal/config"
)

// FormatChance renders an occurrence chance for display (e.g., "20%",
// "0.5%").
func FormatChance(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// FormatTierTag renders a tier label as an inline tag (e.g., "[rare 5%]").
func FormatTierTag(label string, chance float64) string {
	return "[" + label + " " + FormatChance(chance) + "]"
}

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatGrantedAt renders a grant timestamp: relative within the last
// day, date otherwise.
func FormatGrantedAt(at, now time.Time) string {
	age := now.Sub(at)
	if age < 0 {
		age = 0
	}
	if age < 24*time.Hour {
		return FormatDuration(age) + " ago"
	}
	return at.Format("2006-01-02")
}

// FormatGrantCount formats history totals for display.
func FormatGrantCount(n int) string {
	if n == 0 {
		return "No rewards yet"
	}
	if n == 1 {
		return "1 reward"
	}
	return fmt.Sprintf("%d rewards", n)
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
