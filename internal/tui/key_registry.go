package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key press in browse mode. The bool reports
// whether the key was consumed.
type KeyHandler func(SettingsModel, string) (SettingsModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Priority    int
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m SettingsModel, key string) (SettingsModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// Help renders the footer line from the registered bindings. Bindings
// without a description stay out of the footer.
func (r *HandlerRegistry) Help() string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}
