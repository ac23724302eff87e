package models

import (
	"regexp"
	"time"

	"github.com/akyairhashvil/taskloot/internal/config"
)

// OccurrenceType is one rarity tier a reward can belong to. Value is the
// tier's relative chance in percent.
type OccurrenceType struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Settings is the full configuration record. It is persisted as a partial
// JSON document and rebuilt by merging that document over DefaultSettings.
// The two section headings are the only optional fields; nil means absent.
type Settings struct {
	CompletedTaskCharacter   string           `json:"completedTaskCharacter"`
	EscapeCharacterBegin     string           `json:"escapeCharacterBegin"`
	EscapeCharacterEnd       string           `json:"escapeCharacterEnd"`
	OccurrenceTypes          []OccurrenceType `json:"occurrenceTypes"`
	RewardsFile              string           `json:"rewardsFile"`
	SaveRewardToDaily        bool             `json:"saveRewardToDaily"`
	SaveRewardSectionHeading *string          `json:"saveRewardSectionHeading,omitempty"`
	SaveTaskToDaily          bool             `json:"saveTaskToDaily"`
	SaveTaskSectionHeading   *string          `json:"saveTaskSectionHeading,omitempty"`
	ShowModal                bool             `json:"showModal"`
	UseAsInspirational       bool             `json:"useAsInspirational"`
	RewardPreface            string           `json:"rewardPreface"`
}

// DefaultSettings returns a fresh copy of the built-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		CompletedTaskCharacter: config.DefaultCompletedTaskCharacter,
		EscapeCharacterBegin:   config.DefaultEscapeCharacterBegin,
		EscapeCharacterEnd:     config.DefaultEscapeCharacterEnd,
		OccurrenceTypes: []OccurrenceType{
			{Label: config.DefaultCommonLabel, Value: config.DefaultCommonChance},
			{Label: config.DefaultRareLabel, Value: config.DefaultRareChance},
			{Label: config.DefaultLegendaryLabel, Value: config.DefaultLegendaryChance},
		},
		RewardsFile:        config.DefaultRewardsFile,
		SaveRewardToDaily:  false,
		SaveTaskToDaily:    false,
		ShowModal:          true,
		UseAsInspirational: false,
		RewardPreface:      config.DefaultRewardPreface,
	}
}

// Clone returns a deep copy. Callers may mutate the copy freely.
func (s *Settings) Clone() *Settings {
	out := *s
	out.OccurrenceTypes = append([]OccurrenceType(nil), s.OccurrenceTypes...)
	if s.SaveRewardSectionHeading != nil {
		v := *s.SaveRewardSectionHeading
		out.SaveRewardSectionHeading = &v
	}
	if s.SaveTaskSectionHeading != nil {
		v := *s.SaveTaskSectionHeading
		out.SaveTaskSectionHeading = &v
	}
	return &out
}

var sectionHeadingRegex = regexp.MustCompile(`^#+`)

// ValidSectionHeading reports whether s is usable as a daily-note section
// heading: non-empty and starting with one or more '#' characters.
func ValidSectionHeading(s string) bool {
	return s != "" && sectionHeadingRegex.MatchString(s)
}

// Reward is a single candidate entry parsed from the rewards file.
type Reward struct {
	Text string
	Tier int // index into Settings.OccurrenceTypes
	Link *string
	Line int // 1-based line number in the rewards file
}

// Grant records one rewarded task completion. Tier and Chance capture the
// occurrence tier as configured at grant time.
type Grant struct {
	ID           int64
	Task         string
	Reward       string
	Tier         string
	Chance       float64
	Link         *string
	SavedToDaily bool
	GrantedAt    time.Time
}
