package config

// Occurrence chance bounds, in percent.
const (
	MinOccurrenceChance = 0.1
	MaxOccurrenceChance = 100.0
)

// OccurrenceTierCount is the fixed number of occurrence tiers.
const OccurrenceTierCount = 3

// Default occurrence tiers. Index 0 is the tier untagged rewards fall into.
const (
	DefaultCommonLabel     = "common"
	DefaultCommonChance    = 20.0
	DefaultRareLabel       = "rare"
	DefaultRareChance      = 5.0
	DefaultLegendaryLabel  = "legendary"
	DefaultLegendaryChance = 0.5
)

// Default note markup settings.
const (
	DefaultCompletedTaskCharacter = "x"
	DefaultEscapeCharacterBegin   = "{"
	DefaultEscapeCharacterEnd     = "}"
	DefaultRewardsFile            = "Rewards.md"
	DefaultRewardPreface          = "You earned:"
)

// Database/application settings.
const (
	AppName          = "taskloot"
	DBFileName       = "taskloot.db"
	SettingsFileName = "settings.json"
	DailyNoteLayout  = "2006-01-02"
)
