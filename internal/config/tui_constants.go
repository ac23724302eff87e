package config

// Layout constants.
const (
	// MinFormWidth is the narrowest width the settings form renders at.
	MinFormWidth = 40

	// MaxInputWidth caps text input width inside the settings form.
	MaxInputWidth = 48

	// ModalWidth is the preferred width of the reward modal.
	ModalWidth = 60

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Display limits.
const (
	// MaxVisibleRows limits form rows shown before scrolling.
	MaxVisibleRows = 14

	// MaxHistoryRows limits grants shown by the history listing.
	MaxHistoryRows = 20
)

// Input constraints.
const (
	// MaxPathLength is the maximum rewards file path length.
	MaxPathLength = 200

	// MaxLabelLength is the maximum occurrence tier label length.
	MaxLabelLength = 40

	// MaxPrefaceLength is the maximum reward preface length.
	MaxPrefaceLength = 200

	// MaxMarkerLength is the maximum completed-task or escape marker length.
	MaxMarkerLength = 8
)
