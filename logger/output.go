package logger

// OutputCategory defines a category of output that can be enabled/disabled.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed.
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Conversion results
	OutputErrors                        // Errors with hints

	// Level 1 (-v)
	OutputConfig     // Config files consulted, values applied
	OutputWatchEvent // File change notifications

	// Level 2 (-vv)
	OutputConversion // Classification and per-input decisions

	// Level 3 (-vvv)
	OutputNormalized // Normalized numeral text before validation
	OutputDataDump   // Raw file contents read by watch
)

var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputConfig:     VerbosityInfo,
	OutputWatchEvent: VerbosityInfo,
	OutputConversion: VerbosityDebug,
	OutputNormalized: VerbosityTrace,
	OutputDataDump:   VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:    "results",
	OutputErrors:     "errors",
	OutputConfig:     "config",
	OutputWatchEvent: "watch",
	OutputConversion: "conversion",
	OutputNormalized: "normalized",
	OutputDataDump:   "data-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
