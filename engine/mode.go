package engine

//go:generate go tool stringer -type=ModeEnum -linecomment -output=mode_string.go

// ModeEnum selects what a traversal does with each callback result.
type ModeEnum int

const (
	_ ModeEnum = iota // skip zero value, use it as a default (invalid) value for ModeEnum

	ModeMap            // map
	ModeFilterMap      // filterMap
	ModeBuildMapping   // buildMapping
	ModeStopOnMatch    // stopOnMatch
	ModeStopOnMismatch // stopOnMismatch

	// ModeTotal is a constant that represents the total number of modes defined
	ModeTotal = int(iota)
)

// IsEarlyExit reports whether the mode may stop before the last element.
func (m ModeEnum) IsEarlyExit() bool {
	switch m {
	default:
		return false
	case ModeStopOnMatch, ModeStopOnMismatch:
		return true
	}
}
