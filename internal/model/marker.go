package model

// Severity distinguishes hard errors from advisory information.
type Severity int

const (
	SeverityHint Severity = iota + 1
	SeverityInfo
	SeverityWarning
	SeverityError
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityHint:
		return "hint"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Marker is one positioned diagnostic. Lines are 1-indexed and columns
// 0-indexed, matching the buffer addressing convention. The end column of a
// marker extends one column past the last character it covers, so that
// zero-width issues (missing tokens) still render visibly.
type Marker struct {
	Message     string
	Severity    Severity
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}
