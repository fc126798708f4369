package oclint

import "fmt"

// Severity is the sonar severity attached to every rule of a category,
// the integer value is what gets written to the rules listing.
type Severity int

const (
	SEVERITY_INFO Severity = iota
	SEVERITY_MINOR
	SEVERITY_MAJOR
	SEVERITY_CRITICAL
	SEVERITY_BLOCKER
)

var severityNames = []string{
	SEVERITY_INFO:     "INFO",
	SEVERITY_MINOR:    "MINOR",
	SEVERITY_MAJOR:    "MAJOR",
	SEVERITY_CRITICAL: "CRITICAL",
	SEVERITY_BLOCKER:  "BLOCKER",
}

func SeverityFromInt(value int) (Severity, error) {
	if value < int(SEVERITY_INFO) || value > int(SEVERITY_BLOCKER) {
		return 0, fmt.Errorf("severity %d is out of range [%d, %d]", value, SEVERITY_INFO, SEVERITY_BLOCKER)
	}
	return Severity(value), nil
}

func (s Severity) String() string {
	if s < SEVERITY_INFO || s > SEVERITY_BLOCKER {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}
