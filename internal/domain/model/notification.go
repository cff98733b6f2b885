package model

import (
	"fmt"
	"strings"
)

// Severity is the notification level of a message. It controls the colour
// of every attachment in the payload.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityInformation
	SeverityCritical
)

var severityColors = [...]string{
	SeverityNormal:      "#00C853",
	SeverityInformation: "#FFD600",
	SeverityCritical:    "#d50000",
}

var severityNames = [...]string{
	SeverityNormal:      "normal",
	SeverityInformation: "information",
	SeverityCritical:    "critical",
}

// Color returns the attachment colour for the severity.
func (s Severity) Color() string {
	if !s.Valid() {
		return severityColors[SeverityNormal]
	}
	return severityColors[s]
}

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool {
	return s >= SeverityNormal && s <= SeverityCritical
}

func (s Severity) String() string {
	if !s.Valid() {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity maps a level name to a Severity.
func ParseSeverity(value string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "normal", "message":
		return SeverityNormal, nil
	case "information", "info":
		return SeverityInformation, nil
	case "critical", "error":
		return SeverityCritical, nil
	default:
		return SeverityNormal, fmt.Errorf("unknown severity %q", value)
	}
}

// Notification is a transport-agnostic message for downstream notifiers.
type Notification struct {
	Message  string
	Severity Severity
	// Title is only rendered when HasTitle is set, so an empty title can
	// still be sent explicitly.
	Title      string
	HasTitle   bool
	Recipients []string
}
