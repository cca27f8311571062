package monitor

import (
	"fmt"
	"strings"
)

// Status is the reported state of a pNode.
type Status int

const (
	StatusOnline Status = iota
	StatusSyncing
	StatusOffline
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusOnline, StatusSyncing, StatusOffline}

// String returns the label shown in the Status column.
func (s Status) String() string {
	switch s {
	case StatusOnline:
		return "ONLINE"
	case StatusSyncing:
		return "SYNCING"
	case StatusOffline:
		return "OFFLINE"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Jitters reports whether tick perturbs latency for this status.
func (s Status) Jitters() bool {
	switch s {
	case StatusOnline, StatusSyncing:
		return true
	case StatusOffline:
		return false
	}
	return false
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOnline, StatusSyncing, StatusOffline:
		return true
	}
	return false
}

// ParseStatus converts a config string (case-insensitive) to a Status.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "online":
		return StatusOnline, nil
	case "syncing":
		return StatusSyncing, nil
	case "offline":
		return StatusOffline, nil
	}
	return 0, fmt.Errorf("unknown node status %q (want online, syncing, or offline)", raw)
}

// MarshalText lets statuses round-trip through YAML as their lowercase name.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return []byte(strings.ToLower(s.String())), nil
}

// UnmarshalText parses a status name.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Node is one monitored pNode.
type Node struct {
	ID       string
	Status   Status
	Latency  int // milliseconds
	Storage  string
	Earnings float64 // XAND
}
