package domain

import "strings"

// Status - нормализованный статус занятости парковочного места
type Status string

const (
	StatusAvailable Status = "Available"
	StatusOccupied  Status = "Occupied"
	StatusLimited   Status = "Limited"
	StatusUnknown   Status = "Unknown"
)

// Statuses lists every normalized status value.
var Statuses = []Status{StatusAvailable, StatusOccupied, StatusLimited, StatusUnknown}

// statusKeywords maps each status to its case-insensitive substring
// markers. Order matters: the first matching category wins, so a string
// like "Available - Unoccupied" resolves to Available even though it also
// matches nothing further down. "present" is domain-specific: the sensor
// feed uses it to signal a vehicle is physically detected.
var statusKeywords = []struct {
	status   Status
	keywords []string
}{
	{StatusAvailable, []string{"available", "unoccupied", "free", "vacant", "open"}},
	{StatusOccupied, []string{"occupied", "present", "taken", "full", "busy", "in use"}},
	{StatusLimited, []string{"limited", "partial", "restricted", "loading", "short stay", "permit", "disabled", "clearway"}},
	{StatusUnknown, []string{"unknown", "no data", "offline", "error", "haven't published"}},
}

// MatchStatus classifies a raw sensor string. The second result reports
// whether any keyword matched; callers can use it to record unrecognized
// feed values without this function having side effects.
func MatchStatus(raw string) (Status, bool) {
	if raw == "" {
		return StatusUnknown, false
	}
	lower := strings.ToLower(raw)
	for _, group := range statusKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.status, true
			}
		}
	}
	return StatusUnknown, false
}

// NormalizeStatus maps arbitrary free text to one of the four statuses.
// Pure and total: every input yields exactly one status.
func NormalizeStatus(raw string) Status {
	status, _ := MatchStatus(raw)
	return status
}

// Priority returns the sort rank used for result ordering. Available spots
// come first, occupied last.
func (s Status) Priority() int {
	switch s {
	case StatusAvailable:
		return 0
	case StatusLimited:
		return 1
	case StatusUnknown:
		return 2
	case StatusOccupied:
		return 3
	default:
		return 2
	}
}
