package domain

import "strings"

// Status is the pipeline stage of a project.
type Status string

const (
	StatusSiteSurvey Status = "site_survey"
	StatusInstall    Status = "install"
	StatusPTO        Status = "pto"
	StatusPaid       Status = "paid"
	StatusCancelled  Status = "cancelled"
	StatusOnHold     Status = "on_hold"
)

// AllStatuses lists the known statuses in pipeline order.
var AllStatuses = []Status{
	StatusSiteSurvey,
	StatusInstall,
	StatusPTO,
	StatusPaid,
	StatusCancelled,
	StatusOnHold,
}

// pipelineOrder ranks the active stages; on_hold and cancelled are off-path.
var pipelineOrder = map[Status]int{
	StatusSiteSurvey: 0,
	StatusInstall:    1,
	StatusPTO:        2,
	StatusPaid:       3,
}

// IsKnown reports whether s is one of the documented statuses.
func (s Status) IsKnown() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are expected.
func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// CanTransition describes the pipeline convention: forward through
// site_survey -> install -> pto -> paid, any non-terminal state may move to
// cancelled or on_hold, and on_hold may resume any active stage.
// The calculation engine reads statuses but never enforces this.
func CanTransition(from, to Status) bool {
	if from == to || from.IsTerminal() {
		return false
	}
	if to == StatusCancelled || to == StatusOnHold {
		return true
	}
	toRank, ok := pipelineOrder[to]
	if !ok {
		return false
	}
	if from == StatusOnHold {
		return true
	}
	fromRank, ok := pipelineOrder[from]
	return ok && toRank == fromRank+1
}

// statusKeywords maps free-text fragments to statuses; the first match wins.
// An empty status marks a negated label ("Unpaid", "Not installed"), which
// keeps its normalized text instead of matching a later keyword.
var statusKeywords = []struct {
	keyword string
	status  Status
}{
	{"cancel", StatusCancelled},
	{"hold", StatusOnHold},
	{"paus", StatusOnHold},
	{"unpaid", ""},
	{"not ", ""},
	{"non-", ""},
	{"non ", ""},
	{"paid", StatusPaid},
	{"funded", StatusPaid},
	{"pto", StatusPTO},
	{"permission to operate", StatusPTO},
	{"install", StatusInstall},
	{"survey", StatusSiteSurvey},
}

// ParseStatus maps a free-text stage label ("Site Survey", "PTO Received",
// "Cancelled - customer") to a Status. Labels with no recognizable keyword
// are kept as their normalized text so they are neither paid nor cancelled.
func ParseStatus(text string) Status {
	norm := strings.ToLower(strings.TrimSpace(text))
	if norm == "" {
		return ""
	}
	canonical := Status(strings.NewReplacer(" ", "_", "-", "_").Replace(norm))
	if canonical.IsKnown() {
		return canonical
	}
	for _, rule := range statusKeywords {
		if strings.Contains(norm, rule.keyword) {
			if rule.status == "" {
				return canonical
			}
			return rule.status
		}
	}
	return canonical
}
