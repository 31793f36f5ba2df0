package diag

import "fmt"

// CheckStatus represents the result status of a single health check.
type CheckStatus int

const (
	StatusPass CheckStatus = iota
	StatusFail
)

// String returns a human-readable status string.
func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// CheckItem is one entry in a diagnostic sweep summary.
type CheckItem struct {
	Status      CheckStatus `json:"status"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Details     string      `json:"details,omitempty"`
}

// Report is the result of one diagnostic sweep against a device.
// Summary holds the parsed check items in their original order,
// Detailed the cleaned per-check log section, and Raw the unfiltered
// marker-delimited text the sweep produced.
type Report struct {
	Summary  []CheckItem `json:"summary"`
	Detailed string      `json:"detailed"`
	Raw      string      `json:"raw"`
}

// Partition splits the summary into failed and passed items.
// Relative order within each group matches the original summary order.
func (r *Report) Partition() (failed, passed []CheckItem) {
	for _, item := range r.Summary {
		if item.Status == StatusFail {
			failed = append(failed, item)
		} else {
			passed = append(passed, item)
		}
	}
	return failed, passed
}

// FailCount returns the number of failed checks.
func (r *Report) FailCount() int {
	count := 0
	for _, item := range r.Summary {
		if item.Status == StatusFail {
			count++
		}
	}
	return count
}

// PassCount returns the number of passed checks.
func (r *Report) PassCount() int {
	return len(r.Summary) - r.FailCount()
}

// HasFailures returns true if any check failed.
func (r *Report) HasFailures() bool {
	return r.FailCount() > 0
}

// Headline returns a one-line summary of the sweep outcome.
func (r *Report) Headline() string {
	fails := r.FailCount()
	if fails == 0 {
		return fmt.Sprintf("All %d checks passed", len(r.Summary))
	}
	return fmt.Sprintf("%d of %d checks failed", fails, len(r.Summary))
}
