package types

import (
	"fmt"
	"time"
)

// Status is the terminal outcome of processing one file.
type Status int

const (
	StatusSkipped Status = iota
	StatusFailed
	StatusDryRun
	StatusRenamed
)

func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	case StatusDryRun:
		return "dry-run"
	case StatusRenamed:
		return "renamed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// RenameResult describes what happened to a single file.
type RenameResult struct {
	Source      string
	Destination string // Empty unless a name was synthesized
	Status      Status
	Reason      string // Why the file was skipped
	Err         error  // Set when Status is StatusFailed
}

// Counted reports whether the result counts towards the batch total.
func (r RenameResult) Counted() bool {
	return r.Status == StatusRenamed || r.Status == StatusDryRun
}

// BatchSummary aggregates one invocation over a directory.
type BatchSummary struct {
	Renamed int
	Skipped int
	Failed  int
	DryRun  bool
	Elapsed time.Duration
}

// Add folds a single result into the summary.
func (s *BatchSummary) Add(r RenameResult) {
	switch {
	case r.Counted():
		s.Renamed++
	case r.Status == StatusFailed:
		s.Failed++
	default:
		s.Skipped++
	}
}

// Count returns the number of files renamed, or that would have been under dry-run.
func (s *BatchSummary) Count() int {
	return s.Renamed
}

// Verb returns the action label used in the summary line.
func (s *BatchSummary) Verb() string {
	if s.DryRun {
		return "Pretended to rename"
	}
	return "Renamed"
}
