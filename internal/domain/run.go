package domain

import "time"

// WorkflowRun represents a single GitHub Actions workflow run.
// It is fetched fresh on every invocation and never stored locally.
type WorkflowRun struct {
	ID        int64
	Name      string
	Event     string
	Status    string
	CreatedAt time.Time
}

// OlderThan reports whether the run was created strictly before cutoff.
// A run created exactly at the cutoff is not eligible for deletion.
func (r *WorkflowRun) OlderThan(cutoff time.Time) bool {
	return r.CreatedAt.Before(cutoff)
}

// Age returns how old the run is relative to now.
func (r *WorkflowRun) Age(now time.Time) time.Duration {
	return now.Sub(r.CreatedAt)
}
