package domain

// RepoReport summarizes the outcome of pruning a single repository
type RepoReport struct {
	Repo    string
	Listed  int // runs returned by the listing call
	Deleted int // delete calls that succeeded
	Failed  int // delete calls that did not succeed
	DryRun  bool
}

// PruneSummary summarizes the outcome of a whole prune invocation
type PruneSummary struct {
	SessionID string
	Reports   []*RepoReport
	Errors    []error // repository-level aborts, in repo order
}

// TotalDeleted returns the number of runs deleted across all repositories
func (s *PruneSummary) TotalDeleted() int {
	total := 0
	for _, r := range s.Reports {
		total += r.Deleted
	}
	return total
}

// Failed reports whether any repository aborted before its runs were evaluated
func (s *PruneSummary) Failed() bool {
	return len(s.Errors) > 0
}
