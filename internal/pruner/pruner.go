package pruner

import (
	"context"

	"github.com/markwharton/github-actions-storage-manager/internal/domain"
)

// Pruner defines the interface for pruning GitHub Actions workflow runs
type Pruner interface {
	// ListRuns retrieves the first page of workflow runs for a repository
	ListRuns(ctx context.Context, repo string) ([]*domain.WorkflowRun, error)

	// PruneRepo deletes all runs in a repository older than the retention window
	PruneRepo(ctx context.Context, repo string) (*domain.RepoReport, error)

	// PruneAll prunes every configured repository in order
	PruneAll(ctx context.Context) (*domain.PruneSummary, error)
}
