package pruner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v55/github"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/markwharton/github-actions-storage-manager/internal/domain"
	apperrors "github.com/markwharton/github-actions-storage-manager/internal/errors"
)

// listPageSize is the single page of runs requested per repository.
// Older runs beyond this page are picked up by later invocations.
const listPageSize = 100

// githubPruner implements Pruner using the GitHub API
type githubPruner struct {
	client        *github.Client
	owner         string
	repos         []string
	retentionDays int
	dryRun        bool
	now           func() time.Time
}

// NewGitHubPruner creates a new GitHub pruner
func NewGitHubPruner(token, owner string, repos []string, retentionDays int, dryRun bool) Pruner {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return NewPrunerWithClient(github.NewClient(tc), owner, repos, retentionDays, dryRun)
}

// NewPrunerWithClient creates a pruner backed by an existing GitHub client
func NewPrunerWithClient(client *github.Client, owner string, repos []string, retentionDays int, dryRun bool) Pruner {
	return &githubPruner{
		client:        client,
		owner:         owner,
		repos:         repos,
		retentionDays: retentionDays,
		dryRun:        dryRun,
		now:           time.Now,
	}
}

// ListRuns retrieves the first page of workflow runs for a repository
func (p *githubPruner) ListRuns(ctx context.Context, repo string) ([]*domain.WorkflowRun, error) {
	opts := &github.ListWorkflowRunsOptions{
		ListOptions: github.ListOptions{PerPage: listPageSize},
	}

	result, _, err := p.client.Actions.ListRepositoryWorkflowRuns(ctx, p.owner, repo, opts)
	if err != nil {
		return nil, classifyListError(p.owner, repo, err)
	}

	runs := make([]*domain.WorkflowRun, 0, len(result.WorkflowRuns))
	for _, run := range result.WorkflowRuns {
		runs = append(runs, &domain.WorkflowRun{
			ID:        run.GetID(),
			Name:      run.GetName(),
			Event:     run.GetEvent(),
			Status:    run.GetStatus(),
			CreatedAt: run.GetCreatedAt().Time,
		})
	}
	return runs, nil
}

// Cutoff returns the deletion threshold for the current invocation
func (p *githubPruner) Cutoff() time.Time {
	return p.now().UTC().AddDate(0, 0, -p.retentionDays)
}

// PruneRepo deletes all runs in a repository older than the retention window.
// Per-run delete failures are logged and counted but do not abort the loop;
// a listing failure aborts the repository with no delete calls issued.
func (p *githubPruner) PruneRepo(ctx context.Context, repo string) (*domain.RepoReport, error) {
	fmt.Printf("Checking %s/%s...\n", p.owner, repo)

	runs, err := p.ListRuns(ctx, repo)
	if err != nil {
		return nil, err
	}

	cutoff := p.Cutoff()
	report := &domain.RepoReport{Repo: repo, Listed: len(runs), DryRun: p.dryRun}

	for _, run := range runs {
		if !run.OlderThan(cutoff) {
			continue
		}

		if p.dryRun {
			fmt.Printf("Would delete run %d from %s\n", run.ID, run.CreatedAt.Format(time.RFC3339))
			report.Deleted++
			continue
		}

		if err := p.deleteRun(ctx, repo, run.ID); err != nil {
			fmt.Printf("Warning: %v\n", err)
			report.Failed++
			continue
		}
		fmt.Printf("Deleted run %d from %s\n", run.ID, run.CreatedAt.Format(time.RFC3339))
		report.Deleted++
	}

	fmt.Printf("Done with %s. Deleted %d run(s).\n", repo, report.Deleted)
	return report, nil
}

// PruneAll prunes every configured repository in order. A repository-level
// failure is recorded and does not prevent subsequent repositories.
func (p *githubPruner) PruneAll(ctx context.Context) (*domain.PruneSummary, error) {
	summary := &domain.PruneSummary{SessionID: uuid.New().String()}
	fmt.Printf("Prune session %s: %d repositories, retention %d day(s)\n",
		summary.SessionID, len(p.repos), p.retentionDays)

	for _, repo := range p.repos {
		report, err := p.PruneRepo(ctx, repo)
		if err != nil {
			fmt.Printf("Warning: skipping %s/%s: %v\n", p.owner, repo, err)
			summary.Errors = append(summary.Errors, fmt.Errorf("%s: %w", repo, err))
			continue
		}
		summary.Reports = append(summary.Reports, report)
	}

	fmt.Printf("Prune session %s complete. Deleted %d run(s) total.\n",
		summary.SessionID, summary.TotalDeleted())
	return summary, nil
}

// deleteRun issues a single delete call. Anything other than 204 is a
// DELETE_FAILED error for that run only.
func (p *githubPruner) deleteRun(ctx context.Context, repo string, id int64) error {
	resp, err := p.client.Actions.DeleteWorkflowRun(ctx, p.owner, repo, id)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return apperrors.NewDeleteFailedError(
			fmt.Sprintf("failed to delete run %d from %s (status %d)", id, repo, status), err)
	}
	if resp.StatusCode != http.StatusNoContent {
		return apperrors.NewDeleteFailedError(
			fmt.Sprintf("unexpected status %d deleting run %d from %s", resp.StatusCode, id, repo), nil)
	}
	return nil
}

// classifyListError maps listing failures onto the error taxonomy:
// connectivity problems are transport errors, non-2xx responses are API
// errors, and malformed bodies or timestamps are parse errors.
func classifyListError(owner, repo string, err error) error {
	msg := fmt.Sprintf("failed to list workflow runs for %s/%s", owner, repo)

	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) {
		return apperrors.NewAPIError(msg, err)
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return apperrors.NewAPIError(msg, err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var timeErr *time.ParseError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.As(err, &timeErr) {
		return apperrors.NewParseError(msg, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return apperrors.NewTransportError(msg, err)
	}
	return apperrors.NewTransportError(msg, err)
}
