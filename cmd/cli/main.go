package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/markwharton/github-actions-storage-manager/internal/config"
	"github.com/markwharton/github-actions-storage-manager/internal/pruner"
)

var (
	ownerFlag     string
	reposFlag     []string
	retentionDays int
	dryRun        bool
)

var rootCmd = &cobra.Command{
	Use:   "actions-storage",
	Short: "GitHub Actions workflow run housekeeping tool",
	Long: `A CLI tool for pruning old GitHub Actions workflow runs.

For each configured repository it lists the most recent workflow runs and
deletes those older than the retention window.`,
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete workflow runs older than the retention window",
	Long:  `Delete workflow runs older than the retention window in every configured repository.`,
	Args:  cobra.NoArgs,
	RunE:  runPrune,
}

var listCmd = &cobra.Command{
	Use:   "list [repo]",
	Short: "List recent workflow runs for a repository",
	Long:  `Display the most recent workflow runs for a repository along with their age and deletion eligibility.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ownerFlag, "owner", "", "GitHub organization or user (default from GITHUB_OWNER)")
	rootCmd.PersistentFlags().StringSliceVar(&reposFlag, "repos", nil, "repositories to process (default from GITHUB_REPOS)")
	rootCmd.PersistentFlags().IntVar(&retentionDays, "retention-days", -1, "delete runs older than this many days (default from RETENTION_DAYS)")
	pruneCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report eligible runs without deleting them")

	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the environment configuration and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if ownerFlag != "" {
		cfg.Owner = ownerFlag
	}
	if len(reposFlag) > 0 {
		cfg.Repos = reposFlag
	}
	if retentionDays >= 0 {
		cfg.RetentionDays = retentionDays
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runPrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := pruner.NewGitHubPruner(cfg.GitHubToken, cfg.Owner, cfg.Repos, cfg.RetentionDays, dryRun)
	summary, err := p.PruneAll(context.Background())
	if err != nil {
		return err
	}

	if summary.Failed() {
		details := make([]string, 0, len(summary.Errors))
		for _, repoErr := range summary.Errors {
			details = append(details, repoErr.Error())
		}
		return fmt.Errorf("%d repositories failed: %s", len(summary.Errors), strings.Join(details, "; "))
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	repo := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := pruner.NewGitHubPruner(cfg.GitHubToken, cfg.Owner, cfg.Repos, cfg.RetentionDays, true)
	runs, err := p.ListRuns(context.Background(), repo)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -cfg.RetentionDays)

	fmt.Printf("\nWorkflow Runs: %s/%s\n", cfg.Owner, repo)
	fmt.Printf("Retention: %d day(s), cutoff %s\n\n", cfg.RetentionDays, cutoff.Format(time.RFC3339))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Event", "Status", "Created", "Age", "Eligible"})
	for _, run := range runs {
		eligible := "no"
		if run.OlderThan(cutoff) {
			eligible = "yes"
		}
		table.Append([]string{
			fmt.Sprintf("%d", run.ID),
			run.Name,
			run.Event,
			run.Status,
			run.CreatedAt.Format(time.RFC3339),
			run.Age(now).Round(time.Minute).String(),
			eligible,
		})
	}
	table.Render()

	return nil
}
