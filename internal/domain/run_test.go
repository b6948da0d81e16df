package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowRunOlderThan(t *testing.T) {
	cutoff := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	atCutoff := &WorkflowRun{ID: 1, CreatedAt: cutoff}
	justOlder := &WorkflowRun{ID: 2, CreatedAt: cutoff.Add(-time.Second)}
	newer := &WorkflowRun{ID: 3, CreatedAt: cutoff.Add(time.Second)}

	// eligibility is strictly before the cutoff
	assert.False(t, atCutoff.OlderThan(cutoff))
	assert.True(t, justOlder.OlderThan(cutoff))
	assert.False(t, newer.OlderThan(cutoff))
}

func TestWorkflowRunAge(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	run := &WorkflowRun{ID: 1, CreatedAt: now.Add(-90 * time.Minute)}

	assert.Equal(t, 90*time.Minute, run.Age(now))
}
