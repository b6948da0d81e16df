package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("GITHUB_OWNER", "markwharton")
	t.Setenv("GITHUB_REPOS", "hm-pdf-generator,hm-xslfo-service-java")
	t.Setenv("RETENTION_DAYS", "14")
}

func TestLoad(t *testing.T) {
	setTestEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ghp_test", cfg.GitHubToken)
	assert.Equal(t, "markwharton", cfg.Owner)
	assert.Equal(t, []string{"hm-pdf-generator", "hm-xslfo-service-java"}, cfg.Repos)
	assert.Equal(t, 14, cfg.RetentionDays)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_RetentionDefault(t *testing.T) {
	setTestEnv(t)
	t.Setenv("RETENTION_DAYS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultRetentionDays, cfg.RetentionDays)
}

func TestLoad_RetentionNotAnInteger(t *testing.T) {
	setTestEnv(t)
	t.Setenv("RETENTION_DAYS", "soon")

	_, err := Load()
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "RETENTION_DAYS", cfgErr.Field)
}

func TestSplitRepos(t *testing.T) {
	// order is preserved, whitespace and empty entries dropped
	repos := splitRepos(" alpha , beta,,gamma ")
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, repos)

	assert.Nil(t, splitRepos(""))
}

func TestValidate(t *testing.T) {
	valid := &Config{
		GitHubToken:   "tok",
		Owner:         "markwharton",
		Repos:         []string{"demo"},
		RetentionDays: 1,
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing token", func(c *Config) { c.GitHubToken = "" }, "GITHUB_TOKEN"},
		{"missing owner", func(c *Config) { c.Owner = "" }, "GITHUB_OWNER"},
		{"no repos", func(c *Config) { c.Repos = nil }, "GITHUB_REPOS"},
		{"negative retention", func(c *Config) { c.RetentionDays = -1 }, "RETENTION_DAYS"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := *valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}
