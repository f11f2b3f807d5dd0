package configloader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, "docs", cfg.DocsDir)
	assert.Equal(t, filepath.Join("docs", "rules"), cfg.RulesDir)
	assert.Equal(t, "python", cfg.Language)
	assert.Equal(t, []string{"black"}, cfg.FormatterCommand)
	assert.Equal(t, []string{"ruff"}, cfg.CheckerCommand)
	assert.Equal(t, 2*time.Second, cfg.CheckTimeout())
	require.NoError(t, cfg.Exemptions.Validate())
}

func TestLoadNoConfigFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDiscoversProjectConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "docs_dir: documentation\ntimeout_seconds: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigName), []byte(content), 0o644))

	cfg, err := Load("", dir)

	require.NoError(t, err)
	assert.Equal(t, "documentation", cfg.DocsDir)
	assert.Equal(t, 5*time.Second, cfg.CheckTimeout())
	// Keys absent from the file keep their defaults.
	assert.Equal(t, filepath.Join("docs", "rules"), cfg.RulesDir)
	assert.Equal(t, []string{"black"}, cfg.FormatterCommand)
}

func TestLoadExplicitPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	content := "language: rust\nchecker_command: [cargo, clippy]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, dir)

	require.NoError(t, err)
	assert.Equal(t, "rust", cfg.Language)
	assert.Equal(t, []string{"cargo", "clippy"}, cfg.CheckerCommand)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"), t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "docs_dir: docs\nrule_dir: typo\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigName), []byte(content), 0o644))

	_, err := Load("", dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadOverridesExemptions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "exemptions:\n  formatting: [alpha, beta]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigName), []byte(content), 0o644))

	cfg, err := Load("", dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.Exemptions.Formatting)
	// Untouched lists keep defaults.
	assert.NotEmpty(t, cfg.Exemptions.ParseErrors)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigName), []byte("docs_dir: [unclosed"), 0o644))

	_, err := Load("", dir)

	require.Error(t, err)
}
