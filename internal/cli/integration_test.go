package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CalumY/ruffdocs/internal/cli"
)

func buildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

// TestIntegration_CheckWithoutGeneratedRules covers the guard that refuses to
// run against a missing or empty rules directory.
func TestIntegration_CheckWithoutGeneratedRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(t *testing.T, rulesDir string)
	}{
		{
			name:  "rules directory missing",
			setup: func(_ *testing.T, _ string) {},
		},
		{
			name: "rules directory empty",
			setup: func(t *testing.T, rulesDir string) {
				t.Helper()
				require.NoError(t, os.MkdirAll(rulesDir, 0o755))
			},
		},
		{
			name: "rules directory has no markdown",
			setup: func(t *testing.T, rulesDir string) {
				t.Helper()
				require.NoError(t, os.MkdirAll(rulesDir, 0o755))
				require.NoError(t, os.WriteFile(filepath.Join(rulesDir, "notes.txt"), []byte("x"), 0o644))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			docsDir := filepath.Join(tmpDir, "docs")
			rulesDir := filepath.Join(docsDir, "rules")
			require.NoError(t, os.MkdirAll(docsDir, 0o755))
			tt.setup(t, rulesDir)

			cmd := cli.NewRootCommand(buildInfo())

			var buf bytes.Buffer
			cmd.SetOut(&buf)
			cmd.SetErr(&buf)
			cmd.SetArgs([]string{"check", "--docs-dir", docsDir, "--rules-dir", rulesDir})

			err := cmd.Execute()

			require.ErrorIs(t, err, cli.ErrChecksFailed)
			assert.Contains(t, buf.String(), "Please generate rules first.")
		})
	}
}

// TestIntegration_CheckRejectsBrokenConfig covers strict config parsing
// surfacing through the command.
func TestIntegration_CheckRejectsBrokenConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "ruffdocs.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("no_such_key: true\n"), 0o644))

	cmd := cli.NewRootCommand(buildInfo())

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"check", "--config", configPath})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
