package pytools

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// BlackFormatter shells out to a black-compatible formatter reading code on
// stdin and writing the canonical form to stdout.
type BlackFormatter struct {
	// Command is the formatter invocation, executable first.
	// Defaults to ["black"].
	Command []string

	// TargetVersions are the language versions passed to the formatter.
	// Defaults to DefaultTargetVersions.
	TargetVersions []string
}

// Format implements Formatter.
func (f *BlackFormatter) Format(ctx context.Context, code string) (string, error) {
	command := f.Command
	if len(command) == 0 {
		command = []string{"black"}
	}

	args := append(append([]string{}, command[1:]...), f.args()...)

	cmd := exec.CommandContext(ctx, command[0], args...)
	cmd.Stdin = strings.NewReader(code)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if detail, ok := parseFailure(stderr.String()); ok {
			return "", &ParseError{Detail: detail}
		}
		return "", fmt.Errorf("run formatter: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

// args builds the fixed argument list: read stdin, stay quiet, target the
// configured language versions.
func (f *BlackFormatter) args() []string {
	versions := f.TargetVersions
	if len(versions) == 0 {
		versions = DefaultTargetVersions
	}

	args := []string{"-", "--quiet"}
	for _, version := range versions {
		args = append(args, "--target-version", version)
	}
	return args
}

// parseFailure extracts the parse-failure detail from the formatter's
// stderr, distinguishing unparseable input from other tool failures.
func parseFailure(stderr string) (string, bool) {
	for _, line := range strings.Split(stderr, "\n") {
		if strings.Contains(line, "Cannot parse") || strings.Contains(line, "cannot format") {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}
