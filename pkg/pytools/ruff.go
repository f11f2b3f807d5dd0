package pytools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// RuffChecker shells out to the linter CLI, scoping each invocation to a
// single rule and feeding the fragment on stdin. Every submission carries
// its own timeout.
type RuffChecker struct {
	// Command is the checker invocation, executable first.
	// Defaults to ["ruff"].
	Command []string

	// Timeout bounds one submission. Defaults to DefaultCheckTimeout.
	Timeout time.Duration
}

// CheckRule implements RuleChecker. The checker exiting nonzero because it
// found violations is a normal result; only failures to run or a timeout
// are errors.
func (c *RuffChecker) CheckRule(ctx context.Context, code, rule string) (string, error) {
	command := c.Command
	if len(command) == 0 {
		command = []string{"ruff"}
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append(append([]string{}, command[1:]...), checkArgs(rule)...)

	cmd := exec.CommandContext(ctx, command[0], args...)
	cmd.Stdin = strings.NewReader(code)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return "", fmt.Errorf("rule check for %s timed out after %s: %w", rule, timeout, ctxErr)
	}

	if err != nil {
		// A nonzero exit means violations were reported; the output is
		// still the answer.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), nil
		}
		return "", fmt.Errorf("run rule checker: %w", err)
	}

	return stdout.String(), nil
}

// checkArgs builds the scoped invocation for one rule. Stub-file rules are
// submitted under a .pyi filename so stub-only checks apply.
func checkArgs(rule string) []string {
	return []string{
		"check",
		"-",
		"--stdin-filename", StdinFilename(rule),
		"--select=" + rule,
		"--output-format=json",
	}
}

// StdinFilename synthesizes the filename a fragment is checked under.
func StdinFilename(rule string) string {
	ext := ".py"
	if strings.Contains(rule, "PYI") {
		ext = ".pyi"
	}
	return "test_" + rule + ext
}
