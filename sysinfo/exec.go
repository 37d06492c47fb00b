package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/kris-nova/logger"
)

// Runner executes an external command and returns its trimmed standard output.
// Probes depend on this interface rather than on os/exec so they can be
// exercised against canned output.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// CommandRunner is the Runner backed by os/exec.
type CommandRunner struct{}

// Run spawns args[0] with the remaining arguments and waits for it to finish.
//
// Parameters:
//   - ctx: Context handed to exec.CommandContext; no timeout is added here
//   - args: Program name followed by its arguments, never interpreted by a shell
//
// Returns:
//   - Standard output with leading and trailing whitespace removed
//   - An ErrExecution error if the program cannot start or exits non-zero
//   - An ErrEncoding error if the output is not valid UTF-8
func (CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: empty command", ErrExecution)
	}
	cmdline := strings.Join(args, " ")
	logger.Debug("exec: %s", cmdline)

	out, err := exec.CommandContext(ctx, args[0], args[1:]...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if stderr := strings.TrimSpace(string(exitErr.Stderr)); stderr != "" {
				return "", fmt.Errorf("%w: %s: %v: %s", ErrExecution, cmdline, err, stderr)
			}
		}
		return "", fmt.Errorf("%w: %s: %v", ErrExecution, cmdline, err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: %s", ErrEncoding, cmdline)
	}
	return strings.TrimSpace(string(out)), nil
}

// RunString splits cmdline on whitespace and runs it with r. There is no
// quoting support, so no single argument may contain a space.
func RunString(ctx context.Context, r Runner, cmdline string) (string, error) {
	return r.Run(ctx, strings.Fields(cmdline)...)
}
