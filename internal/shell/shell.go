// Package shell runs external commands and captures their output.
package shell

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Result holds a completed command invocation.
type Result struct {
	Command string
	Args    []string
	Output  string
}

// CommandLine renders the invocation for diagnostics and dry-run output.
func (r Result) CommandLine() string {
	return CommandLine(r.Command, r.Args...)
}

// CommandLine renders a command and its arguments as a single line.
func CommandLine(command string, args ...string) string {
	if len(args) == 0 {
		return command
	}
	return command + " " + strings.Join(args, " ")
}

// Runner executes external commands in a working directory.
type Runner struct {
	// Dir is the working directory; empty means the process directory.
	Dir string

	// Verbose echoes each command line to stderr before running it.
	Verbose bool
}

// Run executes the command, blocking until it exits, and returns the
// trimmed combined output. A non-zero exit returns an error carrying the
// command line and its diagnostic output.
func (r *Runner) Run(ctx context.Context, command string, args ...string) (Result, error) {
	if r.Verbose {
		fmt.Fprintf(os.Stderr, "$ %s\n", CommandLine(command, args...))
	}

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = r.Dir

	output, err := cmd.CombinedOutput()
	result := Result{
		Command: command,
		Args:    args,
		Output:  strings.TrimSpace(string(output)),
	}
	if err != nil {
		return result, fmt.Errorf("%s: %w\n%s", result.CommandLine(), err, result.Output)
	}
	return result, nil
}

// RunInteractive executes the command attached to the operator's terminal,
// for tools that prompt (e.g. an interactive login).
func (r *Runner) RunInteractive(ctx context.Context, command string, args ...string) error {
	if r.Verbose {
		fmt.Fprintf(os.Stderr, "$ %s\n", CommandLine(command, args...))
	}

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = r.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", CommandLine(command, args...), err)
	}
	return nil
}
