package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ayushukla02/panda-react-library/internal/logger"
)

// Command describes one external tool invocation.
type Command struct {
	// Dir is the working directory. Empty means the current directory.
	Dir  string
	Name string
	Args []string
	// Quiet discards stdout/stderr instead of streaming them.
	Quiet bool
	// Capture, when set, receives stdout in place of the streamed or
	// discarded destination.
	Capture io.Writer
}

// String renders the command line, e.g. "npm install -D tailwindcss".
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner runs a Command to completion. A non-nil error means the tool could
// not be started or exited with a non-zero status.
type Runner interface {
	Run(ctx context.Context, c Command) error
}

// Exec runs commands as child processes.
type Exec struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts the command and waits for it to exit. Streamed commands inherit
// stdin so interactive tools keep working.
func (e *Exec) Run(ctx context.Context, c Command) error {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %w", c.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = c.Dir

	// Quiet commands keep the tail of stderr so failures stay diagnosable.
	var stderrBuf bytes.Buffer
	if c.Quiet {
		cmd.Stdout = io.Discard
		cmd.Stderr = &stderrBuf
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = e.stdout()
		cmd.Stderr = e.stderr()
	}
	if c.Capture != nil {
		cmd.Stdout = c.Capture
	}

	logger.Debug("running command", "cmd", c.String(), "dir", c.Dir, "quiet", c.Quiet)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := fmt.Sprintf("%s exited with status %d", c.String(), exitErr.ExitCode())
			if tail := strings.TrimSpace(stderrBuf.String()); tail != "" {
				msg += ": " + lastLines(tail, 5)
			}
			logger.Warn("command failed", "cmd", c.String(), "status", exitErr.ExitCode())
			return errors.New(msg)
		}
		return fmt.Errorf("%s failed: %w", c.String(), err)
	}
	return nil
}

// Output runs c quietly through r and returns its trimmed stdout.
func Output(ctx context.Context, r Runner, c Command) (string, error) {
	var buf bytes.Buffer
	c.Quiet = true
	c.Capture = &buf
	if err := r.Run(ctx, c); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func (e *Exec) stdout() io.Writer {
	if e.Stdout != nil {
		return e.Stdout
	}
	return os.Stdout
}

func (e *Exec) stderr() io.Writer {
	if e.Stderr != nil {
		return e.Stderr
	}
	return os.Stderr
}

func lastLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
