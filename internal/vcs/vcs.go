package vcs

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/ayushukla02/panda-react-library/internal/logger"
	"github.com/ayushukla02/panda-react-library/internal/runner"
)

// Commands returns the git invocations Bootstrap runs, in order.
func Commands(dir, message string) []runner.Command {
	return []runner.Command{
		{Dir: dir, Name: "git", Args: []string{"init"}, Quiet: true},
		{Dir: dir, Name: "git", Args: []string{"add", "."}, Quiet: true},
		{Dir: dir, Name: "git", Args: []string{"commit", "-m", message}, Quiet: true},
	}
}

// Bootstrap runs git init, stages everything and makes the first commit.
// It stops at the first failing step and returns that error; callers treat
// it as a warning.
func Bootstrap(ctx context.Context, r runner.Runner, dir, message string) error {
	for _, c := range Commands(dir, message) {
		if err := r.Run(ctx, c); err != nil {
			logger.Warn("git bootstrap failed", "cmd", c.String(), "dir", dir, "err", err)
			return fmt.Errorf("git bootstrap: %w", err)
		}
	}
	logger.Info("git repository initialized", "dir", dir)
	return nil
}

// Available reports whether git is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}
