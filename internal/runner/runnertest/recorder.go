// Package runnertest provides a runner.Runner that records commands instead
// of executing them.
package runnertest

import (
	"context"
	"sync"

	"github.com/ayushukla02/panda-react-library/internal/runner"
)

// Recorder records every command it receives. When Handle is set it is
// called for each command and its error is returned, which lets tests
// simulate tools such as "npm create".
type Recorder struct {
	Handle func(ctx context.Context, c runner.Command) error

	mu       sync.Mutex
	commands []runner.Command
}

// Run records c and delegates to Handle if present.
func (r *Recorder) Run(ctx context.Context, c runner.Command) error {
	r.mu.Lock()
	r.commands = append(r.commands, c)
	r.mu.Unlock()

	if r.Handle != nil {
		return r.Handle(ctx, c)
	}
	return nil
}

// Commands returns a copy of the recorded commands in call order.
func (r *Recorder) Commands() []runner.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]runner.Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Lines returns the recorded commands rendered with Command.String.
func (r *Recorder) Lines() []string {
	cmds := r.Commands()
	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = c.String()
	}
	return lines
}
