package deps

import (
	"context"
	"fmt"
	"io"

	"github.com/ayushukla02/panda-react-library/internal/logger"
	"github.com/ayushukla02/panda-react-library/internal/manifest"
	"github.com/ayushukla02/panda-react-library/internal/pkgmgr"
	"github.com/ayushukla02/panda-react-library/internal/project"
	"github.com/ayushukla02/panda-react-library/internal/runner"
)

// Installer installs packages into a generated project.
type Installer struct {
	Runner  runner.Runner
	Manager pkgmgr.Manager
	// Out receives schema warnings for the patched manifest. Nil discards them.
	Out io.Writer
}

// Report summarizes a completed install.
type Report struct {
	Runtime []string
	Dev     []string
	// Manifest is the result of defaulting and validating package.json.
	Manifest *manifest.PatchResult
}

// Install runs, in order: the base install, one add for every runtime
// package (UI first, then extras), one dev add, the package.json patch and
// finally the UI setup. The first failure stops the run; nothing already
// done is rolled back.
func (in *Installer) Install(ctx context.Context, projectDir string, sel project.Selection) (*Report, error) {
	ui := ForUI(sel.UI)

	if err := in.run(ctx, in.Manager.InstallCommand(projectDir)); err != nil {
		return nil, fmt.Errorf("installing base dependencies: %w", err)
	}

	report := &Report{
		Runtime: append(append([]string{}, ui.Runtime...), ForExtras(sel.Extras)...),
		Dev:     append([]string{}, ui.Dev...),
	}
	if len(report.Runtime) > 0 {
		if err := in.run(ctx, in.Manager.AddCommand(projectDir, report.Runtime, false)); err != nil {
			return nil, fmt.Errorf("installing runtime dependencies: %w", err)
		}
	}
	if len(report.Dev) > 0 {
		if err := in.run(ctx, in.Manager.AddCommand(projectDir, report.Dev, true)); err != nil {
			return nil, fmt.Errorf("installing dev dependencies: %w", err)
		}
	}

	patched, err := manifest.Patch(projectDir)
	if err != nil {
		return nil, fmt.Errorf("patching package.json: %w", err)
	}
	report.Manifest = patched
	if in.Out != nil && patched.Validation != nil {
		for _, issue := range patched.Validation.Issues {
			fmt.Fprintf(in.Out, "  warning: package.json %s\n", issue)
		}
	}

	if ui.Setup != nil {
		if err := ui.Setup(projectDir); err != nil {
			return nil, err
		}
		logger.Info("ui setup complete", "ui", string(sel.UI))
	}
	return report, nil
}

func (in *Installer) run(ctx context.Context, c runner.Command) error {
	logger.Info("installing", "cmd", c.String(), "dir", c.Dir)
	return in.Runner.Run(ctx, c)
}
