package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/ayushukla02/panda-react-library/internal/branding"
	"github.com/ayushukla02/panda-react-library/internal/deps"
	"github.com/ayushukla02/panda-react-library/internal/logger"
	"github.com/ayushukla02/panda-react-library/internal/pkgmgr"
	"github.com/ayushukla02/panda-react-library/internal/project"
	"github.com/ayushukla02/panda-react-library/internal/runner"
	"github.com/ayushukla02/panda-react-library/internal/scaffold"
	"github.com/ayushukla02/panda-react-library/internal/vcs"
)

// Defaults for the create tool invocation.
const (
	DefaultCreatePackage = "vite@latest"
	DefaultTemplate      = "react"
)

// ErrDirExists is returned when the target directory is already present.
var ErrDirExists = errors.New("directory already exists")

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	commandColor = color.New(color.FgCyan)
	boldColor    = color.New(color.Bold)
)

// App holds everything a run needs. Zero-valued optional fields fall back to
// the defaults above and to the branding commit message.
type App struct {
	Runner  runner.Runner
	Manager pkgmgr.Manager
	Out     io.Writer
	Err     io.Writer
	// Cwd is the directory the project is created in.
	Cwd           string
	CreatePackage string
	Template      string
	CommitMessage string
}

// Result summarizes a completed run.
type Result struct {
	ProjectDir     string
	Files          []string
	Runtime        []string
	Dev            []string
	Warnings       []string
	GitInitialized bool
}

// Create scaffolds sel.Name under Cwd. Any error other than a git failure
// aborts the run; files already written stay on disk.
func (a *App) Create(ctx context.Context, sel project.Selection) (*Result, error) {
	projectDir := filepath.Join(a.Cwd, sel.Name)
	logger.Info("create started", "dir", projectDir, "ui", string(sel.UI), "extras", sel.Extras, "git", sel.InitGit)

	if _, err := os.Lstat(projectDir); err == nil {
		return nil, fmt.Errorf("%w: %s (choose another name or remove it)", ErrDirExists, sel.Name)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking %s: %w", projectDir, err)
	}

	result := &Result{ProjectDir: projectDir}

	stop := a.spin("Scaffolding Vite + React app")
	err := a.Runner.Run(ctx, a.Manager.CreateCommand(a.Cwd, a.createPackage(), sel.Name, a.template()))
	stop()
	if err != nil {
		errorColor.Fprintln(a.errOut(), "✖ Failed to scaffold with create-vite")
		return nil, fmt.Errorf("scaffolding %s: %w", sel.Name, err)
	}
	successColor.Fprintln(a.Out, "✔ Vite app created")

	applied, err := scaffold.Apply(projectDir, sel)
	if err != nil {
		return nil, fmt.Errorf("applying templates: %w", err)
	}
	result.Files = applied.Files
	logger.Info("templates applied", "files", len(applied.Files), "imports", applied.Imports)
	result.Warnings = append(result.Warnings, applied.Warnings...)
	for _, w := range applied.Warnings {
		warnColor.Fprintf(a.Out, "⚠ %s\n", w)
	}

	commandColor.Fprintln(a.Out, "Installing dependencies")
	installer := &deps.Installer{Runner: a.Runner, Manager: a.Manager, Out: a.Out}
	report, err := installer.Install(ctx, projectDir, sel)
	if err != nil {
		errorColor.Fprintln(a.errOut(), "✖ Failed to install dependencies")
		return nil, err
	}
	successColor.Fprintln(a.Out, "✔ Dependencies installed & UI configured")
	result.Runtime = report.Runtime
	result.Dev = report.Dev
	if v := report.Manifest.Validation; v != nil {
		for _, issue := range v.Issues {
			result.Warnings = append(result.Warnings, "package.json "+issue.String())
		}
	}

	if sel.InitGit {
		if err := vcs.Bootstrap(ctx, a.Runner, projectDir, a.commitMessage()); err != nil {
			warnColor.Fprintln(a.Out, "\n⚠ Git not initialized (skipped)")
			result.Warnings = append(result.Warnings, err.Error())
		} else {
			successColor.Fprintln(a.Out, "\n✔ Initialized git repository")
			result.GitInitialized = true
		}
	}

	a.printNextSteps(sel.Name)
	logger.Info("create finished", "dir", projectDir, "git", result.GitInitialized, "warnings", len(result.Warnings))
	return result, nil
}

func (a *App) printNextSteps(name string) {
	fmt.Fprintln(a.Out, "\n"+boldColor.Sprint("Next steps:"))
	fmt.Fprintf(a.Out, " %s %s\n", commandColor.Sprint("cd"), name)
	fmt.Fprintf(a.Out, " %s\n", commandColor.Sprint(a.Manager.RunScript("dev")))
	fmt.Fprintf(a.Out, "\n%s\n\n", branding.Farewell())
}

// spin shows a spinner on terminals and returns the function that stops it.
func (a *App) spin(msg string) func() {
	f, ok := a.Out.(*os.File)
	if !ok {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(f))
	_ = s.Color("cyan")
	s.Suffix = " " + msg
	s.Start()
	return s.Stop
}

func (a *App) errOut() io.Writer {
	if a.Err != nil {
		return a.Err
	}
	return a.Out
}

func (a *App) createPackage() string {
	if a.CreatePackage != "" {
		return a.CreatePackage
	}
	return DefaultCreatePackage
}

func (a *App) template() string {
	if a.Template != "" {
		return a.Template
	}
	return DefaultTemplate
}

func (a *App) commitMessage() string {
	if a.CommitMessage != "" {
		return a.CommitMessage
	}
	return branding.CommitMessage()
}
