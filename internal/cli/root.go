package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ayushukla02/panda-react-library/internal/app"
	"github.com/ayushukla02/panda-react-library/internal/branding"
	"github.com/ayushukla02/panda-react-library/internal/config"
	"github.com/ayushukla02/panda-react-library/internal/logger"
	"github.com/ayushukla02/panda-react-library/internal/pkgmgr"
	"github.com/ayushukla02/panda-react-library/internal/prompt"
	"github.com/ayushukla02/panda-react-library/internal/runner"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	welcomeColor = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
)

// newRunner builds the runner used by the create flow. Tests replace it.
var newRunner = func(stdout, stderr io.Writer) runner.Runner {
	return &runner.Exec{Stdout: stdout, Stderr: stderr}
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` asks a few questions, generates a Vite + React app with npm create,
then wires in the chosen UI library (Tailwind CSS, Bootstrap or MUI), optional helper
libraries (axios, formik, react-icons, react-font) and a first git commit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if _, err := logger.Init(config.Dir(), logger.ParseLevel(config.Get(config.KeyLogLevel))); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Logging disabled: %v\n", err)
		}
		logger.Debug("command started", "cmd", cmd.CommandPath(), "version", buildVersion)
	},
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	welcomeColor.Fprintf(out, "\n%s\n\n", branding.Welcome())

	answers, err := ask(cmd.InOrStdin(), out)
	if err != nil {
		return err
	}
	sel, err := answers.Selection(pkgmgr.Default)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	a := &app.App{
		Runner:        newRunner(out, cmd.ErrOrStderr()),
		Manager:       pkgmgr.Lookup(sel.PackageManager),
		Out:           out,
		Err:           cmd.ErrOrStderr(),
		Cwd:           cwd,
		CreatePackage: config.Get(config.KeyCreatePackage),
	}
	_, err = a.Create(cmd.Context(), sel)
	return err
}

func ask(in io.Reader, out io.Writer) (prompt.Answers, error) {
	if f, ok := in.(*os.File); ok {
		return prompt.Interactive(f, out)
	}
	return prompt.Collect(in, out)
}

// Execute runs the root command with build info injected via ldflags. Errors
// are printed to stderr; the caller only decides the exit code.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "err", err)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "\n✖ %v\n", err)
		return err
	}
	return nil
}
