// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed and parsed once on first access,
// so renaming the tool only needs an edit to that file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	Welcome       string `yaml:"welcome"`
	Farewell      string `yaml:"farewell"`
	CommitMessage string `yaml:"commit_message"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:       "panda-react",
			DisplayName:   "Panda React",
			Description:   "Scaffold a Vite + React app with your UI library of choice",
			HomeDir:       ".panda-react",
			EnvPrefix:     "PANDA_REACT",
			Welcome:       "Welcome to panda-react",
			Farewell:      "Happy developing!",
			CommitMessage: "chore: bootstrap project with panda-react",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "panda-react").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".panda-react").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PANDA_REACT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// Welcome returns the banner printed before the prompts.
func Welcome() string { load(); return defaults.Welcome }

// Farewell returns the closing line printed after a successful run.
func Farewell() string { load(); return defaults.Farewell }

// CommitMessage returns the message used for the initial git commit.
func CommitMessage() string { load(); return defaults.CommitMessage }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "PANDA_REACT_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
