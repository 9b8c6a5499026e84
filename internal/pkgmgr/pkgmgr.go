package pkgmgr

import (
	"github.com/ayushukla02/panda-react-library/internal/runner"
)

// Default is the package manager used by the interactive flow.
const Default = "npm"

// Manager holds the verbs for one package manager.
type Manager struct {
	Name string
	// Install is the argument list for a base install ("install" for npm,
	// empty for yarn which installs when run bare).
	Install []string
	// Add and AddDev precede the package list for incremental adds.
	Add    []string
	AddDev []string
	// RunPrefix precedes a script name, e.g. "run" for npm.
	RunPrefix []string
}

var managers = map[string]Manager{
	"npm": {
		Name:      "npm",
		Install:   []string{"install"},
		Add:       []string{"install"},
		AddDev:    []string{"install", "-D"},
		RunPrefix: []string{"run"},
	},
	"yarn": {
		Name:    "yarn",
		Install: nil,
		Add:     []string{"add"},
		AddDev:  []string{"add", "-D"},
	},
	"pnpm": {
		Name:    "pnpm",
		Install: []string{"install"},
		Add:     []string{"add"},
		AddDev:  []string{"add", "-D"},
	},
	"bun": {
		Name:    "bun",
		Install: []string{"install"},
		Add:     []string{"add"},
		AddDev:  []string{"add", "-d"},
	},
}

// Lookup returns the Manager for name. Unknown names get npm's verbs under
// the given binary name.
func Lookup(name string) Manager {
	if m, ok := managers[name]; ok {
		return m
	}
	m := managers["npm"]
	m.Name = name
	return m
}

// InstallCommand returns the base install invocation run inside dir.
func (m Manager) InstallCommand(dir string) runner.Command {
	return runner.Command{Dir: dir, Name: m.Name, Args: clone(m.Install)}
}

// AddCommand returns the incremental add invocation for pkgs.
func (m Manager) AddCommand(dir string, pkgs []string, dev bool) runner.Command {
	verb := m.Add
	if dev {
		verb = m.AddDev
	}
	args := append(clone(verb), pkgs...)
	return runner.Command{Dir: dir, Name: m.Name, Args: args}
}

// CreateCommand returns the invocation of a "create" package (e.g.
// "vite@latest") that generates project name from template inside dir.
func (m Manager) CreateCommand(dir, createPackage, name, template string) runner.Command {
	args := []string{"create", createPackage, name}
	if m.Name == "npm" {
		// npm needs "--" to forward flags to the create package.
		args = append(args, "--")
	}
	args = append(args, "--template", template)
	return runner.Command{Dir: dir, Name: m.Name, Args: args, Quiet: true}
}

// RunScript renders the command line that runs a package.json script,
// e.g. "npm run dev" or "yarn dev".
func (m Manager) RunScript(script string) string {
	cmd := runner.Command{Name: m.Name, Args: append(clone(m.RunPrefix), script)}
	return cmd.String()
}

func clone(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
