package doctor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ayushukla02/panda-react-library/internal/manifest"
	"github.com/ayushukla02/panda-react-library/internal/runner"
	"github.com/fatih/color"
)

// Status is the outcome of one check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusMiss Status = "MISS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Check is one line of the doctor report.
type Check struct {
	Name   string
	Status Status
	Detail string
}

// Doctor runs the toolchain checks. Zero values use the real PATH and run
// child processes with runner.Exec.
type Doctor struct {
	NodeConstraint string
	Runner         runner.Runner
	LookPath       func(file string) (string, error)
}

func (d *Doctor) lookPath(name string) (string, error) {
	if d.LookPath != nil {
		return d.LookPath(name)
	}
	return exec.LookPath(name)
}

func (d *Doctor) version(ctx context.Context, path string) (string, error) {
	r := d.Runner
	if r == nil {
		r = &runner.Exec{}
	}
	return runner.Output(ctx, r, runner.Command{Name: path, Args: []string{"--version"}})
}

// Run performs every check. npm is required; git is optional since a failed
// git bootstrap only produces a warning.
func (d *Doctor) Run(ctx context.Context) []Check {
	checks := []Check{d.checkNode(ctx)}

	if path, err := d.lookPath("npm"); err != nil {
		checks = append(checks, Check{Name: "npm", Status: StatusMiss, Detail: "npm not found"})
	} else {
		checks = append(checks, Check{Name: "npm", Status: StatusOK, Detail: "npm found at " + path})
	}

	if path, err := d.lookPath("git"); err != nil {
		checks = append(checks, Check{Name: "git", Status: StatusWarn, Detail: "git not found; repositories will not be initialized"})
	} else {
		checks = append(checks, Check{Name: "git", Status: StatusOK, Detail: "git found at " + path})
	}
	return checks
}

func (d *Doctor) checkNode(ctx context.Context) Check {
	path, err := d.lookPath("node")
	if err != nil {
		return Check{Name: "node", Status: StatusMiss, Detail: "node not found"}
	}
	v, err := d.version(ctx, path)
	if err != nil {
		return Check{Name: "node", Status: StatusWarn, Detail: fmt.Sprintf("could not read node version: %v", err)}
	}
	if d.NodeConstraint == "" {
		return Check{Name: "node", Status: StatusOK, Detail: "node " + v}
	}
	ok, err := SatisfiesConstraint(v, d.NodeConstraint)
	if err != nil {
		return Check{Name: "node", Status: StatusWarn, Detail: err.Error()}
	}
	if !ok {
		return Check{Name: "node", Status: StatusFail, Detail: fmt.Sprintf("node %s does not satisfy %s", v, d.NodeConstraint)}
	}
	return Check{Name: "node", Status: StatusOK, Detail: fmt.Sprintf("node %s satisfies %s", v, d.NodeConstraint)}
}

// SatisfiesConstraint reports whether version (a leading "v" is allowed)
// meets constraint, e.g. ">=18.0.0".
func SatisfiesConstraint(version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(version), "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return c.Check(v), nil
}

// CheckManifest validates a package.json file against the embedded schema.
func CheckManifest(path string) []Check {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return []Check{{Name: "manifest", Status: StatusFail, Detail: err.Error()}}
	}
	if result.Valid {
		return []Check{{Name: "manifest", Status: StatusOK, Detail: "valid " + path}}
	}
	checks := make([]Check, 0, len(result.Issues))
	for _, issue := range result.Issues {
		checks = append(checks, Check{Name: "manifest", Status: StatusFail, Detail: issue.String()})
	}
	return checks
}

// Failed reports whether any check is MISS or FAIL.
func Failed(checks []Check) bool {
	for _, c := range checks {
		if c.Status == StatusMiss || c.Status == StatusFail {
			return true
		}
	}
	return false
}

var statusColor = map[Status]*color.Color{
	StatusOK:   color.New(color.FgGreen),
	StatusMiss: color.New(color.FgRed),
	StatusWarn: color.New(color.FgYellow),
	StatusFail: color.New(color.FgRed, color.Bold),
}

// Print writes checks as "  [ OK ] detail" lines.
func Print(w io.Writer, checks []Check) {
	for _, c := range checks {
		tag := fmt.Sprintf("[%-4s]", c.Status)
		if c.Status == StatusOK {
			tag = "[ OK ]"
		}
		if col, ok := statusColor[c.Status]; ok {
			tag = col.Sprint(tag)
		}
		fmt.Fprintf(w, "  %s %s\n", tag, c.Detail)
	}
}
