package deps

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ayushukla02/panda-react-library/internal/pkgmgr"
	"github.com/ayushukla02/panda-react-library/internal/project"
	"github.com/ayushukla02/panda-react-library/internal/runner"
	"github.com/ayushukla02/panda-react-library/internal/runner/runnertest"
	"github.com/ayushukla02/panda-react-library/internal/scaffold"
)

const baseManifest = `{
  "name": "demo",
  "private": true,
  "scripts": {
    "dev": "vite"
  }
}
`

func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeProjectFile(t, dir, "package.json", baseManifest)
	writeProjectFile(t, dir, scaffold.MainFile, "import React from 'react'\n")
	writeProjectFile(t, dir, scaffold.AppFile, "welcome\n")
	writeProjectFile(t, dir, scaffold.IndexCSSFile, "/* base */\n")
	return dir
}

func newSelection(t *testing.T, ui project.UILibrary, extras ...project.ExtraLibrary) project.Selection {
	t.Helper()
	sel, err := project.NewSelection("demo", ui, extras, false, pkgmgr.Default)
	if err != nil {
		t.Fatal(err)
	}
	return sel
}

func TestInstall_CommandOrder(t *testing.T) {
	tests := []struct {
		name   string
		ui     project.UILibrary
		extras []project.ExtraLibrary
		want   []string
	}{
		{
			name: "tailwind no extras",
			ui:   project.UITailwind,
			want: []string{
				"npm install",
				"npm install -D tailwindcss postcss autoprefixer",
			},
		},
		{
			name:   "mui with axios",
			ui:     project.UIMUI,
			extras: []project.ExtraLibrary{project.ExtraAxios},
			want: []string{
				"npm install",
				"npm install @mui/material @emotion/react @emotion/styled axios",
			},
		},
		{
			name:   "tailwind with axios",
			ui:     project.UITailwind,
			extras: []project.ExtraLibrary{project.ExtraAxios},
			want: []string{
				"npm install",
				"npm install axios",
				"npm install -D tailwindcss postcss autoprefixer",
			},
		},
		{
			name:   "none with extras",
			ui:     project.UINone,
			extras: []project.ExtraLibrary{project.ExtraReactIcons, project.ExtraFormik},
			want: []string{
				"npm install",
				"npm install formik react-icons",
			},
		},
		{
			name: "none only",
			ui:   project.UINone,
			want: []string{"npm install"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newProject(t)
			rec := &runnertest.Recorder{}
			in := &Installer{Runner: rec, Manager: pkgmgr.Lookup(pkgmgr.Default)}

			if _, err := in.Install(context.Background(), dir, newSelection(t, tt.ui, tt.extras...)); err != nil {
				t.Fatalf("Install() error: %v", err)
			}
			if got := rec.Lines(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("commands = %v, want %v", got, tt.want)
			}
			for _, c := range rec.Commands() {
				if c.Dir != dir {
					t.Errorf("%s ran in %q, want %q", c, c.Dir, dir)
				}
				if c.Quiet {
					t.Errorf("%s should stream output", c)
				}
			}
		})
	}
}

func TestInstall_PatchesManifestAndRunsSetupLast(t *testing.T) {
	dir := newProject(t)

	// The setup must see the patched manifest, so record what package.json
	// looks like when the last add command runs and compare afterwards.
	var manifestAtLastAdd string
	rec := &runnertest.Recorder{Handle: func(_ context.Context, c runner.Command) error {
		manifestAtLastAdd = readProjectFile(t, dir, "package.json")
		return nil
	}}
	in := &Installer{Runner: rec, Manager: pkgmgr.Lookup(pkgmgr.Default)}

	report, err := in.Install(context.Background(), dir, newSelection(t, project.UIBootstrap))
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if manifestAtLastAdd != baseManifest {
		t.Errorf("package.json was patched before installs finished:\n%s", manifestAtLastAdd)
	}

	pkg := readProjectFile(t, dir, "package.json")
	for _, s := range []string{`"build": "vite build"`, `"preview": "vite preview"`, `"dev": "vite"`} {
		if !strings.Contains(pkg, s) {
			t.Errorf("package.json missing %s:\n%s", s, pkg)
		}
	}
	if !strings.HasPrefix(readProjectFile(t, dir, scaffold.MainFile), BootstrapCSSImport) {
		t.Error("bootstrap setup did not run")
	}

	if !reflect.DeepEqual(report.Runtime, []string{"bootstrap"}) || len(report.Dev) != 0 {
		t.Errorf("report = %+v", report)
	}
	if report.Manifest == nil || !report.Manifest.Validation.Valid {
		t.Errorf("manifest report = %+v", report.Manifest)
	}
}

func TestInstall_FailureStops(t *testing.T) {
	dir := newProject(t)
	boom := errors.New("exit status 1")
	rec := &runnertest.Recorder{Handle: func(_ context.Context, c runner.Command) error {
		if len(c.Args) > 1 {
			return boom
		}
		return nil
	}}
	in := &Installer{Runner: rec, Manager: pkgmgr.Lookup(pkgmgr.Default)}

	_, err := in.Install(context.Background(), dir, newSelection(t, project.UIMUI, project.ExtraAxios))
	if !errors.Is(err, boom) {
		t.Fatalf("Install() error = %v, want wrapped %v", err, boom)
	}
	if len(rec.Commands()) != 2 {
		// base install, then the single runtime add that failed
		t.Errorf("expected the run to stop after the failing add, got %v", rec.Lines())
	}
	if got := readProjectFile(t, dir, "package.json"); got != baseManifest {
		t.Error("package.json should not be patched after a failed install")
	}
	if got := readProjectFile(t, dir, scaffold.AppFile); got != "welcome\n" {
		t.Error("UI setup should not run after a failed install")
	}
}

func TestInstall_ReportsSchemaWarnings(t *testing.T) {
	dir := newProject(t)
	writeProjectFile(t, dir, "package.json", `{"name":"demo","dependencies":{"react":18}}`)

	var out bytes.Buffer
	in := &Installer{Runner: &runnertest.Recorder{}, Manager: pkgmgr.Lookup(pkgmgr.Default), Out: &out}
	if _, err := in.Install(context.Background(), dir, newSelection(t, project.UINone)); err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if !strings.Contains(out.String(), "warning: package.json /dependencies/react") {
		t.Errorf("expected schema warning, got %q", out.String())
	}
}
