package deps

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ayushukla02/panda-react-library/internal/project"
	"github.com/ayushukla02/panda-react-library/internal/scaffold"
)

func TestForUI(t *testing.T) {
	tests := []struct {
		ui       project.UILibrary
		runtime  []string
		dev      []string
		hasSetup bool
	}{
		{project.UITailwind, nil, []string{"tailwindcss", "postcss", "autoprefixer"}, true},
		{project.UIBootstrap, []string{"bootstrap"}, nil, true},
		{project.UIMUI, []string{"@mui/material", "@emotion/react", "@emotion/styled"}, nil, true},
		{project.UINone, nil, nil, false},
		{project.UILibrary("bulma"), nil, nil, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.ui), func(t *testing.T) {
			spec := ForUI(tt.ui)
			if !reflect.DeepEqual(spec.Runtime, tt.runtime) {
				t.Errorf("Runtime = %v, want %v", spec.Runtime, tt.runtime)
			}
			if !reflect.DeepEqual(spec.Dev, tt.dev) {
				t.Errorf("Dev = %v, want %v", spec.Dev, tt.dev)
			}
			if (spec.Setup != nil) != tt.hasSetup {
				t.Errorf("Setup present = %v, want %v", spec.Setup != nil, tt.hasSetup)
			}
		})
	}
}

func TestForExtras(t *testing.T) {
	tests := []struct {
		name   string
		extras []project.ExtraLibrary
		want   []string
	}{
		{"empty", nil, []string{}},
		{"none only", []project.ExtraLibrary{project.ExtraNone}, []string{}},
		{
			"fixed order",
			[]project.ExtraLibrary{project.ExtraReactFont, project.ExtraReactIcons, project.ExtraFormik, project.ExtraAxios},
			[]string{"axios", "formik", "react-icons", "react-font"},
		},
		{"single", []project.ExtraLibrary{project.ExtraFormik}, []string{"formik"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForExtras(tt.extras); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ForExtras() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnsureImport(t *testing.T) {
	code := "import React from 'react'\n"
	once := EnsureImport(code, BootstrapCSSImport, bootstrapMarker)
	want := BootstrapCSSImport + "\nimport React from 'react'\n"
	if once != want {
		t.Errorf("EnsureImport() = %q, want %q", once, want)
	}

	twice := EnsureImport(once, BootstrapCSSImport, bootstrapMarker)
	if twice != once {
		t.Errorf("second EnsureImport changed content:\n%s", twice)
	}

	other := "import 'bootstrap/dist/css/bootstrap.min.css'\n"
	if got := EnsureImport(other, BootstrapCSSImport, bootstrapMarker); got != other {
		t.Errorf("marker with different quoting should be respected, got %q", got)
	}
}

func TestSetupBootstrap_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, scaffold.MainFile, "import React from 'react'\n")

	for i := 0; i < 2; i++ {
		if err := setupBootstrap(dir); err != nil {
			t.Fatalf("setupBootstrap() run %d: %v", i+1, err)
		}
	}

	got := readProjectFile(t, dir, scaffold.MainFile)
	if strings.Count(got, "bootstrap.min.css") != 1 {
		t.Errorf("expected one bootstrap import, got:\n%s", got)
	}
	if !strings.HasPrefix(got, BootstrapCSSImport+"\n") {
		t.Errorf("bootstrap import is not the first line:\n%s", got)
	}
}

func TestSetupBootstrap_MissingEntry(t *testing.T) {
	if err := setupBootstrap(t.TempDir()); err == nil {
		t.Error("expected error when src/main.jsx is missing")
	}
}

func TestSetupTailwind(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, scaffold.IndexCSSFile, "/* Base styles */\n")

	if err := setupTailwind(dir); err != nil {
		t.Fatalf("setupTailwind() error: %v", err)
	}

	if got := readProjectFile(t, dir, scaffold.IndexCSSFile); got != "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n" {
		t.Errorf("index.css = %q", got)
	}
	wantPostCSS := "export default {\n  plugins: {\n    tailwindcss: {},\n    autoprefixer: {},\n  },\n};\n"
	if got := readProjectFile(t, dir, "postcss.config.js"); got != wantPostCSS {
		t.Errorf("postcss.config.js = %q", got)
	}
	if got := readProjectFile(t, dir, "tailwind.config.js"); !strings.HasPrefix(got, "/** @type {import('tailwindcss').Config} */\n") {
		t.Errorf("tailwind.config.js = %q", got)
	}
}

func TestSetupMUI(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, scaffold.AppFile, "welcome page")

	if err := setupMUI(dir); err != nil {
		t.Fatalf("setupMUI() error: %v", err)
	}
	got := readProjectFile(t, dir, scaffold.AppFile)
	if !strings.HasPrefix(got, "import { Button } from \"@mui/material\";\n\nexport default function App() {") {
		t.Errorf("App.jsx = %q", got)
	}
	if !strings.Contains(got, `<Button variant="contained">MUI Button</Button>`) {
		t.Errorf("App.jsx missing demo button:\n%s", got)
	}
}

func writeProjectFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readProjectFile(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}
