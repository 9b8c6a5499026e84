package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/ayushukla02/panda-react-library/internal/logger"
	"github.com/ayushukla02/panda-react-library/internal/project"
)

//go:embed templates
var templateFS embed.FS

// Embedded template names, relative to the templates directory.
const (
	TemplateApp         = "app/App.jsx"
	TemplateAppFont     = "app/App.font.jsx"
	TemplateMain        = "app/main.jsx.tmpl"
	TemplateIndexCSS    = "app/index.css"
	TemplateHome        = "app/Home.jsx"
	TemplateAxios       = "extras/axios.js"
	TemplateSimpleForm  = "extras/useSimpleForm.js"
	TemplateTailwindCfg = "ui/tailwind.config.js"
	TemplatePostCSSCfg  = "ui/postcss.config.js"
	TemplateTailwindCSS = "ui/index.tailwind.css"
	TemplateMUIApp      = "ui/App.mui.jsx"
)

// Project-relative paths of the files the writer manages.
const (
	AppFile      = "src/App.jsx"
	MainFile     = "src/main.jsx"
	IndexCSSFile = "src/index.css"
	HomeFile     = "src/components/pages/Home.jsx"
	AxiosFile    = "src/utils/axios.js"
	FormHookFile = "src/components/hooks/useSimpleForm.js"
)

// Directories created under every project.
var Dirs = []string{
	"src/components/pages",
	"src/components/hooks",
	"src/utils",
	"src/assets",
}

// Removed generator assets. Missing files are fine.
var staleAssets = []string{
	"src/assets/react.svg",
	"public/vite.svg",
}

const (
	wrapperLine = `    <div className="app-wrap">`
	iconSnippet = "\n      <p>Example Icon: <FaBeer /></p>"
	iconImport  = "import { FaBeer } from 'react-icons/fa';"
	fontImport  = "import { GoogleFont } from 'react-font';"
)

// MainData is the data passed to the entry-point template.
type MainData struct {
	Imports []string
}

// Result holds the outcome of Apply.
type Result struct {
	OutputDir string
	Files     []string
	// Imports are the extra entry-point import lines added for the selection.
	Imports  []string
	Warnings []string
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

// Render returns the content of the named template. Names ending in .tmpl
// are executed with [[ ]] delimiters since JSX already uses {{ }}; all
// other templates are returned verbatim.
func Render(name string, data any) ([]byte, error) {
	raw, err := fs.ReadFile(templateFS, path.Join("templates", name))
	if err != nil {
		return nil, fmt.Errorf("template %q not found: %w", name, err)
	}
	if !strings.HasSuffix(name, ".tmpl") {
		return raw, nil
	}

	tmpl, err := template.New(name).Delims("[[", "]]").Funcs(funcs).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// WriteTemplate renders the named template into projectDir/rel, creating
// parent directories as needed.
func WriteTemplate(projectDir, rel, name string, data any) error {
	content, err := Render(name, data)
	if err != nil {
		return err
	}
	return writeFile(projectDir, rel, content)
}

// InjectIcon adds the react-icons usage line right after the wrapper div
// opening line. Content without the wrapper line is returned unchanged.
func InjectIcon(app string) string {
	return strings.Replace(app, wrapperLine, wrapperLine+iconSnippet, 1)
}

// AppComponent returns the root component source for sel and the import
// lines the entry point needs. react-font replaces the component outright,
// so the icon snippet is dropped when both are selected while its import
// is kept.
func AppComponent(sel project.Selection) (string, []string, error) {
	content, err := Render(TemplateApp, nil)
	if err != nil {
		return "", nil, err
	}
	app := string(content)
	imports := []string{}

	if sel.Has(project.ExtraReactIcons) {
		imports = append(imports, iconImport)
		app = InjectIcon(app)
	}

	if sel.Has(project.ExtraReactFont) {
		imports = append(imports, fontImport)
		font, err := Render(TemplateAppFont, nil)
		if err != nil {
			return "", nil, err
		}
		app = string(font)
	}
	return app, imports, nil
}

// Apply rewrites the generated project in projectDir for sel. Every file is
// overwritten whole, so running it twice yields the same tree.
func Apply(projectDir string, sel project.Selection) (*Result, error) {
	result := &Result{OutputDir: projectDir}

	for _, rel := range staleAssets {
		err := os.Remove(filepath.Join(projectDir, filepath.FromSlash(rel)))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("could not remove %s: %v", rel, err))
		}
	}

	app, imports, err := AppComponent(sel)
	if err != nil {
		return nil, err
	}
	result.Imports = imports

	entry, err := Render(TemplateMain, MainData{Imports: imports})
	if err != nil {
		return nil, err
	}

	writes := []struct {
		rel     string
		content []byte
	}{
		{AppFile, []byte(app)},
		{MainFile, entry},
	}
	for _, w := range writes {
		if err := writeFile(projectDir, w.rel, w.content); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, w.rel)
	}

	if err := WriteTemplate(projectDir, IndexCSSFile, TemplateIndexCSS, nil); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, IndexCSSFile)

	for _, d := range Dirs {
		if err := os.MkdirAll(filepath.Join(projectDir, filepath.FromSlash(d)), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", d, err)
		}
	}

	optional := []struct {
		rel, name string
		when      bool
	}{
		{HomeFile, TemplateHome, true},
		{AxiosFile, TemplateAxios, sel.Has(project.ExtraAxios)},
		{FormHookFile, TemplateSimpleForm, sel.Has(project.ExtraFormik)},
	}
	for _, o := range optional {
		if !o.when {
			continue
		}
		if err := WriteTemplate(projectDir, o.rel, o.name, nil); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, o.rel)
	}

	logger.Info("applied templates", "dir", projectDir, "files", len(result.Files), "imports", len(imports))
	return result, nil
}

func writeFile(projectDir, rel string, content []byte) error {
	p := filepath.Join(projectDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(p, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}
