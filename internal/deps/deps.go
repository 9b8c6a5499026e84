package deps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayushukla02/panda-react-library/internal/project"
	"github.com/ayushukla02/panda-react-library/internal/scaffold"
)

// BootstrapCSSImport is prepended to the entry point when Bootstrap is chosen.
const BootstrapCSSImport = `import "bootstrap/dist/css/bootstrap.min.css";`

const bootstrapMarker = "bootstrap/dist/css/bootstrap.min.css"

// SetupFunc writes the configuration a UI library needs into projectDir.
type SetupFunc func(projectDir string) error

// UISpec is what one UI library contributes to a project.
type UISpec struct {
	Runtime []string
	Dev     []string
	// Setup runs after every install and the manifest patch. Nil means no setup.
	Setup SetupFunc
}

var uiSpecs = map[project.UILibrary]UISpec{
	project.UITailwind: {
		Dev:   []string{"tailwindcss", "postcss", "autoprefixer"},
		Setup: setupTailwind,
	},
	project.UIBootstrap: {
		Runtime: []string{"bootstrap"},
		Setup:   setupBootstrap,
	},
	project.UIMUI: {
		Runtime: []string{"@mui/material", "@emotion/react", "@emotion/styled"},
		Setup:   setupMUI,
	},
	project.UINone: {},
}

// ForUI returns the packages and setup for ui. Unknown values behave like none.
func ForUI(ui project.UILibrary) UISpec {
	return uiSpecs[ui]
}

// extraOrder fixes the install order of extra packages regardless of how
// they were selected.
var extraOrder = []project.ExtraLibrary{
	project.ExtraAxios,
	project.ExtraFormik,
	project.ExtraReactIcons,
	project.ExtraReactFont,
}

// ForExtras returns the runtime packages for the selected extras.
func ForExtras(extras []project.ExtraLibrary) []string {
	selected := make(map[project.ExtraLibrary]bool, len(extras))
	for _, e := range extras {
		selected[e] = true
	}
	pkgs := []string{}
	for _, e := range extraOrder {
		if selected[e] {
			pkgs = append(pkgs, string(e))
		}
	}
	return pkgs
}

// EnsureImport prepends line to code unless marker already appears in it.
func EnsureImport(code, line, marker string) string {
	if strings.Contains(code, marker) {
		return code
	}
	return line + "\n" + code
}

func setupTailwind(projectDir string) error {
	files := []struct{ rel, name string }{
		{"tailwind.config.js", scaffold.TemplateTailwindCfg},
		{"postcss.config.js", scaffold.TemplatePostCSSCfg},
		{scaffold.IndexCSSFile, scaffold.TemplateTailwindCSS},
	}
	for _, f := range files {
		if err := scaffold.WriteTemplate(projectDir, f.rel, f.name, nil); err != nil {
			return fmt.Errorf("tailwind setup: %w", err)
		}
	}
	return nil
}

func setupBootstrap(projectDir string) error {
	path := filepath.Join(projectDir, filepath.FromSlash(scaffold.MainFile))
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("bootstrap setup: %w", err)
	}
	code := string(data)
	patched := EnsureImport(code, BootstrapCSSImport, bootstrapMarker)
	if patched == code {
		return nil
	}
	if err := os.WriteFile(path, []byte(patched), 0o644); err != nil {
		return fmt.Errorf("bootstrap setup: %w", err)
	}
	return nil
}

func setupMUI(projectDir string) error {
	if err := scaffold.WriteTemplate(projectDir, scaffold.AppFile, scaffold.TemplateMUIApp, nil); err != nil {
		return fmt.Errorf("mui setup: %w", err)
	}
	return nil
}
