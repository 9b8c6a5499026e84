package project

import (
	"fmt"
	"regexp"
)

// UILibrary is the single UI toolkit wired into the generated app.
type UILibrary string

const (
	UITailwind  UILibrary = "tailwind"
	UIBootstrap UILibrary = "bootstrap"
	UIMUI       UILibrary = "mui"
	UINone      UILibrary = "none"
)

// UILibraries lists the UI choices in prompt order.
var UILibraries = []UILibrary{UITailwind, UIBootstrap, UIMUI, UINone}

// Label returns the name shown in prompts.
func (u UILibrary) Label() string {
	switch u {
	case UITailwind:
		return "TailwindCSS"
	case UIBootstrap:
		return "Bootstrap"
	case UIMUI:
		return "MUI (Material UI)"
	case UINone:
		return "None"
	default:
		return string(u)
	}
}

// IsValid reports whether u is one of the known UI libraries.
func (u UILibrary) IsValid() bool {
	for _, known := range UILibraries {
		if u == known {
			return true
		}
	}
	return false
}

// ExtraLibrary is an optional helper library added on top of the UI choice.
type ExtraLibrary string

const (
	ExtraNone       ExtraLibrary = "none"
	ExtraAxios      ExtraLibrary = "axios"
	ExtraReactIcons ExtraLibrary = "react-icons"
	ExtraReactFont  ExtraLibrary = "react-font"
	ExtraFormik     ExtraLibrary = "formik"
)

// ExtraLibraries lists the extra choices in prompt order.
var ExtraLibraries = []ExtraLibrary{ExtraNone, ExtraAxios, ExtraReactIcons, ExtraReactFont, ExtraFormik}

// Label returns the name shown in prompts.
func (e ExtraLibrary) Label() string {
	switch e {
	case ExtraNone:
		return "None"
	case ExtraAxios:
		return "Axios"
	case ExtraReactIcons:
		return "React Icons"
	case ExtraReactFont:
		return "React Font"
	case ExtraFormik:
		return "Formik"
	default:
		return string(e)
	}
}

// IsValid reports whether e is one of the known extra libraries.
func (e ExtraLibrary) IsValid() bool {
	for _, known := range ExtraLibraries {
		if e == known {
			return true
		}
	}
	return false
}

// NormalizeExtras drops "none" and duplicates. When "none" is the only
// choice the result is empty, and when it is mixed with real libraries only
// the real libraries survive, in their original order.
func NormalizeExtras(extras []ExtraLibrary) []ExtraLibrary {
	out := make([]ExtraLibrary, 0, len(extras))
	seen := make(map[ExtraLibrary]bool, len(extras))
	for _, e := range extras {
		if e == ExtraNone || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateName checks a project name against [A-Za-z0-9_-]+.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: use only letters, numbers, hyphen, underscore", name)
	}
	return nil
}

// Selection is the full set of choices that drives one scaffolding run.
// It is built once by NewSelection and treated as read-only afterwards.
type Selection struct {
	Name           string
	UI             UILibrary
	Extras         []ExtraLibrary
	InitGit        bool
	PackageManager string
}

// NewSelection validates the raw choices and returns a normalized Selection.
func NewSelection(name string, ui UILibrary, extras []ExtraLibrary, initGit bool, packageManager string) (Selection, error) {
	if err := ValidateName(name); err != nil {
		return Selection{}, err
	}
	if !ui.IsValid() {
		return Selection{}, fmt.Errorf("invalid UI library %q", ui)
	}
	for _, e := range extras {
		if !e.IsValid() {
			return Selection{}, fmt.Errorf("invalid extra library %q", e)
		}
	}
	return Selection{
		Name:           name,
		UI:             ui,
		Extras:         NormalizeExtras(extras),
		InitGit:        initGit,
		PackageManager: packageManager,
	}, nil
}

// Has reports whether the extra library was selected.
func (s Selection) Has(extra ExtraLibrary) bool {
	for _, e := range s.Extras {
		if e == extra {
			return true
		}
	}
	return false
}
