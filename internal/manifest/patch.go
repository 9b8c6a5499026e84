package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/ayushukla02/panda-react-library/internal/logger"
)

// DefaultScripts are the script entries every generated project gets,
// in the order they are added when missing.
var DefaultScripts = []struct{ Name, Command string }{
	{"dev", "vite"},
	{"build", "vite build"},
	{"preview", "vite preview"},
}

// PatchResult describes what Patch changed and how the result validated.
type PatchResult struct {
	Path string
	// Applied lists the fields that were defaulted, e.g. "name", "scripts.dev".
	Applied    []string
	Validation *ValidationResult
}

// Patch defaults the name and the dev/build/preview scripts in
// dir/package.json, writes the file back and validates it. Values that are
// already set are left alone.
func Patch(dir string) (*PatchResult, error) {
	path := filepath.Join(dir, FileName)
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	patched, applied, err := ApplyDefaults(data, filepath.Base(dir))
	if err != nil {
		return nil, fmt.Errorf("patching %s: %w", path, err)
	}
	if err := WriteFile(path, patched); err != nil {
		return nil, err
	}
	logger.Info("patched manifest", "path", path, "applied", applied)

	vr, err := Validate(patched)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return &PatchResult{Path: path, Applied: applied, Validation: vr}, nil
}

// ApplyDefaults sets name to fallbackName when it is missing or falsy and
// fills in any missing or falsy default script. Fields keep their position;
// new ones are appended. It returns the patched JSON and the fields it set.
func ApplyDefaults(data []byte, fallbackName string) ([]byte, []string, error) {
	var applied []string
	var err error

	if !truthy(gjson.GetBytes(data, "name")) {
		if data, err = sjson.SetBytes(data, "name", fallbackName); err != nil {
			return nil, nil, err
		}
		applied = append(applied, "name")
	}

	scripts := gjson.GetBytes(data, "scripts")
	switch {
	case scripts.Exists() && !truthy(scripts):
		if data, err = sjson.SetRawBytes(data, "scripts", []byte("{}")); err != nil {
			return nil, nil, err
		}
	case truthy(scripts) && !scripts.IsObject():
		return nil, nil, fmt.Errorf("scripts must be an object, got %s", scripts.Type)
	}

	for _, s := range DefaultScripts {
		if truthy(gjson.GetBytes(data, "scripts."+s.Name)) {
			continue
		}
		if data, err = sjson.SetBytes(data, "scripts."+s.Name, s.Command); err != nil {
			return nil, nil, err
		}
		applied = append(applied, "scripts."+s.Name)
	}
	return data, applied, nil
}
