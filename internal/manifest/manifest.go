package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// FileName is the manifest file inside a project directory.
const FileName = "package.json"

// Parse checks that data holds a single JSON object and returns it as
// plain JSON. Comments and trailing commas are tolerated and stripped.
func Parse(data []byte) ([]byte, error) {
	plain := jsonc.ToJSON(data)
	if !gjson.ValidBytes(plain) {
		return nil, errors.New("manifest is not valid JSON")
	}
	if !gjson.ParseBytes(plain).IsObject() {
		return nil, errors.New("manifest is not a JSON object")
	}
	return plain, nil
}

// ReadFile reads and parses the manifest at path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	plain, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return plain, nil
}

// Format lays data out with two-space indentation and a trailing newline,
// the layout npm itself writes. Key order and string escapes are kept.
func Format(data []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, bytes.TrimSpace(data), "", "  "); err != nil {
		return nil, fmt.Errorf("formatting manifest: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// WriteFile formats data and writes it to path.
func WriteFile(path string, data []byte) error {
	formatted, err := Format(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// truthy follows JavaScript truthiness: null, false, "" and 0 are unset,
// every other value (objects and arrays included) is set.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	}
	return true
}
