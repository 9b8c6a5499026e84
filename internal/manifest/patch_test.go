package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func compact(t *testing.T, data []byte) string {
	t.Helper()
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		t.Fatalf("compacting %s: %v", data, err)
	}
	return buf.String()
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		wantApplied []string
	}{
		{
			name:        "empty object",
			input:       `{}`,
			want:        `{"name":"demo","scripts":{"dev":"vite","build":"vite build","preview":"vite preview"}}`,
			wantApplied: []string{"name", "scripts.dev", "scripts.build", "scripts.preview"},
		},
		{
			name:        "existing values kept",
			input:       `{"name":"keep","scripts":{"dev":"vite --host","build":"tsc && vite build","preview":"vite preview","lint":"eslint ."}}`,
			want:        `{"name":"keep","scripts":{"dev":"vite --host","build":"tsc && vite build","preview":"vite preview","lint":"eslint ."}}`,
			wantApplied: nil,
		},
		{
			name:        "falsy name replaced in place",
			input:       `{"private":true,"name":"","scripts":{"dev":"vite"}}`,
			want:        `{"private":true,"name":"demo","scripts":{"dev":"vite","build":"vite build","preview":"vite preview"}}`,
			wantApplied: []string{"name", "scripts.build", "scripts.preview"},
		},
		{
			name:        "null scripts replaced",
			input:       `{"name":"x","scripts":null,"type":"module"}`,
			want:        `{"name":"x","scripts":{"dev":"vite","build":"vite build","preview":"vite preview"},"type":"module"}`,
			wantApplied: []string{"scripts.dev", "scripts.build", "scripts.preview"},
		},
		{
			name:        "objects and arrays count as set",
			input:       `{"name":{"x":1},"scripts":{"dev":["vite"],"build":"b","preview":"p"}}`,
			want:        `{"name":{"x":1},"scripts":{"dev":["vite"],"build":"b","preview":"p"}}`,
			wantApplied: nil,
		},
		{
			name:        "zero and false count as unset",
			input:       `{"name":0,"scripts":{"dev":false,"build":"b","preview":null}}`,
			want:        `{"name":"demo","scripts":{"dev":"vite","build":"b","preview":"vite preview"}}`,
			wantApplied: []string{"name", "scripts.dev", "scripts.preview"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applied, err := ApplyDefaults([]byte(tt.input), "demo")
			if err != nil {
				t.Fatalf("ApplyDefaults() error: %v", err)
			}
			if !reflect.DeepEqual(applied, tt.wantApplied) {
				t.Errorf("applied = %v, want %v", applied, tt.wantApplied)
			}
			if s := compact(t, got); s != tt.want {
				t.Errorf("result =\n%s\nwant\n%s", s, tt.want)
			}
		})
	}
}

func TestApplyDefaults_ScriptsNotObject(t *testing.T) {
	for _, input := range []string{`{"scripts":"vite"}`, `{"scripts":["vite"]}`} {
		if _, _, err := ApplyDefaults([]byte(input), "demo"); err == nil {
			t.Errorf("ApplyDefaults(%s) expected error", input)
		}
	}
}

func TestPatch(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo1")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := writeManifest(t, dir, `{
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "lint": "eslint ."
  },
  "dependencies": {
    "react": "^18.3.1"
  }
}`)

	result, err := Patch(dir)
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}
	if result.Path != path {
		t.Errorf("Path = %q, want %q", result.Path, path)
	}
	if !result.Validation.Valid {
		t.Errorf("patched manifest invalid: %+v", result.Validation.Issues)
	}

	want := `{
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "lint": "eslint .",
    "build": "vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^18.3.1"
  },
  "name": "demo1"
}
`
	if got := readString(t, path); got != want {
		t.Errorf("package.json =\n%s\nwant\n%s", got, want)
	}

	// A second run changes nothing.
	again, err := Patch(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Applied) != 0 {
		t.Errorf("second Patch applied %v", again.Applied)
	}
	if got := readString(t, path); got != want {
		t.Errorf("second Patch rewrote the file:\n%s", got)
	}
}

func TestPatch_MissingFile(t *testing.T) {
	if _, err := Patch(t.TempDir()); err == nil {
		t.Error("expected error when package.json is missing")
	}
}

func TestPatch_ReportsSchemaIssues(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"name":"x","dependencies":{"react":18}}`)

	result, err := Patch(dir)
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}
	if result.Validation.Valid {
		t.Error("expected schema issue for numeric dependency version")
	}
}
