package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), ".panda-react")
	t.Setenv("PANDA_REACT_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestDir_EnvOverride(t *testing.T) {
	dir := setup(t)
	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setup(t)
	Load()

	tests := map[string]string{
		KeyLogLevel:       "info",
		KeyCreatePackage:  "vite@latest",
		KeyNodeConstraint: ">=18.0.0",
	}
	for key, want := range tests {
		if got := Get(key); got != want {
			t.Errorf("Get(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestLoad_EnvWins(t *testing.T) {
	setup(t)
	t.Setenv("PANDA_REACT_LOG_LEVEL", "debug")
	Load()
	if got := Get(KeyLogLevel); got != "debug" {
		t.Errorf("Get(log_level) = %q, want debug", got)
	}
}

func TestSet_PersistsAndReloads(t *testing.T) {
	dir := setup(t)
	Load()

	if err := Set(KeyCreatePackage, "vite@5"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "create_package: vite@5") {
		t.Errorf("config file = %q", data)
	}

	viper.Reset()
	Load()
	if got := Get(KeyCreatePackage); got != "vite@5" {
		t.Errorf("after reload Get(create_package) = %q, want vite@5", got)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	dir := setup(t)
	if err := Set("mirror_url", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("unknown key should not create the config directory")
	}
}

func TestKeys(t *testing.T) {
	want := "create_package,log_level,node_constraint"
	if got := strings.Join(Keys(), ","); got != want {
		t.Errorf("Keys() = %q, want %q", got, want)
	}
	for _, k := range Keys() {
		if Default(k) == "" {
			t.Errorf("Default(%q) is empty", k)
		}
	}
}
