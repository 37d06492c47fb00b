package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	t.Setenv("OMNIFETCH_DEBUG", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ReleaseFile != "/etc/release" || cfg.Debug {
		t.Fatalf("Load missing = %+v; want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("OMNIFETCH_DEBUG", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "release_file: /tmp/release\ndebug: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ReleaseFile != "/tmp/release" || !cfg.Debug {
		t.Fatalf("Load = %+v", cfg)
	}
}

func TestLoadEmptyReleaseFile(t *testing.T) {
	t.Setenv("OMNIFETCH_DEBUG", "1")
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("release_file: \"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ReleaseFile != "/etc/release" {
		t.Fatalf("ReleaseFile = %q; want default", cfg.ReleaseFile)
	}
	if !cfg.Debug {
		t.Fatalf("OMNIFETCH_DEBUG did not enable debug")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("debug: [not, a, bool\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load of malformed config succeeded")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("OMNIFETCH_CONFIG", "/opt/omnifetch.yaml")
	if got := DefaultPath(); got != "/opt/omnifetch.yaml" {
		t.Fatalf("DefaultPath = %q", got)
	}

	t.Setenv("OMNIFETCH_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultPath(); got != filepath.Join("/xdg", "omnifetch", "config.yaml") {
		t.Fatalf("DefaultPath = %q", got)
	}
}
