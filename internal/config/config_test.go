package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	cfg := &Config{
		MessageDB: "/data/MSG.db",
		ContactDB: "/data/MicroMsg.db",
		OutputDir: "/exports",
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.MessageDB != cfg.MessageDB || loaded.ContactDB != cfg.ContactDB || loaded.OutputDir != cfg.OutputDir {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestSavePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := Save(path, &Config{MessageDB: "/data/MSG.db"}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}

func TestResolveSource(t *testing.T) {
	tests := []struct {
		desc       string
		flag, conf string
		want       string
	}{
		{"flag wins", "/flag/MSG.db", "/conf/MSG.db", "/flag/MSG.db"},
		{"config when no flag", "", "/conf/MSG.db", "/conf/MSG.db"},
		{"empty when neither", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := ResolveSource(tt.flag, tt.conf); got != tt.want {
				t.Errorf("ResolveSource(%q, %q) = %q, want %q", tt.flag, tt.conf, got, tt.want)
			}
		})
	}
}
