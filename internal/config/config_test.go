package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	markuperrors "github.com/vango-dev/markup/internal/errors"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func errorCode(err error) string {
	var me *markuperrors.MarkupError
	if errors.As(err, &me) {
		return me.Code
	}
	return ""
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if cfg.Build.Output != DefaultOutput || cfg.Build.Target != TargetDisk {
		t.Errorf("Build = %+v", cfg.Build)
	}
	if cfg.CacheCapacity() != DefaultCacheCapacity {
		t.Errorf("CacheCapacity() = %d, want %d", cfg.CacheCapacity(), DefaultCacheCapacity)
	}
	if !cfg.Dev.HotReload || !cfg.Metrics.Enabled {
		t.Error("hot reload and metrics should default to on")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if code := errorCode(err); code != "E141" {
		t.Errorf("Load() on empty dir error = %v, want E141", err)
	}

	writeConfig(t, tmpDir, `{
  "name": "docs",
  "paths": {"pages": "content"},
  "server": {"host": "0.0.0.0", "port": 8080},
  "dev": {"hotReload": false, "interval": "1s"},
  "build": {"output": "build", "target": "s3"},
  "render": {"cacheCapacity": 0},
  "metrics": {"enabled": false},
  "s3": {"bucket": "site", "prefix": "v1/", "region": "eu-west-1"}
}
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Name != "docs" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	if cfg.URL() != "http://0.0.0.0:8080" {
		t.Errorf("URL() = %q", cfg.URL())
	}
	if cfg.Dev.HotReload || cfg.Metrics.Enabled {
		t.Error("explicit false should override the defaults")
	}
	if cfg.CacheCapacity() != 0 {
		t.Errorf("CacheCapacity() = %d, want 0 (unbounded)", cfg.CacheCapacity())
	}
	if d, err := cfg.PollInterval(); err != nil || d != time.Second {
		t.Errorf("PollInterval() = %v, %v", d, err)
	}
	if cfg.PagesPath() != filepath.Join(tmpDir, "content") {
		t.Errorf("PagesPath() = %q", cfg.PagesPath())
	}
	if cfg.OutputPath() != filepath.Join(tmpDir, "build") {
		t.Errorf("OutputPath() = %q", cfg.OutputPath())
	}
	if cfg.StaticPath() != filepath.Join(tmpDir, "public") {
		t.Errorf("StaticPath() = %q", cfg.StaticPath())
	}
	if cfg.S3.Bucket != "site" || cfg.S3.Prefix != "v1/" {
		t.Errorf("S3 = %+v", cfg.S3)
	}
	if cfg.Metrics.Namespace != "markup" {
		t.Errorf("Metrics.Namespace = %q, want default", cfg.Metrics.Namespace)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadEmptyObjectGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{}`)
	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Paths.Pages != DefaultPages || cfg.Server.Port != DefaultPort {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	want := []string{filepath.Join(dir, "pages"), filepath.Join(dir, "public")}
	got := cfg.WatchPaths()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("WatchPaths() = %v, want %v", got, want)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"server": `)
	_, err := Load(dir)
	if code := errorCode(err); code != "E120" {
		t.Errorf("Load() error = %v, want E120", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		code   string
	}{
		{"negative port", func(c *Config) { c.Server.Port = -1 }, "E122"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "E122"},
		{"bad interval", func(c *Config) { c.Dev.Interval = "soon" }, "E120"},
		{"zero interval", func(c *Config) { c.Dev.Interval = "0s" }, "E120"},
		{"negative cache", func(c *Config) { c.Render.CacheCapacity = -1 }, "E120"},
		{"unknown target", func(c *Config) { c.Build.Target = "ftp" }, "E120"},
		{"s3 without bucket", func(c *Config) { c.Build.Target = TargetS3 }, "E121"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			if code := errorCode(cfg.Validate()); code != tt.code {
				t.Errorf("Validate() code = %q, want %q", code, tt.code)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.Name = "saved"
	if err := cfg.Save(); err == nil {
		t.Error("Save() without a path should fail")
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	if cfg.Path() != path || cfg.Dir() != dir {
		t.Errorf("Path() = %q Dir() = %q", cfg.Path(), cfg.Dir())
	}
	loaded, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != "saved" || loaded.CacheCapacity() != DefaultCacheCapacity {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{}`)
	nested := filepath.Join(root, "pages", "blog")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Errorf("FindProjectRoot() = %q, want %q", got, root)
	}
	if !Exists(root) || Exists(nested) {
		t.Error("Exists() disagrees with the files on disk")
	}
}
