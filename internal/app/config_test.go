package app

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfigTOML = `
[Remote]
Host = "nas.local"
Port = 5001
UseHTTPS = true
Account = "tester"
Password = "hunter2"

[Cache]
UseInMemoryCache = true
InMemoryCacheSize = "64 MB"

[[Galleries]]
Name = "travel"
Query = """
tag: Travel
columns: 4
size: m
"""
`

func writeTestConfig(t *testing.T, contents string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("SYNO_GALLERY_CONFIG", path)
}

func TestLoadConfig(t *testing.T) {
	writeTestConfig(t, testConfigTOML)

	conf, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Remote.Host != "nas.local" {
		t.Fatalf(`expected host "nas.local", got %q`, conf.Remote.Host)
	}
	if conf.Remote.Port != 5001 || !conf.Remote.UseHTTPS {
		t.Fatalf("unexpected remote config: %+v", conf.Remote)
	}
	if got := uint64(conf.Cache.InMemoryCacheSize); got != 64_000_000 {
		t.Fatalf("expected a 64 MB cache, got %d bytes", got)
	}
	if conf.App.ListenAddr != ":8080" {
		t.Fatalf(`expected the default listen address, got %q`, conf.App.ListenAddr)
	}
	if len(conf.Galleries) != 1 {
		t.Fatalf("expected 1 gallery, got %d", len(conf.Galleries))
	}
	if conf.Galleries[0].Name != "travel" {
		t.Fatalf(`expected gallery "travel", got %q`, conf.Galleries[0].Name)
	}
}

func TestLoadConfigEnvPrecedence(t *testing.T) {
	writeTestConfig(t, testConfigTOML)
	t.Setenv("SYNO_HOST", "other.local")
	t.Setenv("SYNO_PASSWORD", "from-env")

	conf, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Remote.Host != "other.local" {
		t.Fatalf("environment variables should take precedence, got host %q", conf.Remote.Host)
	}
	if conf.Remote.Password != "from-env" {
		t.Fatalf("environment variables should take precedence, got password %q", conf.Remote.Password)
	}
	// File values without an environment override are kept.
	if conf.Remote.Account != "tester" {
		t.Fatalf(`expected account "tester", got %q`, conf.Remote.Account)
	}
}

func TestInitAppRejectsBadGalleries(t *testing.T) {
	conf := Config{}
	if _, err := InitApp(conf); err == nil {
		t.Fatal("expected an error when no galleries are configured")
	}

	conf.Galleries = []GalleryConfig{{Name: "broken", Query: "columns: 3"}}
	if _, err := InitApp(conf); err == nil {
		t.Fatal("expected an error for a query without a tag or person")
	}

	conf.Galleries = []GalleryConfig{
		{Name: "a", Query: "tag: x"},
		{Name: "a", Query: "tag: y"},
	}
	if _, err := InitApp(conf); err == nil {
		t.Fatal("expected an error for duplicate gallery names")
	}
}
