package cli

import (
	"path/filepath"
	"testing"
)

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadConfigWithPath("watson", path)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestLoadConfigWithPath_NewConfig(t *testing.T) {
	cfg := newTestConfig(t)
	if cfg.AppName != "watson" {
		t.Fatalf("expected app name watson, got %q", cfg.AppName)
	}
	if len(cfg.Contexts) != 0 {
		t.Fatalf("expected empty contexts, got %d", len(cfg.Contexts))
	}
}

func TestConfig_AddContext(t *testing.T) {
	cfg := newTestConfig(t)
	err := cfg.AddContext("dev", &Context{
		APIKey: "key-123",
		TTSURL: "https://api.us-south.text-to-speech.watson.cloud.ibm.com",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Reload from disk and confirm persistence.
	reloaded, err := LoadConfigWithPath("watson", cfg.Path())
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := reloaded.GetContext("dev")
	if err != nil {
		t.Fatal(err)
	}
	if ctx.APIKey != "key-123" || ctx.Name != "dev" {
		t.Fatalf("unexpected context %+v", ctx)
	}
}

func TestConfig_AddContext_EmptyName(t *testing.T) {
	cfg := newTestConfig(t)
	if err := cfg.AddContext("", &Context{}); err == nil {
		t.Fatal("expected error for empty context name")
	}
}

func TestConfig_UseContext(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.AddContext("dev", &Context{APIKey: "k"})
	if err := cfg.UseContext("dev"); err != nil {
		t.Fatal(err)
	}
	ctx, err := cfg.GetCurrentContext()
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Name != "dev" {
		t.Fatalf("expected current=dev, got %q", ctx.Name)
	}
}

func TestConfig_UseContext_NotFound(t *testing.T) {
	cfg := newTestConfig(t)
	if err := cfg.UseContext("missing"); err == nil {
		t.Fatal("expected error for unknown context")
	}
}

func TestConfig_DeleteContext(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.AddContext("dev", &Context{APIKey: "k"})
	cfg.UseContext("dev")
	if err := cfg.DeleteContext("dev"); err != nil {
		t.Fatal(err)
	}
	if cfg.CurrentContext != "" {
		t.Fatal("deleting the current context must clear the selection")
	}
	if err := cfg.DeleteContext("dev"); err == nil {
		t.Fatal("expected error deleting twice")
	}
}

func TestConfig_ResolveContext(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.AddContext("dev", &Context{APIKey: "k1"})
	cfg.AddContext("prod", &Context{APIKey: "k2"})
	cfg.UseContext("dev")

	ctx, err := cfg.ResolveContext("")
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Name != "dev" {
		t.Fatalf("expected dev, got %q", ctx.Name)
	}
	ctx, err = cfg.ResolveContext("prod")
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Name != "prod" {
		t.Fatalf("expected prod, got %q", ctx.Name)
	}
}

func TestConfig_ResolveContext_NoCurrent(t *testing.T) {
	cfg := newTestConfig(t)
	if _, err := cfg.ResolveContext(""); err == nil {
		t.Fatal("expected error with no current context")
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := MaskAPIKey("short"); got != "*****" {
		t.Fatalf("short key: got %q", got)
	}
	got := MaskAPIKey("abcd1234efgh5678")
	if got != "abcd********5678" {
		t.Fatalf("long key: got %q", got)
	}
}
