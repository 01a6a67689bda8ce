package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Setenv("SAKHI_LANG", "")
	t.Setenv("SAKHI_REPLY_DELAY_MS", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Language != "en" {
		t.Fatalf("default language: got %q", cfg.Language)
	}
	if cfg.ReplyDelay() != DefaultReplyDelay {
		t.Fatalf("default delay: got %v", cfg.ReplyDelay())
	}
	if !cfg.Greeting {
		t.Fatalf("greeting should default on")
	}
}

func TestLoadConfigReadsYAML(t *testing.T) {
	t.Setenv("SAKHI_LANG", "")
	t.Setenv("SAKHI_REPLY_DELAY_MS", "")

	path := filepath.Join(t.TempDir(), "config.yml")
	data := "language: ml\nreply_delay_ms: 300\nassistant_name: Sakhi\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Language != "ml" {
		t.Fatalf("language: got %q", cfg.Language)
	}
	if cfg.ReplyDelay() != 300*time.Millisecond {
		t.Fatalf("delay: got %v", cfg.ReplyDelay())
	}
	if cfg.AssistantName != "Sakhi" {
		t.Fatalf("assistant name: got %q", cfg.AssistantName)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("language: en\nreply_delay_ms: 300\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Setenv("SAKHI_LANG", "ml")
	t.Setenv("SAKHI_REPLY_DELAY_MS", "50")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Language != "ml" {
		t.Fatalf("env should override language, got %q", cfg.Language)
	}
	if cfg.ReplyDelayMS != 50 {
		t.Fatalf("env should override delay, got %d", cfg.ReplyDelayMS)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	t.Setenv("SAKHI_LANG", "")
	t.Setenv("SAKHI_REPLY_DELAY_MS", "")

	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	in := DefaultConfig()
	in.Language = "ml"
	if err := SaveConfig(in, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Language != "ml" {
		t.Fatalf("round trip language: got %q", out.Language)
	}
}
