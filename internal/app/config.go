package app

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Language      string `yaml:"language"`
	ReplyDelayMS  int    `yaml:"reply_delay_ms"`
	AssistantName string `yaml:"assistant_name"`
	Greeting      bool   `yaml:"greeting"`
}

func DefaultConfig() Config {
	return Config{
		Language:      "en",
		ReplyDelayMS:  int(DefaultReplyDelay / time.Millisecond),
		AssistantName: "Krishi Sakhi AI",
		Greeting:      true,
	}
}

// LoadConfig reads the YAML config at path, layering defaults under it
// and environment overrides (SAKHI_LANG, SAKHI_REPLY_DELAY_MS) on top.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return cfg, err
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.applyEnvOverrides()

	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.ReplyDelayMS <= 0 {
		cfg.ReplyDelayMS = int(DefaultReplyDelay / time.Millisecond)
	}
	if cfg.AssistantName == "" {
		cfg.AssistantName = "Krishi Sakhi AI"
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("SAKHI_LANG")); v != "" {
		c.Language = v
	}
	if v := strings.TrimSpace(os.Getenv("SAKHI_REPLY_DELAY_MS")); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.ReplyDelayMS = ms
		}
	}
}

func SaveConfig(cfg Config, path string) error {
	if path == "" {
		return errors.New("no path provided for config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "sakhi", "config.yml")
}

// ReplyDelay converts the configured delay to a duration.
func (c Config) ReplyDelay() time.Duration {
	return time.Duration(c.ReplyDelayMS) * time.Millisecond
}
