package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "chorus.yaml"

// envPrefix namespaces environment overrides for top-level settings
// (CHORUS_PROMPT, CHORUS_OUTPUT, CHORUS_TIMEOUT_SECONDS).
const envPrefix = "CHORUS_"

// Config represents the chorus configuration.
type Config struct {
	Prompt         string                    `koanf:"prompt" yaml:"prompt"`
	Output         string                    `koanf:"output" yaml:"output"`
	TimeoutSeconds int                       `koanf:"timeout_seconds" yaml:"timeout_seconds"`
	Providers      map[string]ProviderConfig `koanf:"providers" yaml:"providers"`
}

// ProviderConfig holds the per-provider settings.
type ProviderConfig struct {
	APIKey  string `koanf:"api_key" yaml:"api_key"`
	Model   string `koanf:"model" yaml:"model"`
	BaseURL string `koanf:"base_url" yaml:"base_url,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Prompt:         "Explain quantum computing to a 10-year-old",
		Output:         "comparison_report.md",
		TimeoutSeconds: 20,
		Providers: map[string]ProviderConfig{
			"openai":      {Model: "gpt-3.5-turbo"},
			"anthropic":   {Model: "claude-3-sonnet-20240229"},
			"huggingface": {Model: "gpt2"},
		},
	}
}

// Load builds the effective config by merging: defaults <- file <- env.
// A missing file is tolerated; the run then depends on environment variables
// alone for credentials.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	fillProviderDefaults(&cfg)

	return cfg, nil
}

// fillProviderDefaults backfills per-provider fields the file left unset.
// Unmarshalling replaces a provider entry wholesale, so a file that sets only
// api_key would otherwise wipe the default model.
func fillProviderDefaults(cfg *Config) {
	def := Default()
	if cfg.Providers == nil {
		cfg.Providers = def.Providers
		return
	}
	for key, dpc := range def.Providers {
		pc, ok := cfg.Providers[key]
		if !ok {
			cfg.Providers[key] = dpc
			continue
		}
		if pc.Model == "" {
			pc.Model = dpc.Model
			cfg.Providers[key] = pc
		}
	}
}

// LoadFile loads the config file over defaults without the environment
// overlay. Used when editing the file in place; a missing file yields the
// defaults.
func LoadFile(path string) (Config, error) {
	k := koanf.New(".")

	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("accessing config %s: %w", path, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	fillProviderDefaults(&cfg)
	return cfg, nil
}

// Save writes the config to path. The file may hold API keys, so it is
// written owner-readable only.
func Save(cfg Config, path string) error {
	data, err := yamlv3.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// SetField sets a single config field by key name. Provider settings use
// dotted keys, e.g. "providers.openai.model". Returns an error if the key is
// unknown.
func SetField(cfg *Config, key, value string) error {
	if rest, ok := strings.CutPrefix(key, "providers."); ok {
		return setProviderField(cfg, rest, value)
	}
	switch key {
	case "prompt":
		cfg.Prompt = value
	case "output":
		cfg.Output = value
	case "timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeout_seconds must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func setProviderField(cfg *Config, key, value string) error {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) != 2 {
		return fmt.Errorf("unknown config key: providers.%s", key)
	}
	name, field := parts[0], parts[1]
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}
	pc := cfg.Providers[name]
	switch field {
	case "api_key":
		pc.APIKey = value
	case "model":
		pc.Model = value
	case "base_url":
		pc.BaseURL = value
	default:
		return fmt.Errorf("unknown config key: providers.%s", key)
	}
	cfg.Providers[name] = pc
	return nil
}
