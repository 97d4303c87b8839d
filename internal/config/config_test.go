package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Prompt != "Explain quantum computing to a 10-year-old" {
		t.Errorf("Prompt = %q, want default", cfg.Prompt)
	}
	if cfg.Output != "comparison_report.md" {
		t.Errorf("Output = %q, want default", cfg.Output)
	}
	if cfg.TimeoutSeconds != 20 {
		t.Errorf("TimeoutSeconds = %d, want 20", cfg.TimeoutSeconds)
	}
	if cfg.Providers["huggingface"].Model != "gpt2" {
		t.Errorf("huggingface model = %q, want gpt2", cfg.Providers["huggingface"].Model)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chorus.yaml")
	content := `
prompt: "Describe a black hole"
output: out.md
providers:
  openai:
    api_key: file-key
    model: gpt-4o-mini
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Prompt != "Describe a black hole" {
		t.Errorf("Prompt = %q, want file value", cfg.Prompt)
	}
	if cfg.Output != "out.md" {
		t.Errorf("Output = %q, want out.md", cfg.Output)
	}
	if cfg.Providers["openai"].APIKey != "file-key" {
		t.Errorf("openai api_key = %q, want file-key", cfg.Providers["openai"].APIKey)
	}
	if cfg.Providers["openai"].Model != "gpt-4o-mini" {
		t.Errorf("openai model = %q, want gpt-4o-mini", cfg.Providers["openai"].Model)
	}
	if cfg.TimeoutSeconds != 20 {
		t.Errorf("TimeoutSeconds = %d, want default to survive partial file", cfg.TimeoutSeconds)
	}
}

func TestLoad_PartialProviderEntryKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chorus.yaml")
	content := `
providers:
  huggingface:
    api_key: hf-file-key
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	hf := cfg.Providers["huggingface"]
	if hf.APIKey != "hf-file-key" {
		t.Errorf("huggingface api_key = %q, want file value", hf.APIKey)
	}
	if hf.Model != "gpt2" {
		t.Errorf("huggingface model = %q, want default to survive a partial entry", hf.Model)
	}
	if cfg.Providers["openai"].Model != "gpt-3.5-turbo" {
		t.Errorf("openai model = %q, want default for untouched provider", cfg.Providers["openai"].Model)
	}
}

func TestLoadFile_PartialProviderEntryKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chorus.yaml")
	if err := os.WriteFile(path, []byte("providers:\n  openai:\n    api_key: sk-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Providers["openai"].Model != "gpt-3.5-turbo" {
		t.Errorf("openai model = %q, want default to survive a partial entry", cfg.Providers["openai"].Model)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chorus.yaml")
	if err := os.WriteFile(path, []byte("output: from-file.md\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHORUS_OUTPUT", "from-env.md")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Output != "from-env.md" {
		t.Errorf("Output = %q, want env override", cfg.Output)
	}
}

func TestSetField(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{"prompt", "hi", false},
		{"output", "r.md", false},
		{"timeout_seconds", "30", false},
		{"timeout_seconds", "abc", true},
		{"providers.openai.model", "gpt-4o", false},
		{"providers.openai.api_key", "sk-x", false},
		{"providers.anthropic.base_url", "http://localhost:1", false},
		{"providers.openai.temperature", "1", true},
		{"nope", "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := Default()
			err := SetField(&cfg, tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetField(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}

	cfg := Default()
	if err := SetField(&cfg, "providers.openai.model", "gpt-4o"); err != nil {
		t.Fatal(err)
	}
	if cfg.Providers["openai"].Model != "gpt-4o" {
		t.Errorf("model = %q after SetField, want gpt-4o", cfg.Providers["openai"].Model)
	}
}

func TestSaveLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chorus.yaml")

	cfg := Default()
	cfg.Prompt = "custom prompt"
	pc := cfg.Providers["anthropic"]
	pc.APIKey = "file-secret"
	cfg.Providers["anthropic"] = pc

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if got.Prompt != "custom prompt" {
		t.Errorf("Prompt = %q, want custom prompt", got.Prompt)
	}
	if got.Providers["anthropic"].APIKey != "file-secret" {
		t.Errorf("anthropic api_key = %q, want file-secret", got.Providers["anthropic"].APIKey)
	}
}
