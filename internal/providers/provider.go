package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single generation call.
const DefaultTimeout = 20 * time.Second

// Generator is the provider abstraction interface. A Generator sends one
// prompt to its service and returns the generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Identity describes one registered provider: its display name, its key in
// the configuration file, and the environment variable holding its API key.
type Identity struct {
	Name   string
	Key    string
	EnvVar string
}

// Registry returns the registered providers in the order they are called and
// rendered. Adding a provider means one new client file plus one entry here.
func Registry() []Identity {
	return []Identity{
		{Name: "OpenAI GPT-3.5", Key: "openai", EnvVar: "OPENAI_API_KEY"},
		{Name: "Anthropic Claude", Key: "anthropic", EnvVar: "ANTHROPIC_API_KEY"},
		{Name: "HuggingFace", Key: "huggingface", EnvVar: "HUGGINGFACE_API_KEY"},
	}
}

// DisplayName returns the label a provider's report section is rendered
// under. The Hugging Face label carries the model, since the inference API
// serves many models behind one endpoint.
func DisplayName(id Identity, model string) string {
	if id.Key == "huggingface" && model != "" {
		return fmt.Sprintf("%s (%s)", id.Name, model)
	}
	return id.Name
}

// Options carries the per-provider settings a client is built from.
type Options struct {
	APIKey  string
	Model   string
	BaseURL string // empty means the provider's public endpoint
	Timeout time.Duration
}

// New creates a client for the provider identified by its config key.
func New(key string, opts Options) (Generator, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	switch key {
	case "openai":
		return NewOpenAI(opts), nil
	case "anthropic":
		return NewAnthropic(opts), nil
	case "huggingface":
		return NewHuggingFace(opts), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", key)
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
