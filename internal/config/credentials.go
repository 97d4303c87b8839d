package config

import (
	"os"
	"strings"

	"github.com/dshills/chorus/internal/providers"
)

// Source identifies where a credential was resolved from.
type Source string

const (
	SourceEnv  Source = "env"
	SourceFile Source = "file"
	SourceNone Source = "none"
)

// Credential resolves the API key for a provider. The provider's dedicated
// environment variable wins when set and non-blank; otherwise the config
// file's api_key is used. Absence is a normal result, not an error.
func (c Config) Credential(id providers.Identity) (string, Source) {
	if v := strings.TrimSpace(os.Getenv(id.EnvVar)); v != "" {
		return v, SourceEnv
	}
	if pc, ok := c.Providers[id.Key]; ok {
		if v := strings.TrimSpace(pc.APIKey); v != "" {
			return v, SourceFile
		}
	}
	return "", SourceNone
}

// Mask renders a credential for display without revealing it.
func Mask(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "********"
	}
	return key[:4] + "..." + key[len(key)-2:]
}
