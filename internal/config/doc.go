// Package config loads and merges chorus configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. Environment variables (CHORUS_PROMPT, CHORUS_OUTPUT, ...)
//  2. Config file (chorus.yaml by default)
//  3. Built-in defaults
//
// Per-provider API keys resolve separately through [Config.Credential]: the
// provider's dedicated environment variable (OPENAI_API_KEY, ...) overrides
// the file's api_key, and absence is a valid result rather than an error.
package config
