// Chorus queries several LLM providers with one prompt and assembles every
// outcome, success or failure, into a single markdown comparison report.
//
// Usage:
//
//	chorus run                   # query all configured providers
//	chorus providers list        # show credential status per provider
//	chorus config init           # write a default chorus.yaml
//
// API keys come from OPENAI_API_KEY, ANTHROPIC_API_KEY, and
// HUGGINGFACE_API_KEY, falling back to the config file.
package main

import (
	"os"

	"github.com/dshills/chorus/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
