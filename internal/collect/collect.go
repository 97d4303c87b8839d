package collect

import (
	"context"
	"fmt"
	"io"

	"github.com/dshills/chorus/internal/providers"
	"github.com/dshills/chorus/internal/redact"
)

// NotConfigured is the outcome text recorded when a provider has no
// resolvable credential.
const NotConfigured = "[API key not provided]"

// Entry pairs a provider identity with its client. A nil Client marks a
// provider with no resolvable credential; it is recorded, never called.
type Entry struct {
	Identity providers.Identity
	Client   providers.Generator
}

// Outcome is the recorded result for one configured provider. Text holds
// either the generated content or a human-readable error message; both feed
// the same report section.
type Outcome struct {
	Provider  string
	Text      string
	Succeeded bool
}

// Collect calls each entry's provider in order and records every result.
// Failure of one provider never aborts the run: errors degrade to outcomes.
// The returned slice always has one outcome per entry, in entry order; the
// int is the number of successful generations.
func Collect(ctx context.Context, prompt string, entries []Entry, progress io.Writer) ([]Outcome, int) {
	outcomes := make([]Outcome, 0, len(entries))
	successful := 0

	for _, e := range entries {
		if e.Client == nil {
			fmt.Fprintf(progress, "%s: API key not found, skipping call\n", e.Identity.Name)
			outcomes = append(outcomes, Outcome{Provider: e.Identity.Name, Text: NotConfigured})
			continue
		}

		fmt.Fprintf(progress, "Calling %s...\n", e.Identity.Name)
		text, err := e.Client.Generate(ctx, prompt)
		if err != nil {
			fmt.Fprintf(progress, "%s failed: %v\n", e.Identity.Name, err)
			outcomes = append(outcomes, Outcome{
				Provider: e.Identity.Name,
				Text:     fmt.Sprintf("[Error: %s]", redact.Secrets(err.Error())),
			})
			continue
		}

		outcomes = append(outcomes, Outcome{Provider: e.Identity.Name, Text: text, Succeeded: true})
		successful++
	}

	return outcomes, successful
}
