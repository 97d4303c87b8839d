package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/chorus/internal/collect"
)

// aspects are the evaluation dimensions of the discussion scaffold, one table
// row each. The scaffold's shape is part of the artifact format.
var aspects = []string{"Clarity", "Technical Accuracy", "Engagement", "Educational Value"}

// Builder writes the comparison report artifact. Each section is one
// append-only write, so a crash mid-run leaves a valid prefix of the report
// rather than a corrupt file.
type Builder struct {
	path string
}

// New creates a Builder targeting path. Nothing is written until Start.
func New(path string) *Builder {
	return &Builder{path: path}
}

// Path returns the artifact path.
func (b *Builder) Path() string { return b.path }

// Start removes any pre-existing artifact and writes the title and prompt
// sections. Old content never survives into a new run.
func (b *Builder) Start(prompt string) error {
	if err := os.Remove(b.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing previous report: %w", err)
	}
	if err := b.append("# LLM Output Comparison\n\n"); err != nil {
		return err
	}
	return b.append(fmt.Sprintf("**Prompt:** %s\n\n", prompt))
}

// WriteOutcome appends one provider section. Success text and error text
// share this rendering path, so failures are documented inline.
func (b *Builder) WriteOutcome(o collect.Outcome) error {
	return b.append(fmt.Sprintf("## %s Response\n\n%s\n\n", o.Provider, o.Text))
}

// WriteDiscussion appends the fixed comparison scaffold: an empty table with
// one column per provider and one row per aspect, then three empty
// observation bullets.
func (b *Builder) WriteDiscussion(providerNames []string) error {
	var sb strings.Builder
	sb.WriteString("## Discussion\n\n")

	sb.WriteString("| Aspect |")
	for _, name := range providerNames {
		fmt.Fprintf(&sb, " %s |", name)
	}
	sb.WriteString("\n|--------|")
	for range providerNames {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")
	for _, aspect := range aspects {
		fmt.Fprintf(&sb, "| %s |", aspect)
		sb.WriteString(strings.Repeat(" |", len(providerNames)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n**Key Observations:**\n- \n- \n- \n")
	return b.append(sb.String())
}

func (b *Builder) append(section string) error {
	f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening report: %w", err)
	}
	if _, err := f.WriteString(section); err != nil {
		f.Close()
		return fmt.Errorf("writing report section: %w", err)
	}
	return f.Close()
}
