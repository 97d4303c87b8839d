package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dshills/chorus/internal/collect"
	"github.com/dshills/chorus/internal/config"
	"github.com/dshills/chorus/internal/providers"
	"github.com/dshills/chorus/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagPrompt string
	flagOut    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Query every configured provider and write the comparison report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		exitCode = runCollection(cmd.Context(), cfg, os.Stdout, os.Stderr)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", config.DefaultPath, "Config file path")
	runCmd.Flags().StringVar(&flagPrompt, "prompt", "", "Prompt to send (overrides config)")
	runCmd.Flags().StringVar(&flagOut, "out", "", "Report output path (overrides config)")
}

// loadConfig loads the effective config, warning when the file is absent, and
// applies the run flags.
func loadConfig(stderr io.Writer) (config.Config, error) {
	if _, err := os.Stat(flagConfig); os.IsNotExist(err) {
		fmt.Fprintf(stderr, "Warning: %s not found, using environment variables only\n", flagConfig)
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagPrompt != "" {
		cfg.Prompt = flagPrompt
	}
	if flagOut != "" {
		cfg.Output = flagOut
	}
	return cfg, nil
}

// runCollection performs one full run: resolve credentials, call providers,
// write the report. Per-provider failures degrade to recorded outcomes; only
// report-write and setup failures are fatal.
func runCollection(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) int {
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintf(stdout, "Starting LLM comparison...\n\nPrompt: %s\n\n", cfg.Prompt)

	entries, names, err := buildEntries(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}

	builder := report.New(cfg.Output)
	if err := builder.Start(cfg.Prompt); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}

	outcomes, successful := collect.Collect(ctx, cfg.Prompt, entries, stderr)

	for _, o := range outcomes {
		echoOutcome(stdout, o)
		if err := builder.WriteOutcome(o); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitRuntimeError
		}
	}
	if err := builder.WriteDiscussion(names); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}

	if successful == 0 {
		fmt.Fprintf(stderr, "\nNo APIs were successfully called. Set up at least one API key.\n")
		return ExitNoResults
	}

	fmt.Fprintf(stdout, "\nComparison report saved to %s\n", builder.Path())
	fmt.Fprintf(stdout, "Successfully called %d API(s)\n", successful)
	fmt.Fprintf(stdout, "Fill in the comparison table in %s with your analysis.\n", builder.Path())
	return ExitSuccess
}

// buildEntries resolves a credential and builds a client for each registered
// provider, in registry order. Providers without a credential get a nil
// client so the collector records them without calling out.
func buildEntries(cfg config.Config) ([]collect.Entry, []string, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	var entries []collect.Entry
	var names []string
	for _, id := range providers.Registry() {
		pc := cfg.Providers[id.Key]
		id.Name = providers.DisplayName(id, pc.Model)
		names = append(names, id.Name)

		key, source := cfg.Credential(id)
		if source == config.SourceNone {
			entries = append(entries, collect.Entry{Identity: id})
			continue
		}
		client, err := providers.New(id.Key, providers.Options{
			APIKey:  key,
			Model:   pc.Model,
			BaseURL: pc.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, collect.Entry{Identity: id, Client: client})
	}
	return entries, names, nil
}

func echoOutcome(w io.Writer, o collect.Outcome) {
	rule := strings.Repeat("=", max(30, len(o.Provider)+20))
	fmt.Fprintf(w, "\n=== %s Response ===\n%s\n%s\n", o.Provider, o.Text, rule)
}
