package cli

import (
	"fmt"
	"os"

	"github.com/dshills/chorus/internal/config"
	"github.com/dshills/chorus/internal/providers"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Provider management",
}

var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered providers and credential status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		for _, id := range providers.Registry() {
			key, source := cfg.Credential(id)
			model := cfg.Providers[id.Key].Model
			switch source {
			case config.SourceNone:
				fmt.Fprintf(os.Stdout, "%s (%s): not configured (set %s)\n", id.Name, model, id.EnvVar)
			default:
				fmt.Fprintf(os.Stdout, "%s (%s): %s from %s\n", id.Name, model, config.Mask(key), source)
			}
		}
		return nil
	},
}

func init() {
	providersCmd.AddCommand(providersListCmd)
	providersListCmd.Flags().StringVar(&flagConfig, "config", config.DefaultPath, "Config file path")
}
