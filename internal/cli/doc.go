// Package cli wires together the Cobra command tree for the chorus binary.
//
// It defines the root command and all subcommands (run, providers, config,
// version), binds flags, reads configuration, drives the collector, and
// returns deterministic exit codes: 0 when at least one provider produced a
// generation, 1 when none did, 2 for usage errors, 3 for runtime failures.
package cli
