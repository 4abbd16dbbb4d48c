package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logCfg logConfig

	rootCmd := &cobra.Command{
		Use:           "sectdump",
		Short:         "Extract sections embedded into mach-o executables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&logCfg.Level, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logCfg.Pretty, "pretty", true, "Human-readable log output")

	rootCmd.AddCommand(newExtractCmd(&logCfg))
	rootCmd.AddCommand(newArchsCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
