// Package main provides the jsxcond CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags.
var version = "dev"

var cfgFile string //nolint:gochecknoglobals // CLI flag variable

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsxcond",
		Short: "Build-time transform for JSX control-statement pseudo-elements",
		Long: `jsxcond rewrites <Condition> and <Switch>/<Switch.Case> pseudo-elements
into plain conditional expressions so no runtime support is needed.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.jsxcond.yaml or $HOME/.jsxcond.yaml)")

	rootCmd.AddCommand(transformCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "jsxcond %s\n", version)
		},
	}
}
