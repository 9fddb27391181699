// Glossa CLI: look up English words in the Free Dictionary API.
//
// Usage:
//
//	glossa <command> [flags]
//
// Commands:
//
//	lookup    Print the definitions of a word
//	tui       Open the interactive lookup screen
//	version   Print version information
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/glossa/internal/config"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configFile string
	apiURL     string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "Error: %v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCommand := &cobra.Command{
		Use:           "glossa",
		Short:         "Glossa looks up English words in the Free Dictionary API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCommand.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file path (default ./config.yaml or ~/.config/glossa/config.yaml)")
	flags.StringVar(&opts.apiURL, "api-url", config.DefaultBaseURL, "dictionary entries endpoint")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	rootCommand.AddCommand(
		newLookupCommand(opts),
		newTUICommand(opts),
		newVersionCommand(),
	)
	return rootCommand
}

// loadConfig reads the configuration with the persistent flags of cmd
// layered on top.
func loadConfig(cmd *cobra.Command, opts *globalOptions) (*config.Config, error) {
	loader := config.NewLoader(opts.configFile)
	v := loader.Viper()

	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("api.base_url", flags.Lookup("api-url")); err != nil {
		return nil, fmt.Errorf("viper.BindPFlag > %w", err)
	}
	if err := v.BindPFlag("log.level", flags.Lookup("log-level")); err != nil {
		return nil, fmt.Errorf("viper.BindPFlag > %w", err)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Glossa v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
		},
	}
}
