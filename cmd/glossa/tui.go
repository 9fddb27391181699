package main

import (
	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/glossa/internal/logger"
	"github.com/Mr-Dark-debug/glossa/internal/tui"
)

func newTUICommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive lookup screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			// The screen owns the terminal, so logs go to a file.
			logFile, err := logger.SetupFile(cfg.Log.File, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer func() { _ = logFile.Close() }()

			return tui.Run(cmd.Context(), cfg)
		},
	}
}
