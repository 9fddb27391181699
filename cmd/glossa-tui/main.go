// Glossa TUI: the interactive dictionary lookup screen.
//
// Usage:
//
//	glossa-tui [flags]
//
// Flags:
//
//	--config   Path to a YAML config file (default: ./config.yaml or ~/.config/glossa/config.yaml)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mr-Dark-debug/glossa/internal/config"
	"github.com/Mr-Dark-debug/glossa/internal/logger"
	"github.com/Mr-Dark-debug/glossa/internal/tui"
)

func main() {
	configFile := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := logger.SetupFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		stop()
		_ = logFile.Close()
		os.Exit(1)
	}
}
