package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	generatecmd "github.com/scru64/go-scru64/internal/cmd/generate"
	inspectcmd "github.com/scru64/go-scru64/internal/cmd/inspect"
	"github.com/scru64/go-scru64/internal/config"
	logpkg "github.com/scru64/go-scru64/pkg/log"
)

func main() {
	// Build the process logger from SCRU64_LOG_LEVEL / SCRU64_LOG_FORMAT
	// before anything else so misconfiguration diagnostics are structured.
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "scru64:", err)
		os.Exit(1)
	}
	logger, err := logpkg.ApplyConfig(&logpkg.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		fmt.Fprintln(os.Stderr, "scru64:", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "scru64",
		Short:         "SCRU64 identifier toolkit",
		Long:          "scru64 generates and decodes SCRU64 identifiers: 64-bit, sortable,\ntime-ordered unique IDs minted under a configured node identity.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(generatecmd.NewCommand(logger))
	rootCmd.AddCommand(inspectcmd.NewCommand())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "scru64:", err)
		os.Exit(1)
	}
}
