package generate

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/scru64/go-scru64/internal/config"
	logpkg "github.com/scru64/go-scru64/pkg/log"
	"github.com/scru64/go-scru64/pkg/scru64"
)

// Options carries the resolved inputs of one generate run.
type Options struct {
	// NodeSpec is the textual node spec, from the --node-spec flag or the
	// SCRU64_NODE_SPEC environment variable.
	NodeSpec string
	// Count is the number of identifiers to print.
	Count int
	// RollbackAllowanceMs bounds the tolerated backward clock jump.
	RollbackAllowanceMs uint64
}

// NewCommand constructs the `generate` command.
func NewCommand(logger logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate SCRU64 identifiers",
		Long:  "Generate prints monotonically increasing SCRU64 identifiers, one per line.\nThe node identity is taken from --node-spec or the SCRU64_NODE_SPEC environment variable.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			nodeSpec, _ := cmd.Flags().GetString("node-spec")
			if nodeSpec == "" {
				nodeSpec = cfg.NodeSpec
			}
			count, _ := cmd.Flags().GetInt("count")
			return Run(cmd.Context(), Options{
				NodeSpec:            nodeSpec,
				Count:               count,
				RollbackAllowanceMs: cfg.RollbackAllowanceMs,
			}, cmd.OutOrStdout(), logger.WithComponent("generate"))
		},
	}
	cmd.Flags().IntP("count", "n", 1, "Number of identifiers to generate")
	cmd.Flags().String("node-spec", "", "Node spec (default: $SCRU64_NODE_SPEC)")
	return cmd
}

// Run generates opts.Count identifiers and writes them to out, one canonical
// 12-character string per line. It never writes a partial identifier: every
// failure surfaces as an error before the offending line.
func Run(ctx context.Context, opts Options, out io.Writer, logger logpkg.Logger) error {
	if opts.NodeSpec == "" {
		return fmt.Errorf("no node spec: set %s or pass --node-spec", scru64.NodeSpecEnv)
	}
	spec, err := scru64.ParseNodeSpec(opts.NodeSpec)
	if err != nil {
		return err
	}
	if opts.Count < 0 {
		return fmt.Errorf("invalid count %d", opts.Count)
	}
	gen := scru64.NewGenerator(spec)

	w := bufio.NewWriter(out)
	for i := 0; i < opts.Count; i++ {
		id, err := generateOne(ctx, gen, opts.RollbackAllowanceMs)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	logger.Debug("generated identifiers",
		logpkg.Int("count", opts.Count),
		logpkg.Str("node_spec", gen.NodeSpec().String()),
	)
	return nil
}

// generateOne drives the core generate operation with the configured
// allowance, waiting out a significant rollback until ctx is cancelled.
func generateOne(ctx context.Context, gen *scru64.Generator, allowanceMs uint64) (scru64.ID, error) {
	for {
		id, err := gen.GenerateOrAbortCore(uint64(time.Now().UnixMilli()), allowanceMs)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, scru64.ErrClockRollback) {
			return scru64.ID{}, err
		}
		select {
		case <-ctx.Done():
			return scru64.ID{}, ctx.Err()
		case <-time.After(64 * time.Millisecond):
		}
	}
}
