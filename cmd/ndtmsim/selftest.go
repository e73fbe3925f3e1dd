package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitrdm/ndtmsim/internal/diagnostics"
)

func newSelftestCommand() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in engine and tape self-checks concurrently and report pass/fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool := diagnostics.NewPool(workers)
			defer pool.Shutdown()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			results := diagnostics.RunAll(ctx, pool, diagnostics.DefaultChecks())

			failures := 0
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Passed() {
					fmt.Fprintf(out, "PASS %s\n", r.Name)
					continue
				}
				failures++
				fmt.Fprintf(out, "FAIL %s: %v\n", r.Name, r.Err)
			}

			if failures > 0 {
				return fmt.Errorf("selftest: %d of %d checks failed", failures, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "number of concurrent workers (default: number of CPUs)")

	return cmd
}
