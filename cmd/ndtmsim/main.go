// Command ndtmsim evaluates a nondeterministic Turing machine description
// against a stream of input strings, emitting one verdict line per input.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errResourceExhausted) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "ndtmsim",
		Short:   "Simulate a nondeterministic Turing machine",
		Version: Version,
		SilenceUsage: true,
	}

	root.AddCommand(newRunCommand())
	root.AddCommand(newSelftestCommand())

	return root
}
