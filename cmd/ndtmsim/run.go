package main

import (
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/ndtmsim/internal/metrics"
	"github.com/gitrdm/ndtmsim/internal/obslog"
	"github.com/gitrdm/ndtmsim/internal/parser"
	"github.com/gitrdm/ndtmsim/pkg/ndtm"
)

// errResourceExhausted marks errors that should exit with status 2
// rather than the generic status 1.
var errResourceExhausted = errors.New("resource exhausted")

func newRunCommand() *cobra.Command {
	var (
		logLevel      string
		metricsAddr   string
		debugDump     bool
		queueCapacity int
		inputFile     string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Read a machine description and input strings from stdin, writing one verdict per input to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMachine(cmd, runOptions{
				logLevel:      logLevel,
				metricsAddr:   metricsAddr,
				debugDump:     debugDump,
				queueCapacity: queueCapacity,
				inputFile:     inputFile,
			})
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log verbosity: debug, info, or warn")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090) while running")
	cmd.Flags().BoolVar(&debugDump, "debug-dump", false, "pretty-print the parsed machine description to stderr before evaluation")
	cmd.Flags().IntVar(&queueCapacity, "queue-capacity", ndtm.DefaultQueueCapacity, "configuration queue capacity per input")
	cmd.Flags().StringVar(&inputFile, "input", "", "read the machine description from this file instead of stdin")

	return cmd
}

type runOptions struct {
	logLevel      string
	metricsAddr   string
	debugDump     bool
	queueCapacity int
	inputFile     string
}

func runMachine(cmd *cobra.Command, opts runOptions) error {
	logger := obslog.NewStderr(obslog.ParseLevel(opts.logLevel))

	src, err := openSource(cmd, opts.inputFile)
	if err != nil {
		logger.Error(err, "failed to open input", "file", opts.inputFile)
		return err
	}
	if closer, ok := src.(io.Closer); ok {
		defer closer.Close()
	}

	machine, err := parser.Parse(src)
	if err != nil {
		logger.Error(err, "failed to parse machine description")
		return err
	}

	if opts.debugDump {
		parser.DumpMachine(cmd.ErrOrStderr(), machine)
	}

	var collector *metrics.Collector
	if opts.metricsAddr != "" {
		collector = newMetricsServer(opts.metricsAddr, logger)
	}

	engineOpts := []ndtm.EngineOption{ndtm.WithQueueCapacity(opts.queueCapacity)}
	if collector != nil {
		engineOpts = append(engineOpts, ndtm.WithObserver(collector))
	}
	engine := ndtm.NewEngine(machine.Table, machine.Accepting, machine.StepBudget, engineOpts...)

	out := cmd.OutOrStdout()
	for _, input := range machine.Inputs {
		verdict, err := engine.Run(input)
		if err != nil {
			logger.Fatal(err, "run aborted", "input", input)
			if errors.Is(err, ndtm.ErrQueueOverflow) {
				return errors.Join(err, errResourceExhausted)
			}
			return err
		}
		if err := parser.WriteVerdict(out, verdict); err != nil {
			return err
		}
	}

	return nil
}

func openSource(cmd *cobra.Command, path string) (io.Reader, error) {
	if path == "" {
		return cmd.InOrStdin(), nil
	}
	return os.Open(path)
}

// newMetricsServer registers a Collector and starts an HTTP server
// exposing it in the background, returning the Collector for wiring
// into the engine as an Observer.
func newMetricsServer(addr string, logger obslog.Logger) *metrics.Collector {
	collector, reg := metrics.New()
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn("metrics server stopped", "error", err.Error())
		}
	}()

	return collector
}
