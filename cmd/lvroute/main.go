// Command lvroute orders route stops from JSON cost-matrix requests.
//
//	lvroute -config lvroute.toml -in requests.json -out results.json
//
// Input is a JSON array of requests (or a single object); output is a JSON
// array of results in the same order. "-" means stdin / stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/telemetry"
	"github.com/katalvlaran/lvroute/tsp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "lvroute:", err)
		os.Exit(1)
	}
}

// run is main without process exits, for tests.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("lvroute", flag.ContinueOnError)
	var (
		cfgPath = fs.String("config", "", "TOML configuration file")
		inPath  = fs.String("in", "-", "requests file (JSON), - for stdin")
		outPath = fs.String("out", "-", "results file (JSON), - for stdout")
		timeout = fs.Duration("timeout", 0, "per-request time limit (0 = none)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}

	log, closer, err := config.SetupLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer closer.Close()

	reg := prometheus.NewRegistry()
	opts := append(cfg.Solver.Options(),
		tsp.WithLogger(log),
		tsp.WithObserver(telemetry.NewMetrics(reg)),
	)
	opt, err := tsp.NewOptimizer(opts...)
	if err != nil {
		return err
	}

	data, err := readInput(*inPath, stdin)
	if err != nil {
		return err
	}
	reqs, err := decodeRequests(data)
	if err != nil {
		return err
	}

	started := time.Now()
	runner := &batchRunner{
		opt:      opt,
		log:      log,
		workers:  cfg.Batch.Workers,
		speedKmh: cfg.Batch.SpeedKmh,
		timeout:  *timeout,
	}
	resps, err := runner.run(ctx, reqs)
	if err != nil {
		return err
	}
	log.Infof("batch done: %d requests in %v", len(resps), time.Since(started))

	out, err := encodeResponses(resps)
	if err != nil {
		return err
	}
	if err = writeOutput(*outPath, stdout, out); err != nil {
		return err
	}

	if cfg.Batch.MetricsFile != "" {
		if err = prometheus.WriteToTextfile(cfg.Batch.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)

		return err
	}

	return os.WriteFile(path, data, 0o644)
}
