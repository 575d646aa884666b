// Command rangebench pushes bursts of work through a shared worker pool, checks the
// parallel result against a serial fold and optionally exposes the pool's Prometheus
// metrics while doing so.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"rangekit/parallel"
	"rangekit/pool"
	"rangekit/ranges"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// parseConfig loads the environment, applies explicit flags on top of it and validates
// the merged result.
func parseConfig(args []string) (*Config, error) {
	flags := flag.NewFlagSet("rangebench", flag.ContinueOnError)
	envFile := flags.String("env", ".env", "dotenv file to load if present")
	workers := flags.Int("workers", 0, "pool size, 0 uses hardware concurrency (RANGEBENCH_WORKERS)")
	items := flags.Int("items", 0, "elements per round (RANGEBENCH_ITEMS)")
	rounds := flags.Int("rounds", 0, "rounds to run (RANGEBENCH_ROUNDS)")
	metricsAddr := flags.String("metrics-addr", "", "serve /metrics on this address and wait for a signal (RANGEBENCH_METRICS_ADDR)")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(*envFile)
	if err != nil {
		return nil, err
	}
	// explicit flags win over the environment
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.Workers = *workers
		case "items":
			cfg.Items = *items
		case "rounds":
			cfg.Rounds = *rounds
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// realMain returns the process exit code so deferred cleanup runs before main exits.
func realMain(args []string) int {
	cfg, err := parseConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 2
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 2
	}
	log := logger.WithField("run_id", uuid.NewString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr, reg, log)
	}

	if err := run(cfg, reg, log); err != nil {
		log.WithError(err).Error("benchmark failed")
		return 1
	}

	if cfg.MetricsAddr != "" {
		log.Info("workload finished, serving metrics until interrupted")
		<-ctx.Done()
	}
	return 0
}

func newLogger(cfg *Config) (*logrus.Logger, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

// run drives cfg.Rounds bursts of sum-of-squares through one shared pool and verifies
// each against the serial result.
func run(cfg *Config, reg prometheus.Registerer, log logrus.FieldLogger) error {
	workers := cfg.Workers
	if workers == 0 {
		workers = pool.HardwareConcurrency()
	}

	metrics, err := pool.NewMetricsMonitor(reg, "rangebench")
	if err != nil {
		return err
	}
	p, err := pool.New(workers,
		pool.WithName("rangebench"),
		pool.WithMonitor(metrics),
		pool.WithMonitor(pool.NewLogMonitor(log, "rangebench")),
		// panics are already logged by the monitor, keep the workers serving
		pool.WithPanicHandler(func(int, any, []byte) {}),
	)
	if err != nil {
		return err
	}
	defer p.Close()

	items := ranges.Span(0, cfg.Items)
	want := ranges.Fold(items, int64(0), func(acc int64, v int) int64 {
		return acc + int64(v)*int64(v)
	})
	log.WithFields(logrus.Fields{
		"workers": p.ThreadCount(),
		"items":   items.Len(),
		"rounds":  cfg.Rounds,
	}).Info("starting")

	for round := 1; round <= cfg.Rounds; round++ {
		var sum atomic.Int64
		start := time.Now()
		if _, err := items.AsyncForEachOn(p, func(v int) {
			sum.Add(int64(v) * int64(v))
		}); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		// the shared pool does not wait on its own, drain before reading the sum
		p.Wait()

		if got := sum.Load(); got != want {
			return fmt.Errorf("round %d: sum of squares = %d, want %d", round, got, want)
		}
		log.WithFields(logrus.Fields{
			"round":   round,
			"elapsed": time.Since(start),
		}).Info("round complete")
	}

	squares, err := parallel.MapOn(p, items.Slice(), func(v int) int64 { return int64(v) * int64(v) })
	if err != nil {
		return err
	}
	if got := ranges.Sum(ranges.FromSlice(squares)); got != want {
		return fmt.Errorf("mapped sum of squares = %d, want %d", got, want)
	}

	stats := p.Stats()
	log.WithFields(logrus.Fields{
		"submitted": stats.Submitted,
		"completed": stats.Completed,
		"panicked":  stats.Panicked,
		"checksum":  want,
	}).Info("done")
	return nil
}
