package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/internal/config"
	"github.com/pdrpinto/gridsearch/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "gridsearch:", err)
		os.Exit(1)
	}
}

// run parses args, loads every board up front and then runs each strategy
// over all boards, writing boards and statistics to stdout.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gridsearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	strategies := fs.String("strategies", "", "comma separated strategies (astar,dijkstra,bfs)")
	color := fs.Bool("color", true, "draw boards with ANSI colors")
	printBoards := fs.Bool("boards", true, "print every board with its path")
	workers := fs.Int("workers", 0, "concurrent searches")
	maxExpansions := fs.Int("max-expansions", 0, "abort a search after this many expansions (0 = unlimited)")
	logLevel := fs.String("log-level", "", "logrus level (debug, info, warn, error)")
	metricsAddr := fs.String("metrics-addr", "", "serve Prometheus metrics on this address")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: gridsearch [flags] [board.txt ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	var overrideErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strategies":
			parsed, err := parseStrategies(*strategies)
			if err != nil {
				overrideErr = err
				return
			}
			cfg.Strategies = parsed
		case "color":
			cfg.Color = *color
		case "boards":
			cfg.PrintBoards = *printBoards
		case "workers":
			cfg.Workers = *workers
		case "max-expansions":
			cfg.MaxExpansions = *maxExpansions
		case "log-level":
			cfg.Log.Level = *logLevel
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		}
	})
	if overrideErr != nil {
		return overrideErr
	}
	if fs.NArg() > 0 {
		cfg.Boards = fs.Args()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(cfg.Boards) == 0 {
		fs.Usage()
		return errors.New("no boards given")
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go func() {
			logger.WithField("addr", cfg.MetricsAddr).Info("serving metrics")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.WithError(err).Error("metrics server stopped")
			}
		}()
		defer srv.Close()
	}

	grids := make([]*gridsearch.Grid, len(cfg.Boards))
	for i, path := range cfg.Boards {
		g, err := gridsearch.LoadFile(path)
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"board":  path,
			"width":  g.Width(),
			"height": g.Height(),
		}).Debug("board loaded")
		grids[i] = g
	}

	if err := render.Legend(stdout, cfg.Color); err != nil {
		return err
	}

	options := []gridsearch.Option{
		gridsearch.WithWorkers(cfg.Workers),
		gridsearch.WithMaxExpansions(cfg.MaxExpansions),
		gridsearch.WithLogger(logger),
	}
	for _, strategy := range cfg.Strategies {
		fmt.Fprintf(stdout, "---%s---\n", strategy)

		jobs := make([]gridsearch.Job, len(grids))
		for i, g := range grids {
			jobs[i] = gridsearch.Job{Name: cfg.Boards[i], Grid: g, Strategy: strategy}
		}
		outcomes, err := gridsearch.RunBatch(ctx, jobs, options...)
		if err != nil {
			return err
		}

		results := make([]gridsearch.Result, len(outcomes))
		for i, outcome := range outcomes {
			if outcome.Err != nil {
				return fmt.Errorf("%s on %s: %w", strategy, outcome.Job.Name, outcome.Err)
			}
			results[i] = outcome.Result
			if !outcome.Result.Found {
				logger.WithFields(logrus.Fields{
					"board":    outcome.Job.Name,
					"strategy": strategy.String(),
				}).Warn("no path found")
			}
			if cfg.PrintBoards {
				if err := render.Board(stdout, outcome.Job.Grid, outcome.Result.Path, cfg.Color); err != nil {
					return err
				}
				fmt.Fprintln(stdout)
			}
		}
		if err := render.Stats(stdout, strategy.String(), results); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
	}
	return nil
}

func parseStrategies(list string) ([]gridsearch.Strategy, error) {
	var out []gridsearch.Strategy
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		s, err := gridsearch.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty list", gridsearch.ErrUnknownStrategy)
	}
	return out, nil
}

func newLogger(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger, nil
}
