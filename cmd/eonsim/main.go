// Command eonsim sweeps the first-fit and adaptive spectrum allocators
// head-to-head over a topology and prints the per-load summary table.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/spectra/builder"
	"github.com/katalvlaran/spectra/core"
	"github.com/katalvlaran/spectra/experiment"
	"github.com/katalvlaran/spectra/internal/logging"
	"github.com/katalvlaran/spectra/internal/observability"
)

func main() {
	topology := flag.String("topology", "nsfnet",
		"topology: nsfnet, ring:<nodes>:<km>, or mesh:<nodes>:<km>")
	configPath := flag.String("config", "",
		"YAML sweep config; built-in defaults when empty")
	out := flag.String("out", "",
		"report file; stdout when empty")
	metricsAddr := flag.String("metrics-addr", "",
		"serve Prometheus /metrics on this address while sweeping")
	logLevel := flag.String("log-level", "info", "debug, info, warn, or error")
	logFormat := flag.String("log-format", "text", "text or json")
	flag.Parse()

	if err := run(*topology, *configPath, *out, *metricsAddr, *logLevel, *logFormat); err != nil {
		fmt.Fprintln(os.Stderr, "eonsim:", err)
		os.Exit(1)
	}
}

func run(topology, configPath, out, metricsAddr, logLevel, logFormat string) error {
	log := logging.New(logging.Config{Level: logLevel, Format: logFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, err := buildTopology(topology)
	if err != nil {
		return err
	}

	cfg := experiment.DefaultConfig()
	if configPath != "" {
		cfg, err = experiment.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	opts := []experiment.Option{experiment.WithLogger(log)}
	if metricsAddr != "" {
		collector, err := observability.NewSweepCollector(nil)
		if err != nil {
			return err
		}
		opts = append(opts, experiment.WithCollector(collector))

		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		srv := &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error(ctx, "metrics server failed", logging.Any("error", err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		log.Info(ctx, "serving metrics", logging.String("addr", metricsAddr))
	}

	log.Info(ctx, "starting sweep",
		logging.String("topology", topology),
		logging.Any("loads", cfg.Loads),
		logging.Int("runs_per_load", cfg.RunsPerLoad))

	report, err := experiment.Sweep(ctx, g, cfg, opts...)
	if err != nil {
		return err
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create report %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	return report.WriteText(w)
}

// buildTopology parses the -topology flag: "nsfnet", "ring:<n>:<km>",
// or "mesh:<n>:<km>".
func buildTopology(spec string) (*core.Graph, error) {
	if spec == "nsfnet" {
		return builder.BuildGraph(builder.NSFNET())
	}

	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("bad topology %q: want nsfnet, ring:<nodes>:<km>, or mesh:<nodes>:<km>", spec)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("bad topology node count %q: %w", parts[1], err)
	}
	km, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return nil, fmt.Errorf("bad topology span %q: %w", parts[2], err)
	}

	switch parts[0] {
	case "ring":
		return builder.BuildGraph(builder.Ring(n, km))
	case "mesh":
		return builder.BuildGraph(builder.Mesh(n, km))
	default:
		return nil, fmt.Errorf("unknown topology kind %q", parts[0])
	}
}
