// File: sweep.go
// Role: Head-to-head trial execution, errgroup fan-out, per-load
//       aggregation, text report.

package experiment

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spectra/core"
	"github.com/katalvlaran/spectra/demand"
	"github.com/katalvlaran/spectra/internal/logging"
	"github.com/katalvlaran/spectra/internal/observability"
	"github.com/katalvlaran/spectra/rmlsa"
	"github.com/katalvlaran/spectra/spectrum"
)

// ErrNilGraph indicates a nil topology passed to Sweep.
var ErrNilGraph = errors.New("experiment: graph is nil")

// Trial is one head-to-head comparison: both allocators over the same
// demand sequence on fresh, independent ledgers.
type Trial struct {
	RunID string
	Load  int
	Run   int

	FirstFit rmlsa.Result
	Adaptive rmlsa.Result
}

// AlgorithmSummary holds per-load means for one allocator.
type AlgorithmSummary struct {
	MeanWatermark           float64
	MeanBlockingProbability float64
	MeanUtilization         float64
}

// LoadSummary aggregates all trials at one load level.
type LoadSummary struct {
	Load   int
	Trials int

	FirstFit AlgorithmSummary
	Adaptive AlgorithmSummary

	// WatermarkImprovement is the adaptive allocator's relative
	// watermark saving over the baseline, in [0,1] when it wins.
	WatermarkImprovement float64
}

// Report is a finished sweep: every trial plus the per-load summaries.
type Report struct {
	RunID     string
	Summaries []LoadSummary
	Trials    []Trial
}

// Options configures a sweep run.
type Options struct {
	// Logger receives per-load progress; defaults to a no-op logger.
	Logger logging.Logger

	// Collector, when set, receives one observation per finished trial
	// and algorithm.
	Collector *observability.SweepCollector
}

// Option is a functional option for Sweep.
type Option func(*Options)

// WithLogger routes sweep progress to l.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithCollector publishes per-trial metrics to c.
func WithCollector(c *observability.SweepCollector) Option {
	return func(o *Options) { o.Collector = c }
}

// DefaultOptions returns the Options Sweep starts from.
func DefaultOptions() Options {
	return Options{Logger: logging.Noop()}
}

// Sweep runs cfg.RunsPerLoad trials at every load level and aggregates
// them. Demand sequences are generated serially up front so the stream
// creation order, and with it the traffic, is reproducible; the trials
// themselves fan out on an errgroup bounded by cfg.Parallelism, each
// owning its two ledgers exclusively. ctx cancellation stops unstarted
// trials and fails the sweep.
func Sweep(ctx context.Context, g *core.Graph, cfg Config, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	report := &Report{RunID: uuid.NewString()}

	// Serial generation first: rngstream substreams are consumed in
	// creation order, which must not depend on trial interleaving.
	type job struct {
		load, run int
		demands   []rmlsa.Demand
	}
	var jobs []job
	for _, load := range cfg.Loads {
		for run := 0; run < cfg.RunsPerLoad; run++ {
			stream := fmt.Sprintf("load%d-run%d", load, run)
			ds, err := demand.GenerateRange(g, load, stream, cfg.MinBandwidthGbps, cfg.MaxBandwidthGbps)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, job{load: load, run: run, demands: ds})
		}
	}

	trials := make([]Trial, len(jobs))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Parallelism)
	for i, j := range jobs {
		if err := gctx.Err(); err != nil {
			break
		}
		i, j := i, j
		eg.Go(func() error {
			t, err := runTrial(g, cfg, j.load, j.run, j.demands)
			if err != nil {
				return err
			}
			trials[i] = t
			if o.Collector != nil {
				o.Collector.ObserveTrial(t.FirstFit.Algorithm,
					t.FirstFit.Successful, t.FirstFit.Blocked, t.FirstFit.Watermark,
					t.FirstFit.BlockingProbability, t.FirstFit.Utilization)
				o.Collector.ObserveTrial(t.Adaptive.Algorithm,
					t.Adaptive.Successful, t.Adaptive.Blocked, t.Adaptive.Watermark,
					t.Adaptive.BlockingProbability, t.Adaptive.Utilization)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.Trials = trials
	report.Summaries = summarize(cfg.Loads, trials)
	for _, s := range report.Summaries {
		o.Logger.Info(ctx, "load level complete",
			logging.Int("load", s.Load),
			logging.Int("trials", s.Trials),
			logging.Float("spff_mean_watermark", s.FirstFit.MeanWatermark),
			logging.Float("adaptive_mean_watermark", s.Adaptive.MeanWatermark),
			logging.Float("watermark_improvement", s.WatermarkImprovement))
	}

	return report, nil
}

// runTrial executes one head-to-head comparison on fresh ledgers.
func runTrial(g *core.Graph, cfg Config, load, run int, demands []rmlsa.Demand) (Trial, error) {
	t := Trial{RunID: uuid.NewString(), Load: load, Run: run}

	ffLedger, err := spectrum.NewLedger(g, spectrum.WithCapacity(cfg.Capacity))
	if err != nil {
		return Trial{}, err
	}
	ff, err := rmlsa.NewFirstFit(g, ffLedger)
	if err != nil {
		return Trial{}, err
	}
	ffSched, err := rmlsa.NewScheduler(ffLedger, ff)
	if err != nil {
		return Trial{}, err
	}
	t.FirstFit = ffSched.Run(demands)

	adLedger, err := spectrum.NewLedger(g, spectrum.WithCapacity(cfg.Capacity))
	if err != nil {
		return Trial{}, err
	}
	ad, err := rmlsa.NewAdaptive(g, adLedger, rmlsa.WithFanOut(cfg.FanOut))
	if err != nil {
		return Trial{}, err
	}
	adSched, err := rmlsa.NewScheduler(adLedger, ad)
	if err != nil {
		return Trial{}, err
	}
	t.Adaptive = adSched.Run(demands)

	return t, nil
}

// summarize reduces trials to per-load means in the order of loads.
func summarize(loads []int, trials []Trial) []LoadSummary {
	out := make([]LoadSummary, 0, len(loads))
	for _, load := range loads {
		s := LoadSummary{Load: load}
		for _, t := range trials {
			if t.Load != load {
				continue
			}
			s.Trials++
			s.FirstFit.MeanWatermark += float64(t.FirstFit.Watermark)
			s.FirstFit.MeanBlockingProbability += t.FirstFit.BlockingProbability
			s.FirstFit.MeanUtilization += t.FirstFit.Utilization
			s.Adaptive.MeanWatermark += float64(t.Adaptive.Watermark)
			s.Adaptive.MeanBlockingProbability += t.Adaptive.BlockingProbability
			s.Adaptive.MeanUtilization += t.Adaptive.Utilization
		}
		if s.Trials > 0 {
			n := float64(s.Trials)
			s.FirstFit.MeanWatermark /= n
			s.FirstFit.MeanBlockingProbability /= n
			s.FirstFit.MeanUtilization /= n
			s.Adaptive.MeanWatermark /= n
			s.Adaptive.MeanBlockingProbability /= n
			s.Adaptive.MeanUtilization /= n
		}
		if s.FirstFit.MeanWatermark > 0 {
			s.WatermarkImprovement = (s.FirstFit.MeanWatermark - s.Adaptive.MeanWatermark) / s.FirstFit.MeanWatermark
		}
		out = append(out, s)
	}

	return out
}

// WriteText renders the per-load summary table.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "spectrum sweep %s\n\n", r.RunID); err != nil {
		return err
	}
	header := fmt.Sprintf("%6s %8s | %9s %9s %9s | %9s %9s %9s | %8s\n",
		"load", "trials",
		"spff_wm", "spff_bp", "spff_util",
		"adpt_wm", "adpt_bp", "adpt_util",
		"wm_gain")
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	for _, s := range r.Summaries {
		_, err := fmt.Fprintf(w, "%6d %8d | %9.2f %9.4f %9.4f | %9.2f %9.4f %9.4f | %7.1f%%\n",
			s.Load, s.Trials,
			s.FirstFit.MeanWatermark, s.FirstFit.MeanBlockingProbability, s.FirstFit.MeanUtilization,
			s.Adaptive.MeanWatermark, s.Adaptive.MeanBlockingProbability, s.Adaptive.MeanUtilization,
			s.WatermarkImprovement*100)
		if err != nil {
			return err
		}
	}

	return nil
}
