// Command rtscdiag answers two questions for a host operator: is the TSC
// fast path active here, and how much does it actually save. It wraps
// the probe/calibrate/bench/drift operations of the rtsc package behind
// a small Cobra CLI, in the structural style of the reference codebase's
// own single-binary diagnostic tool.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/templexxx/rtsc"
	"github.com/templexxx/rtsc/internal/clocksource"
	"github.com/templexxx/rtsc/internal/coeff"
	"github.com/templexxx/rtsc/internal/cpuid"
	"github.com/templexxx/rtsc/pkg/types"
	"github.com/templexxx/rtsc/pkg/util"
)

type opts struct {
	samples            int
	sampleDuration     time.Duration
	closestPairRetries int
	jsonPath           string
	configPath         string
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "rtscdiag",
		Short: "TSC clock diagnostics and benchmarking",
		Long: `rtscdiag probes whether this host qualifies for the TSC fast path,
runs an explicit calibration and reports what it produced, benchmarks
Now against the OS clock, and can run as a drift health check in CI.

* GitHub: https://github.com/templexxx/rtsc`,
	}

	root.PersistentFlags().IntVar(&o.samples, "samples", rtsc.DefaultConfig().Samples, "dual-sample epochs per calibration")
	root.PersistentFlags().DurationVar(&o.sampleDuration, "sample-duration", rtsc.DefaultConfig().SampleDuration, "gap between the two samples of one epoch")
	root.PersistentFlags().IntVar(&o.closestPairRetries, "closest-pair-retries", rtsc.DefaultConfig().ClosestPairRetries, "inner loop length of the closest-pair sampler")
	root.PersistentFlags().StringVar(&o.configPath, "config", "", "optional YAML file overriding the calibration knobs above")
	root.PersistentFlags().StringVar(&o.jsonPath, "json", "", "write command output as JSON to this file instead of stdout text")

	root.AddCommand(newProbeCmd(&o))
	root.AddCommand(newCalibrateCmd(&o))
	root.AddCommand(newBenchCmd(&o))
	root.AddCommand(newDriftCmd(&o))

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// fileConfig is the subset of rtsc.Config a --config YAML file may
// override; zero fields are left at their flag-derived default.
type fileConfig struct {
	Samples            *int           `yaml:"samples"`
	SampleDuration     *time.Duration `yaml:"sample_duration"`
	ClosestPairRetries *int           `yaml:"closest_pair_retries"`
}

func (o *opts) config() (rtsc.Config, error) {
	cfg := rtsc.Config{
		Samples:            o.samples,
		SampleDuration:     o.sampleDuration,
		ClosestPairRetries: o.closestPairRetries,
	}
	if o.configPath == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(o.configPath)
	if err != nil {
		return cfg, fmt.Errorf("rtscdiag: reading config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return cfg, fmt.Errorf("rtscdiag: parsing config: %w", err)
	}
	if fc.Samples != nil {
		cfg.Samples = *fc.Samples
	}
	if fc.SampleDuration != nil {
		cfg.SampleDuration = *fc.SampleDuration
	}
	if fc.ClosestPairRetries != nil {
		cfg.ClosestPairRetries = *fc.ClosestPairRetries
	}
	return cfg, nil
}

func newProbeCmd(o *opts) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "print platform capability signals and the resulting gate decision",
		RunE: func(cmd *cobra.Command, args []string) error {
			invariantTSC := cpuid.HasInvariantTSC()
			simd := cpuid.HasSIMD()
			src, srcErr := clocksource.Current()
			isTSC := clocksource.IsTSC()
			enabled := simd && (invariantTSC || isTSC)

			type result struct {
				InvariantTSC   bool   `json:"invariant_tsc"`
				HasSIMD        bool   `json:"has_simd"`
				Clocksource    string `json:"clocksource"`
				ClocksourceErr string `json:"clocksource_error,omitempty"`
				GateEnabled    bool   `json:"gate_enabled"`
				CellFootprintB int    `json:"coeff_cell_footprint_bytes"`
			}
			r := result{
				InvariantTSC:   invariantTSC,
				HasSIMD:        simd,
				Clocksource:    src,
				GateEnabled:    enabled,
				CellFootprintB: coeff.CellSize,
			}
			if srcErr != nil {
				r.ClocksourceErr = srcErr.Error()
			}

			if o.jsonPath != "" {
				return writeJSON(o.jsonPath, r)
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "invariant tsc (cpuid)\t%v\n", r.InvariantTSC)
			fmt.Fprintf(tw, "avx+fma (x/sys/cpu)\t%v\n", r.HasSIMD)
			fmt.Fprintf(tw, "clocksource\t%q\n", r.Clocksource)
			fmt.Fprintf(tw, "gate decision\t%v\n", r.GateEnabled)
			fmt.Fprintf(tw, "coeff cell footprint\t%s\n", types.Bytes(r.CellFootprintB).Humanized())
			return tw.Flush()
		},
	}
}

func newCalibrateCmd(o *opts) *cobra.Command {
	return &cobra.Command{
		Use:   "calibrate",
		Short: "initialize and run one calibration, printing the resulting report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}

			clock := rtsc.NewClock()
			slog.Info("initializing clock", "samples", cfg.Samples, "sample_duration", cfg.SampleDuration)
			clock.Init(cfg)
			if !clock.IsEnabled() {
				slog.Warn("TSC fast path not enabled on this host; falling back to OS clock")
			}

			report := clock.Calibrate(cfg)
			if o.jsonPath != "" {
				return writeJSON(o.jsonPath, report)
			}

			freq := types.Frequency(report.FrequencyHz)
			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "offset\t%.4f\n", report.Offset)
			fmt.Fprintf(tw, "coeff\t%.16f\n", report.Coeff)
			fmt.Fprintf(tw, "implied frequency\t%s\n", freq.Humanized())
			fmt.Fprintf(tw, "sample count\t%d\n", report.SampleCount)
			fmt.Fprintf(tw, "elapsed\t%s\n", report.Elapsed)
			return tw.Flush()
		},
	}
}

func newBenchCmd(o *opts) *cobra.Command {
	var iterations int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark Now against NowFromOS and print the speedup ratio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}

			clock := rtsc.NewClock()
			clock.Init(cfg)

			tscAvg := benchLoop(iterations, clock.Now)
			osAvg := benchLoop(iterations, clock.NowFromOS)

			type result struct {
				Enabled       bool    `json:"tsc_enabled"`
				Iterations    int     `json:"iterations"`
				TSCAvgNS      float64 `json:"tsc_avg_ns"`
				OSAvgNS       float64 `json:"os_avg_ns"`
				SpeedupFactor float64 `json:"speedup_factor"`
			}
			r := result{
				Enabled:       clock.IsEnabled(),
				Iterations:    iterations,
				TSCAvgNS:      tscAvg,
				OSAvgNS:       osAvg,
				SpeedupFactor: osAvg / tscAvg,
			}

			if o.jsonPath != "" {
				return writeJSON(o.jsonPath, r)
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "tsc enabled\t%v\n", r.Enabled)
			fmt.Fprintf(tw, "now() avg\t%.2f ns\n", r.TSCAvgNS)
			fmt.Fprintf(tw, "now_from_os() avg\t%.2f ns\n", r.OSAvgNS)
			fmt.Fprintf(tw, "speedup\t%.2fx\n", r.SpeedupFactor)
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 10_000_000, "iterations to average over")
	return cmd
}

func newDriftCmd(o *opts) *cobra.Command {
	var thresholdNS float64
	var rounds int
	cmd := &cobra.Command{
		Use:   "drift",
		Short: "sample rt0/os/rt1 triples and report the mean absolute delta",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}

			clock := rtsc.NewClock()
			clock.Init(cfg)

			var sumAbs float64
			ema := util.NewEMA(0.1)
			var smoothed float64
			for i := 0; i < rounds; i++ {
				rt0 := clock.Now()
				st := clock.NowFromOS()
				rt1 := clock.Now()
				mid := float64(rt0+rt1) / 2
				delta := mid - float64(st)
				if delta < 0 {
					delta = -delta
				}
				sumAbs += delta
				smoothed = ema.Next(delta)
			}
			meanAbs := sumAbs / float64(rounds)

			type result struct {
				Rounds      int     `json:"rounds"`
				MeanAbsNS   float64 `json:"mean_abs_delta_ns"`
				EMAAbsNS    float64 `json:"ema_abs_delta_ns"`
				ThresholdNS float64 `json:"threshold_ns"`
				Pass        bool    `json:"pass"`
			}
			r := result{Rounds: rounds, MeanAbsNS: meanAbs, EMAAbsNS: smoothed, ThresholdNS: thresholdNS, Pass: meanAbs < thresholdNS}

			if o.jsonPath != "" {
				if err := writeJSON(o.jsonPath, r); err != nil {
					return err
				}
			} else {
				fmt.Printf("mean |delta| over %d rounds: %.2f ns (ema %.2f ns, threshold %.2f ns)\n", r.Rounds, r.MeanAbsNS, r.EMAAbsNS, r.ThresholdNS)
			}

			if !r.Pass {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&thresholdNS, "threshold-ns", 2000, "fail if mean absolute delta exceeds this many nanoseconds")
	cmd.Flags().IntVar(&rounds, "rounds", 256, "number of rt0/os/rt1 triples to sample")
	return cmd
}

func benchLoop(iterations int, now func() int64) float64 {
	start := time.Now()
	for i := 0; i < iterations; i++ {
		now()
	}
	elapsed := time.Since(start)
	return float64(elapsed.Nanoseconds()) / float64(iterations)
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("rtscdiag: marshaling result: %w", err)
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
