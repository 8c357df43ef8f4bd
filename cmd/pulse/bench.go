package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/pulse/pkg/pulse"
	"github.com/vango-dev/pulse/pkg/pulsex"
)

type benchReport struct {
	Rounds        int           `json:"rounds"`
	Duration      time.Duration `json:"duration_ns"`
	RoundsPerSec  float64       `json:"rounds_per_sec"`
	Firings       float64       `json:"firings"`
	Collisions    float64       `json:"collisions"`
	OutputEvents  int           `json:"output_events"`
	FinalChecksum int           `json:"final_checksum"`
}

func benchCmd() *cobra.Command {
	var (
		rounds     int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure propagation throughput of a representative graph",
		Long: `bench builds a graph exercising the interesting combinators — a diamond
feeding a fair merge (every round collides), a sampling switch, a bounded
history buffer and a fold — then drives it for the requested number of
rounds and reports throughput.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(rounds, jsonOutput)
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 100000, "number of propagation rounds to drive")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the report as JSON")
	return cmd
}

func runBench(rounds int, jsonOutput bool) error {
	if rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", rounds)
	}

	registry := prometheus.NewRegistry()
	metrics := pulse.NewMetrics(pulse.WithRegistry(registry))
	g := pulse.New(pulse.WithMetrics(metrics))

	ticks := pulse.NewInput(g, 0)
	grew := pulse.Map(func(n int) int { return n + 1 }, ticks.Stream())
	scaled := pulse.Map(func(n int) int { return n * 3 }, ticks.Stream())

	// Every round collides here, so resolve runs on the hot path.
	merged := pulsex.FairMerge(func(l, r int) int {
		if l > r {
			return l
		}
		return r
	}, grew, scaled)

	oddRounds := pulse.Map(func(n int) bool { return n%2 == 1 }, ticks.Stream())
	switched := pulsex.SwitchSample(oddRounds, merged, pulse.Constant(g, 0))
	history := pulsex.RunBuffer(64, switched)
	length := pulse.Map(func(buf []int) int { return len(buf) }, history)
	checksum := pulse.Fold(func(v, acc int) int { return acc ^ v }, 0, merged)

	events := 0
	switched.OnUpdate(func(int) { events++ })

	start := time.Now()
	for i := 1; i <= rounds; i++ {
		ticks.Emit(i)
	}
	elapsed := time.Since(start)
	_ = length

	report := benchReport{
		Rounds:        rounds,
		Duration:      elapsed,
		RoundsPerSec:  float64(rounds) / elapsed.Seconds(),
		Firings:       counterValue(registry, "pulse_firings_total"),
		Collisions:    counterValue(registry, "pulse_merge_collisions_total"),
		OutputEvents:  events,
		FinalChecksum: checksum.Value(),
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("rounds:       %d\n", report.Rounds)
	fmt.Printf("duration:     %s\n", report.Duration)
	fmt.Printf("rounds/sec:   %.0f\n", report.RoundsPerSec)
	fmt.Printf("firings:      %.0f\n", report.Firings)
	fmt.Printf("collisions:   %.0f\n", report.Collisions)
	fmt.Printf("out events:   %d\n", report.OutputEvents)
	fmt.Printf("checksum:     %d\n", report.FinalChecksum)
	return nil
}

// counterValue reads a single counter from the gathered metric families.
func counterValue(g prometheus.Gatherer, name string) float64 {
	families, err := g.Gather()
	if err != nil {
		return 0
	}
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, m := range fam.GetMetric() {
			if c := m.GetCounter(); c != nil {
				return c.GetValue()
			}
		}
	}
	return 0
}
