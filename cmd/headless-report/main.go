package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/Garsondee/Covert-Cue/internal/cue"
)

// objectRow is the shared scene for every scenario: five cued objects in a
// row at z=15, labelled left to right.
var objectRow = []struct {
	label string
	pos   cue.Vec3
}{
	{"obj1", cue.Vec3{X: -10, Z: 15}},
	{"obj2", cue.Vec3{X: -5, Z: 15}},
	{"obj3", cue.Vec3{X: 0, Z: 15}},
	{"obj4", cue.Vec3{X: 5, Z: 15}},
	{"obj5", cue.Vec3{X: 10, Z: 15}},
}

type runStats struct {
	runIndex int
	seed     int64

	trackers        []*cue.Tracker
	suppressEvents  int
	activateEvents  int
	emptyWarns      int
	firstSuppress   map[string]int // object → frame, -1 if never
	meanSupprRatio  float64
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var scenario string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&frames, "frames", 1800, "frames per run (60 per simulated second)")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "sweep", "scenario name: sweep, fixate-each, noisy-fixation")
	flag.BoolVar(&verbose, "verbose", false, "record per-frame angle samples in the log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(1)
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		os.Exit(1)
	}
	script := scenarioScript(scenario, frames)
	if script == nil {
		fmt.Printf("error: unsupported scenario %q (supported: sweep, fixate-each, noisy-fixation)\n", scenario)
		os.Exit(1)
	}

	fmt.Printf("=== Headless Cue Report ===\n")
	fmt.Printf("scenario=%s runs=%d frames=%d seed_base=%d seed_step=%d\n\n", scenario, runs, frames, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runScenario(i+1, seed, frames, script, verbose)
		if err != nil {
			fmt.Printf("error: run %d failed: %v\n", i+1, err)
			os.Exit(1)
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// scenarioScript returns the gaze script for a named scenario, or nil.
func scenarioScript(name string, frames int) cue.GazeScript {
	viewer := cue.Vec3{} // gaze origin at the world origin for every scenario
	switch name {
	case "sweep":
		// One smooth left-to-right sweep across the object row.
		return func(frame int, _ *rand.Rand) cue.GazeSample {
			t := float64(frame) / float64(frames-1)
			x := -14 + 28*t
			return cue.GazeSample{Origin: viewer, Forward: cue.Vec3{X: x, Z: 15}}
		}
	case "fixate-each":
		// Dwell on each object in turn for an equal share of the run.
		return func(frame int, _ *rand.Rand) cue.GazeSample {
			idx := frame * len(objectRow) / frames
			if idx >= len(objectRow) {
				idx = len(objectRow) - 1
			}
			return cue.GazeSample{Origin: viewer, Forward: objectRow[idx].pos}
		}
	case "noisy-fixation":
		// Hold the centre object with ±4° of jitter, the kind of noise a
		// real eye tracker produces during fixation.
		return func(_ int, rng *rand.Rand) cue.GazeSample {
			jitter := (rng.Float64()*8 - 4) * math.Pi / 180
			base := math.Atan2(objectRow[2].pos.X, objectRow[2].pos.Z) + jitter
			return cue.GazeSample{Origin: viewer, Forward: cue.Vec3{X: math.Sin(base), Z: math.Cos(base)}}
		}
	}
	return nil
}

func runScenario(runIndex int, seed int64, frames int, script cue.GazeScript, verbose bool) (runStats, error) {
	opts := []cue.SimOption{
		cue.WithSeed(seed),
		cue.WithGazeScript(script),
	}
	if verbose {
		opts = append(opts, cue.WithVerboseLog())
	}
	for _, def := range objectRow {
		opts = append(opts, cue.WithObject(def.label, def.pos))
	}
	ts, err := cue.NewTestSim(opts...)
	if err != nil {
		return runStats{}, err
	}
	ts.Run(frames)

	stats := runStats{
		runIndex:      runIndex,
		seed:          seed,
		trackers:      ts.Trackers(),
		firstSuppress: map[string]int{},
	}
	for _, def := range objectRow {
		stats.firstSuppress[def.label] = -1
	}
	for _, e := range ts.Log.Entries() {
		switch {
		case e.Category == "state" && e.Key == "suppress":
			stats.suppressEvents++
			if stats.firstSuppress[e.Object] == -1 {
				stats.firstSuppress[e.Object] = e.Frame
			}
		case e.Category == "state" && e.Key == "activate":
			stats.activateEvents++
		case e.Category == "warn" && e.Key == "empty_window":
			stats.emptyWarns++
		}
	}
	total := 0.0
	for _, tr := range stats.trackers {
		total += tr.SuppressedRatio()
	}
	stats.meanSupprRatio = total / float64(len(stats.trackers))
	return stats, nil
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Print(cue.FormatReport(rs.trackers))
	fmt.Printf("event_totals: suppress=%d activate=%d empty_window_warns=%d\n",
		rs.suppressEvents, rs.activateEvents, rs.emptyWarns)
	first := "first_suppress_frames:"
	for _, tr := range rs.trackers {
		first += fmt.Sprintf(" %s=%d", tr.Label, rs.firstSuppress[tr.Label])
	}
	fmt.Println(first)
	fmt.Printf("mean_suppressed_ratio=%.3f\n\n", rs.meanSupprRatio)
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	var suppress, activate int
	var ratio float64
	for _, rs := range all {
		suppress += rs.suppressEvents
		activate += rs.activateEvents
		ratio += rs.meanSupprRatio
	}
	fmt.Printf("=== Aggregate over %d runs ===\n", len(all))
	fmt.Printf("total_suppress=%d total_activate=%d mean_suppressed_ratio=%.3f\n",
		suppress, activate, ratio/float64(len(all)))
}
