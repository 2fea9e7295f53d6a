// Command dilemma-sweep runs every preset across a range of seeds on a worker
// pool and prints a comparison table of the outcomes.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"spatial-pd/internal/presets"
	"spatial-pd/internal/recorder"
	"spatial-pd/internal/sims/dilemma"
)

type job struct {
	preset presets.Preset
	seed   int64
}

type runResult struct {
	preset       string
	seed         int64
	finalCoop    float64
	finalScore   float64
	clustering   float64
	roundsStable int
}

type presetSummary struct {
	preset     string
	runs       int
	meanCoop   float64
	stdCoop    float64
	meanScore  float64
	meanClust  float64
	stableRuns int
}

func main() {
	rounds := flag.Int("rounds", 0, "rounds per run (0 uses each preset's run length)")
	seeds := flag.Int("seeds", 10, "seeds per preset, starting at -seed-base")
	seedBase := flag.Int64("seed-base", 1, "first seed of the range")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	catalog, err := presets.All()
	if err != nil {
		log.Fatalf("load presets: %v", err)
	}

	var sets []job
	for _, p := range catalog {
		for s := 0; s < *seeds; s++ {
			sets = append(sets, job{preset: p, seed: *seedBase + int64(s)})
		}
	}

	fmt.Printf("Sweeping %d presets x %d seeds (%d workers)\n", len(catalog), *seeds, *workers)

	jobs := make(chan job)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := runScenario(j, *rounds)
				if err != nil {
					log.Printf("%s seed %d: %v", j.preset.Name, j.seed, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range sets {
			jobs <- j
		}
		close(jobs)
	}()

	start := time.Now()
	byPreset := make(map[string][]runResult)
	for res := range results {
		byPreset[res.preset] = append(byPreset[res.preset], res)
	}
	elapsed := time.Since(start)

	summaries := make([]presetSummary, 0, len(byPreset))
	for name, runs := range byPreset {
		summaries = append(summaries, summarize(name, runs))
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].meanCoop > summaries[j].meanCoop })

	fmt.Printf("\nResults by final cooperation rate (elapsed %s):\n", elapsed.Round(time.Millisecond))
	fmt.Printf("%-28s %6s %12s %10s %10s %8s\n",
		"preset", "runs", "coop", "score", "cluster", "stable")
	for _, s := range summaries {
		fmt.Printf("%-28s %6d %.3f±%.3f %10.2f %10.3f %5d/%d\n",
			s.preset, s.runs, s.meanCoop, s.stdCoop, s.meanScore, s.meanClust, s.stableRuns, s.runs)
	}
}

func runScenario(j job, rounds int) (runResult, error) {
	cfg := j.preset.Config()
	cfg.Seed = j.seed

	world, err := dilemma.NewWithConfig(cfg)
	if err != nil {
		return runResult{}, err
	}

	sink := recorder.NewMemorySink()
	total := rounds
	if total <= 0 {
		total = j.preset.Rounds
	}

	if err := sink.WriteRound(world.Metrics()); err != nil {
		return runResult{}, err
	}
	for i := 0; i < total; i++ {
		world.Step()
		if err := sink.WriteRound(world.Metrics()); err != nil {
			return runResult{}, err
		}
	}

	history := sink.Rounds()
	m := history[len(history)-1]
	return runResult{
		preset:       j.preset.Name,
		seed:         j.seed,
		finalCoop:    m.CooperationRate,
		finalScore:   m.AverageScore,
		clustering:   m.ClusteringCooperators,
		roundsStable: stableTail(history),
	}, nil
}

// stableTail counts the trailing rounds whose cooperation rate matches the
// final one, a cheap proxy for how long the run has been frozen.
func stableTail(history []dilemma.Metrics) int {
	if len(history) == 0 {
		return 0
	}
	final := history[len(history)-1].CooperationRate
	n := 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].CooperationRate != final {
			break
		}
		n++
	}
	return n
}

func summarize(name string, runs []runResult) presetSummary {
	s := presetSummary{preset: name, runs: len(runs)}
	if len(runs) == 0 {
		return s
	}
	for _, r := range runs {
		s.meanCoop += r.finalCoop
		s.meanScore += r.finalScore
		s.meanClust += r.clustering
		if r.roundsStable >= 10 {
			s.stableRuns++
		}
	}
	n := float64(len(runs))
	s.meanCoop /= n
	s.meanScore /= n
	s.meanClust /= n

	variance := 0.0
	for _, r := range runs {
		d := r.finalCoop - s.meanCoop
		variance += d * d
	}
	s.stdCoop = math.Sqrt(variance / n)
	return s
}
