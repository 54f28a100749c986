// Command rule-sweep evolves every Wolfram rule from the same initial
// configuration and reports activity metrics, highlighting the rules
// that stay busy without dying out or saturating.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"wolfram-ca/internal/automaton"
	"wolfram-ca/internal/core"
)

type sweepResult struct {
	rule         int
	finalOn      int
	finalDensity float64
	meanDensity  float64
	changedSteps int
	score        float64
}

func (r sweepResult) String() string {
	return fmt.Sprintf("rule=%3d finalOn=%4d finalDensity=%.3f meanDensity=%.3f changedSteps=%d score=%.4f",
		r.rule, r.finalOn, r.finalDensity, r.meanDensity, r.changedSteps, r.score)
}

func main() {
	width := flag.Int("width", 63, "initial configuration width in cells")
	gens := flag.Int("gens", 64, "generations to evolve per rule")
	preset := flag.String("init", "single", "initial configuration seeder (single, random)")
	seed := flag.Int64("seed", 42, "seed for the initial configuration")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "rules to list in the final report")
	flag.Parse()

	// Every rule evolves the same initial row; runs are independent,
	// so they fan out across the worker pool.
	initial, err := automaton.Seed(*preset, *width, core.NewRNG(*seed))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Sweeping 256 rules (%d workers, %d generations, width %d)\n", *workers, *gens, *width)

	jobs := make(chan int)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				res, err := runRule(n, initial, *gens)
				if err != nil {
					log.Fatal(err)
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
		for n := 0; n <= 255; n++ {
			jobs <- n
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].score > all[j].score })
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}
}

func runRule(n int, initial automaton.Row, gens int) (sweepResult, error) {
	hist, err := automaton.Simulate(n, initial, gens)
	if err != nil {
		return sweepResult{}, err
	}

	res := sweepResult{rule: n}
	var densitySum float64
	for i, row := range hist {
		on := countOn(row)
		densitySum += float64(on) / float64(len(row))
		if i > 0 && interiorChanged(hist[i-1], row) {
			res.changedSteps++
		}
	}

	final := hist.Final()
	res.finalOn = countOn(final)
	res.finalDensity = float64(res.finalOn) / float64(len(final))
	res.meanDensity = densitySum / float64(len(hist))
	// Rules that keep changing at a middling density read as the most
	// interesting; dead and saturated rules both score zero-ish.
	activity := float64(res.changedSteps) / float64(max(gens, 1))
	res.score = res.meanDensity * (1 - res.meanDensity) * activity
	return res, nil
}

func countOn(row automaton.Row) int {
	total := 0
	for _, c := range row {
		if c == automaton.On {
			total++
		}
	}
	return total
}

// interiorChanged reports whether next differs from prev on the cells
// they share, ignoring the one-cell growth margin.
func interiorChanged(prev, next automaton.Row) bool {
	for i, c := range prev {
		if next[i+1] != c {
			return true
		}
	}
	return false
}
