// Command grid-sweep tabulates how a range of tile counts resolves into
// block grids.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"mosaic/internal/grid"
)

type sweepResult struct {
	res   grid.Resolution
	prime bool
}

func main() {
	from := flag.Int("from", 0, "first tile count")
	to := flag.Int("to", 64, "last tile count")
	minColumns := flag.Int("min-columns", 4, "minimum tiles per block side")
	strategy := flag.String("strategy", string(grid.StrategyBalanced), "column strategy (balanced|sqrt)")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	st, err := grid.ParseStrategy(*strategy)
	if err != nil {
		log.Fatal(err)
	}
	if err := checkFlags(*from, *to, *workers); err != nil {
		log.Fatal(err)
	}
	resolver := grid.Resolver{Options: grid.Options{MinColumns: *minColumns, Strategy: st}}

	jobs := make(chan int)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				results <- sweepResult{res: resolver.Resolve(n), prime: grid.IsPrime(n)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for n := *from; n <= *to; n++ {
			jobs <- n
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	padded := 0
	for r := range results {
		all = append(all, r)
		if r.res.Padded() > 0 {
			padded++
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].res.Requested < all[j].res.Requested })

	fmt.Printf("%6s %6s %6s %5s %5s %6s %s\n", "count", "prime", "tiles", "cols", "rows", "pad", "aspect")
	for _, r := range all {
		res := r.res
		aspect := 0.0
		if res.Rows > 0 {
			aspect = float64(res.Columns) / float64(res.Rows)
		}
		fmt.Printf("%6d %6t %6d %5d %5d %6d %.2f\n",
			res.Requested, r.prime, res.Count, res.Columns, res.Rows, res.Padded(), aspect)
	}
	fmt.Printf("\n%d counts resolved (%d padded) in %s\n", len(all), padded, time.Since(start).Round(time.Microsecond))
}

func checkFlags(from, to, workers int) error {
	if workers < 1 {
		return fmt.Errorf("-workers must be at least 1, got %d", workers)
	}
	if to < from {
		return fmt.Errorf("-to (%d) must not be below -from (%d)", to, from)
	}
	return nil
}
