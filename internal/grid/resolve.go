// Package grid picks column counts that lay N tiles out as a balanced,
// near-square rectangle.
package grid

import "fmt"

// Strategy selects how a tile count is turned into a column count.
type Strategy string

const (
	// StrategyBalanced pads the count until it factors into two central
	// divisors that are both at least MinColumns.
	StrategyBalanced Strategy = "balanced"
	// StrategySqrt uses floor(sqrt(count)) columns without padding. Rows may
	// be ragged and prime counts are not avoided.
	StrategySqrt Strategy = "sqrt"
)

// ParseStrategy converts a flag value into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyBalanced, "":
		return StrategyBalanced, nil
	case StrategySqrt:
		return StrategySqrt, nil
	}
	return "", fmt.Errorf("grid: unknown strategy %q", s)
}

// Options configures a Resolver.
type Options struct {
	// MinColumns is the smallest acceptable side length of a block.
	MinColumns int
	// Placeholder replaces counts below one. Zero means MinColumns².
	Placeholder int
	Strategy    Strategy
}

// DefaultOptions returns the standard configuration: at least four tiles per
// side and a 4×4 placeholder block.
func DefaultOptions() Options {
	return Options{MinColumns: 4, Placeholder: 16, Strategy: StrategyBalanced}
}

func (o Options) normalized() Options {
	if o.MinColumns < 1 {
		o.MinColumns = 1
	}
	if o.Placeholder < 1 {
		o.Placeholder = o.MinColumns * o.MinColumns
	}
	if o.Strategy == "" {
		o.Strategy = StrategyBalanced
	}
	return o
}

// Resolution is the outcome of resolving a tile count.
type Resolution struct {
	// Requested is the count the caller asked for.
	Requested int
	// Count is the number of tiles laid out per block after padding.
	Count   int
	Columns int
	Rows    int
	// Blank marks a placeholder layout built because Requested < 1. Tiles of
	// a blank layout carry no click behaviour.
	Blank bool
}

// Padded is the number of tiles repeated to reach Count.
func (r Resolution) Padded() int {
	if r.Blank {
		return 0
	}
	return r.Count - r.Requested
}

// Resolver turns tile counts into column counts. The zero value behaves like
// DefaultOptions except that MinColumns is 1.
type Resolver struct {
	Options Options
}

// NewResolver returns a Resolver with the given options.
func NewResolver(opts Options) Resolver {
	return Resolver{Options: opts}
}

// Resolve picks the padded tile count and column count for count. It is
// deterministic and total: every input yields a result.
func (r Resolver) Resolve(count int) Resolution {
	opts := r.Options.normalized()
	res := Resolution{Requested: count}
	working := count
	if working < 1 {
		working = opts.Placeholder
		res.Blank = true
	}

	switch opts.Strategy {
	case StrategySqrt:
		res.Count, res.Columns = working, sqrtColumns(working, opts.MinColumns)
	default:
		res.Count, res.Columns = balance(working, opts.MinColumns)
	}
	res.Rows = (res.Count + res.Columns - 1) / res.Columns
	return res
}

// Resolve is shorthand for NewResolver(DefaultOptions()).Resolve(count).
func Resolve(count int) Resolution {
	return NewResolver(DefaultOptions()).Resolve(count)
}

// balance pads n until it is composite and either a perfect square with a
// side of at least minSide, or has an even number of divisors whose central
// pair are both at least minSide. Every iteration re-checks primality and
// squareness.
func balance(n, minSide int) (count, columns int) {
	for {
		for IsPrime(n) {
			n++
		}
		if r := isqrt(n); r*r == n && r >= minSide {
			return n, r
		}
		if lo, hi, ok := centralPair(Divisors(n)); ok && lo >= minSide && hi >= minSide {
			return n, max(lo, hi)
		}
		n++
	}
}

func sqrtColumns(n, minSide int) int {
	return max(isqrt(n), minSide)
}
