// Package pick implements weighted-random selection over small candidate
// tables. Candidate sets are immutable after declaration; every call draws
// independently, so the package is safe for concurrent use as long as the
// supplied Source is.
package pick

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a defective candidate set: empty, or carrying a
// non-positive weight. Candidate tables are static, so hitting this means a
// table defect rather than a transient condition.
var ErrInvalidArgument = errors.New("invalid candidate set")

// Source supplies uniform random integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it; tests substitute seeded or scripted sources.
type Source interface {
	IntN(n int) int
}

// Candidate pairs a value with its relative selection weight.
type Candidate[T any] struct {
	Value  T
	Weight int
}

// C is shorthand for declaring candidate tables.
func C[T any](value T, weight int) Candidate[T] {
	return Candidate[T]{Value: value, Weight: weight}
}

// Select returns one candidate value. With weighted=false it is deterministic
// and returns the first-declared value without consuming randomness; the
// declared order encodes priority. With weighted=true the draw is
// probability-proportional to weight using a cumulative sum over left-closed
// right-open ranges.
func Select[T any](rng Source, candidates []Candidate[T], weighted bool) (T, error) {
	var zero T
	if len(candidates) == 0 {
		return zero, fmt.Errorf("%w: no candidates", ErrInvalidArgument)
	}
	total := 0
	for i, c := range candidates {
		if c.Weight <= 0 {
			return zero, fmt.Errorf("%w: weight %d at index %d", ErrInvalidArgument, c.Weight, i)
		}
		total += c.Weight
	}

	if !weighted {
		return candidates[0].Value, nil
	}

	draw := rng.IntN(total)
	for _, c := range candidates {
		if draw < c.Weight {
			return c.Value, nil
		}
		draw -= c.Weight
	}
	// Unreachable: draw < total and the ranges cover [0, total).
	return candidates[len(candidates)-1].Value, nil
}

// Weighted is Select with weighted=true.
func Weighted[T any](rng Source, candidates []Candidate[T]) (T, error) {
	return Select(rng, candidates, true)
}

// Bool draws true with probability trueWeight/(trueWeight+falseWeight).
func Bool(rng Source, trueWeight, falseWeight int) (bool, error) {
	return Weighted(rng, []Candidate[bool]{
		C(true, trueWeight),
		C(false, falseWeight),
	})
}

// Uniform draws one value uniformly from a non-empty slice.
func Uniform[T any](rng Source, values []T) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, fmt.Errorf("%w: no values", ErrInvalidArgument)
	}
	return values[rng.IntN(len(values))], nil
}
