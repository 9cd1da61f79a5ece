// Package metrics reduces collections of entities or readings into summary
// statistics. Every function is pure: no state is kept between calls and
// empty input yields zero values instead of an error.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"liyu1981.xyz/solar-dashboard-service/pkg/models"
)

// ErrNonFiniteValue is returned when a selector or operand yields NaN or ±Inf.
var ErrNonFiniteValue = errors.New("non-finite value")

// ErrUnknownStatus is returned when an item carries none of the status tags.
var ErrUnknownStatus = errors.New("unknown status")

type Selector[T any] func(T) float64

type Direction int

const (
	Max Direction = iota
	Min
)

func (d Direction) String() string {
	if d == Min {
		return "min"
	}
	return "max"
}

// Aggregate is the summary of one field across a collection.
type Aggregate struct {
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// StatusCounts partitions a collection by entity status.
type StatusCounts map[models.Status]int

func (sc StatusCounts) Total() int {
	total := 0
	for _, n := range sc {
		total += n
	}
	return total
}

func checkFinite(v float64, index int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("item %d: %w (%v)", index, ErrNonFiniteValue, v)
	}
	return nil
}

func Sum[T any](items []T, sel Selector[T]) (float64, error) {
	total := 0.0
	for i, item := range items {
		v := sel(item)
		if err := checkFinite(v, i); err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// Average returns Sum/len(items), or 0 for an empty collection.
func Average[T any](items []T, sel Selector[T]) (float64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	total, err := Sum(items, sel)
	if err != nil {
		return 0, err
	}
	return total / float64(len(items)), nil
}

// Ratio expresses num as a percentage of den. A zero denominator yields 0.
func Ratio(num, den float64) (float64, error) {
	if err := checkFinite(num, 0); err != nil {
		return 0, fmt.Errorf("numerator: %w", err)
	}
	if err := checkFinite(den, 1); err != nil {
		return 0, fmt.Errorf("denominator: %w", err)
	}
	if den == 0 {
		return 0, nil
	}
	return num / den * 100, nil
}

func CountBy[T any](items []T, pred func(T) bool) int {
	count := 0
	for _, item := range items {
		if pred(item) {
			count++
		}
	}
	return count
}

// CountByStatus counts items per status. All four status tags are present
// in the result and the counts sum to len(items). An item with any other
// tag fails the whole count.
func CountByStatus[T any](items []T, status func(T) models.Status) (StatusCounts, error) {
	counts := make(StatusCounts, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		counts[s] = 0
	}
	for i, item := range items {
		s := status(item)
		if !s.Valid() {
			return nil, fmt.Errorf("item %d: %w %q", i, ErrUnknownStatus, s)
		}
		counts[s]++
	}
	return counts, nil
}

// StatusShare is the percentage of a collection in each reported state.
type StatusShare struct {
	OperationalPercent float64 `json:"operationalPercent"`
	WarningPercent     float64 `json:"warningPercent"`
	ErrorPercent       float64 `json:"errorPercent"`
}

// Share converts the counts into percentages of their total. Empty counts
// give zero shares.
func (sc StatusCounts) Share() StatusShare {
	total := float64(sc.Total())
	// counts are finite, so Ratio cannot fail here
	operational, _ := Ratio(float64(sc[models.StatusOnline]), total)
	warning, _ := Ratio(float64(sc[models.StatusWarning]), total)
	failed, _ := Ratio(float64(sc[models.StatusError]), total)
	return StatusShare{
		OperationalPercent: operational,
		WarningPercent:     warning,
		ErrorPercent:       failed,
	}
}

// TopExtreme returns the item with the largest (Max) or smallest (Min)
// selected value. Ties keep the earliest item. ok is false for empty input.
func TopExtreme[T any](items []T, sel Selector[T], dir Direction) (best T, ok bool, err error) {
	var bestValue float64
	for i, item := range items {
		v := sel(item)
		if err := checkFinite(v, i); err != nil {
			var zero T
			return zero, false, err
		}
		if !ok || (dir == Max && v > bestValue) || (dir == Min && v < bestValue) {
			best, bestValue, ok = item, v, true
		}
	}
	return best, ok, nil
}

func Summarize[T any](items []T, sel Selector[T]) (Aggregate, error) {
	agg := Aggregate{Count: len(items)}
	if len(items) == 0 {
		return agg, nil
	}

	var err error
	if agg.Total, err = Sum(items, sel); err != nil {
		return Aggregate{}, err
	}
	agg.Average = agg.Total / float64(agg.Count)

	hi, _, _ := TopExtreme(items, sel, Max)
	lo, _, _ := TopExtreme(items, sel, Min)
	agg.Max = sel(hi)
	agg.Min = sel(lo)

	return agg, nil
}

// Round rounds v to the given number of decimals for display.
func Round(v float64, decimals int) float64 {
	multiplier := math.Pow10(decimals)
	return math.Round(v*multiplier) / multiplier
}
