// Package classify maps a continuous percentage (efficiency, health,
// charge level) onto an ordered set of severity tiers.
package classify

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNonFiniteValue = errors.New("non-finite value")
	ErrUnknownTable   = errors.New("unknown threshold table")
	ErrInvalidTable   = errors.New("invalid threshold table")
)

type Tier string

const (
	TierExcellent      Tier = "excellent"
	TierGood           Tier = "good"
	TierNeedsAttention Tier = "needs_attention"
	TierFull           Tier = "full"
	TierMedium         Tier = "medium"
	TierLow            Tier = "low"
)

type ColorKey string

const (
	ColorGreen ColorKey = "green"
	ColorAmber ColorKey = "amber"
	ColorRed   ColorKey = "red"
	ColorGray  ColorKey = "gray"
)

// Band is one tier of a table. A value falls into the band when it is
// >= Min, or > Min when Strict is set. The last band of a table is the
// catch-all and its Min is ignored.
type Band struct {
	Min      float64  `yaml:"min" json:"min"`
	Strict   bool     `yaml:"strict" json:"strict"`
	Tier     Tier     `yaml:"tier" json:"tier"`
	Label    string   `yaml:"label" json:"label"`
	ColorKey ColorKey `yaml:"color" json:"color"`
}

func (b Band) admits(v float64) bool {
	if b.Strict {
		return v > b.Min
	}
	return v >= b.Min
}

// Table lists bands from best tier to worst.
type Table struct {
	Name  string `yaml:"name" json:"name"`
	Bands []Band `yaml:"bands" json:"bands"`
}

type Result struct {
	Table    string   `json:"table"`
	Value    float64  `json:"value"`
	Tier     Tier     `json:"tier"`
	Label    string   `json:"label"`
	ColorKey ColorKey `json:"color"`
	// Rank is the band index: 0 is the best tier.
	Rank int `json:"rank"`
}

// Validate checks that the bands are ordered by strictly descending
// thresholds and that there is a catch-all band.
func (t Table) Validate() error {
	if len(t.Bands) < 2 {
		return fmt.Errorf("%w %q: needs at least two bands", ErrInvalidTable, t.Name)
	}
	for i, b := range t.Bands {
		if b.Tier == "" {
			return fmt.Errorf("%w %q: band %d has no tier", ErrInvalidTable, t.Name, i)
		}
		if math.IsNaN(b.Min) || math.IsInf(b.Min, 0) {
			return fmt.Errorf("%w %q: band %d has non-finite min", ErrInvalidTable, t.Name, i)
		}
		if i > 0 && i < len(t.Bands)-1 && b.Min >= t.Bands[i-1].Min {
			return fmt.Errorf("%w %q: band %d min %.2f is not below %.2f", ErrInvalidTable, t.Name, i, b.Min, t.Bands[i-1].Min)
		}
	}
	return nil
}

func Classify(value float64, table Table) (Result, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Result{}, fmt.Errorf("classify %q: %w (%v)", table.Name, ErrNonFiniteValue, value)
	}
	if len(table.Bands) == 0 {
		return Result{}, fmt.Errorf("%w %q: no bands", ErrInvalidTable, table.Name)
	}

	last := len(table.Bands) - 1
	rank := last
	for i, b := range table.Bands[:last] {
		if b.admits(value) {
			rank = i
			break
		}
	}

	band := table.Bands[rank]
	return Result{
		Table:    table.Name,
		Value:    value,
		Tier:     band.Tier,
		Label:    band.Label,
		ColorKey: band.ColorKey,
		Rank:     rank,
	}, nil
}
