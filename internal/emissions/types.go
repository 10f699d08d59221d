// Package emissions converts fuel consumption into CO2 emission series.
//
// An Aggregator keeps one sorted, duplicate-free series per fuel source and
// derives the combined series from them on demand. Timestamps are epoch
// milliseconds throughout; formatting them is left to the caller.
package emissions

import (
	"fmt"
	"strings"
)

// Source identifies a fuel source.
type Source int

const (
	// Coal is solid fuel.
	Coal Source = iota

	// Gas is natural gas.
	Gas
)

// Sources lists every fuel source in display order.
func Sources() []Source {
	return []Source{Coal, Gas}
}

// String returns the lower-case name of the source.
func (s Source) String() string {
	switch s {
	case Coal:
		return "coal"
	case Gas:
		return "gas"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Factor returns the emission factor applied to the source's consumption.
func (s Source) Factor() (float64, error) {
	switch s {
	case Coal:
		return CoalEmissionFactor, nil
	case Gas:
		return GasEmissionFactor, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownSource, s)
	}
}

// ParseSource parses "coal" or "gas", case-insensitively.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coal":
		return Coal, nil
	case "gas":
		return Gas, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSource, s)
	}
}

// Entry is one emission value for a single source.
type Entry struct {
	// Timestamp is the entry date in epoch milliseconds.
	Timestamp int64 `json:"timestamp" yaml:"timestamp"`

	// Value is the emitted CO2 in tonnes.
	Value float64 `json:"value" yaml:"value"`
}

// CombinedEntry is the coal and gas emission for one timestamp.
type CombinedEntry struct {
	Timestamp int64   `json:"timestamp"`
	Coal      float64 `json:"coal"`
	Gas       float64 `json:"gas"`
	Value     float64 `json:"value"`
}

// Reading is staged input for one source. A nil field is an absent value.
type Reading struct {
	Consumption *float64
	Date        *int64
}

// NewReading returns a Reading with both fields present.
func NewReading(consumption float64, date int64) Reading {
	return Reading{Consumption: &consumption, Date: &date}
}

// IsEmpty reports whether both consumption and date are absent.
func (r Reading) IsEmpty() bool {
	return r.Consumption == nil && r.Date == nil
}
