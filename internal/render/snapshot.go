// Package render turns emission series into text. Every function is pure:
// it takes a Snapshot and returns output, holding no state between calls.
package render

import (
	"time"

	"golang.org/x/text/language"

	"github.com/rshade/fuelco2/internal/emissions"
)

// Snapshot is the three series captured together.
type Snapshot struct {
	Coal     []emissions.Entry
	Gas      []emissions.Entry
	Combined []emissions.CombinedEntry
}

// Capture reads the current series of agg.
func Capture(agg *emissions.Aggregator) Snapshot {
	return Snapshot{
		Coal:     agg.Series(emissions.Coal),
		Gas:      agg.Series(emissions.Gas),
		Combined: agg.DeriveCombined(),
	}
}

// IsEmpty reports whether nothing has been recorded.
func (s Snapshot) IsEmpty() bool {
	return len(s.Coal) == 0 && len(s.Gas) == 0
}

// Series returns the entries of one source.
func (s Snapshot) Series(source emissions.Source) []emissions.Entry {
	if source == emissions.Gas {
		return s.Gas
	}
	return s.Coal
}

// Options tune presentation.
type Options struct {
	// Precision is the number of decimals for tonnes.
	Precision int

	// Locale selects labels and number formatting.
	Locale language.Tag

	// Location is the zone dates are displayed in. Nil means time.Local.
	Location *time.Location

	// Width and Height size the chart plot area in cells.
	Width  int
	Height int
}

// Default chart dimensions.
const (
	DefaultChartWidth  = 60
	DefaultChartHeight = 12
)

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

func (o Options) chartSize() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultChartWidth
	}
	if h <= 0 {
		h = DefaultChartHeight
	}
	return w, h
}
