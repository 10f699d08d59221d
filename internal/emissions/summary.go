package emissions

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the values of one series.
type Summary struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`

	// First and Last are the earliest and latest timestamps.
	First int64 `json:"first"`
	Last  int64 `json:"last"`
}

// Summarize computes a Summary of entries, which must be sorted by
// timestamp. An empty slice yields the zero Summary.
func Summarize(entries []Entry) Summary {
	if len(entries) == 0 {
		return Summary{}
	}
	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}
	return summarize(values, entries[0].Timestamp, entries[len(entries)-1].Timestamp)
}

// SummarizeCombined computes a Summary of the combined values.
func SummarizeCombined(entries []CombinedEntry) Summary {
	if len(entries) == 0 {
		return Summary{}
	}
	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}
	return summarize(values, entries[0].Timestamp, entries[len(entries)-1].Timestamp)
}

func summarize(values []float64, first, last int64) Summary {
	return Summary{
		Count: len(values),
		Total: floats.Sum(values),
		Mean:  stat.Mean(values, nil),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
		First: first,
		Last:  last,
	}
}
