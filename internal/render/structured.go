package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"golang.org/x/text/language"

	"github.com/rshade/fuelco2/internal/emissions"
	"github.com/rshade/fuelco2/internal/greenops"
)

// Series names used by the machine-readable formats.
const (
	SeriesCoal     = "coal"
	SeriesGas      = "gas"
	SeriesCombined = "combined"
)

// LineProtocolMeasurement is the InfluxDB measurement for exported points.
const LineProtocolMeasurement = "co2_emissions"

// JSONOutput is the document written by RenderJSON.
type JSONOutput struct {
	Coal     []emissions.Entry         `json:"coal"`
	Gas      []emissions.Entry         `json:"gas"`
	Combined []emissions.CombinedEntry `json:"combined"`
	Summary  JSONSummary               `json:"summary"`
}

// JSONSummary holds per-series statistics.
type JSONSummary struct {
	Coal     emissions.Summary `json:"coal"`
	Gas      emissions.Summary `json:"gas"`
	Combined emissions.Summary `json:"combined"`

	// Equivalencies is omitted when the total is below the threshold.
	Equivalencies []greenops.EquivalencyResult `json:"equivalencies,omitempty"`
}

// NDJSONLine is one point written by RenderNDJSON.
type NDJSONLine struct {
	Series    string  `json:"series"`
	Timestamp int64   `json:"timestamp"`
	Value     float64 `json:"value"`
}

// RenderJSON writes the snapshot as one indented JSON document.
func RenderJSON(w io.Writer, s Snapshot) error {
	out := JSONOutput{
		Coal:     nonNil(s.Coal),
		Gas:      nonNil(s.Gas),
		Combined: s.Combined,
		Summary: JSONSummary{
			Coal:     emissions.Summarize(s.Coal),
			Gas:      emissions.Summarize(s.Gas),
			Combined: emissions.SummarizeCombined(s.Combined),
		},
	}
	if out.Combined == nil {
		out.Combined = []emissions.CombinedEntry{}
	}
	if eq, err := greenops.FromTonnes(totalTonnes(s), language.English); err == nil && !eq.IsEmpty {
		out.Summary.Equivalencies = eq.Results
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderNDJSON writes one JSON line per point: coal, then gas, then combined.
func RenderNDJSON(w io.Writer, s Snapshot) error {
	for _, line := range points(s) {
		data, err := json.Marshal(line)
		if err != nil {
			return fmt.Errorf("marshaling point: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("writing NDJSON line: %w", err)
		}
	}
	return nil
}

// RenderLineProtocol writes every point in InfluxDB line protocol with
// millisecond precision, tagged by source.
func RenderLineProtocol(w io.Writer, s Snapshot) error {
	for _, pt := range points(s) {
		p := write.NewPointWithMeasurement(LineProtocolMeasurement).
			AddTag("source", pt.Series).
			AddField("tonnes", pt.Value).
			SetTime(time.UnixMilli(pt.Timestamp))
		line := strings.TrimRight(write.PointToLineProtocol(p, time.Millisecond), "\n")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing line protocol: %w", err)
		}
	}
	return nil
}

func points(s Snapshot) []NDJSONLine {
	out := make([]NDJSONLine, 0, len(s.Coal)+len(s.Gas)+len(s.Combined))
	for _, e := range s.Coal {
		out = append(out, NDJSONLine{Series: SeriesCoal, Timestamp: e.Timestamp, Value: e.Value})
	}
	for _, e := range s.Gas {
		out = append(out, NDJSONLine{Series: SeriesGas, Timestamp: e.Timestamp, Value: e.Value})
	}
	for _, e := range s.Combined {
		out = append(out, NDJSONLine{Series: SeriesCombined, Timestamp: e.Timestamp, Value: e.Value})
	}
	return out
}

func nonNil(entries []emissions.Entry) []emissions.Entry {
	if entries == nil {
		return []emissions.Entry{}
	}
	return entries
}
