package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/rshade/fuelco2/internal/emissions"
	"github.com/rshade/fuelco2/internal/greenops"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// noValue marks a source with no entry on a date.
const noValue = "-"

// RenderTable writes one row per date with coal, gas and total tonnes.
func RenderTable(w io.Writer, s Snapshot, opts Options) error {
	labels := LabelsFor(opts.Locale)
	if s.IsEmpty() {
		_, err := fmt.Fprintln(w, labels.Empty)
		return err
	}

	f := greenops.NewFormatter(opts.Locale)
	loc := opts.location()
	coalAt := presence(s.Series(emissions.Coal))
	gasAt := presence(s.Series(emissions.Gas))

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', tabwriter.AlignRight)
	header := labels.Columns
	var rule [len(header)]string
	for i, h := range header {
		rule[i] = strings.Repeat("-", utf8.RuneCountInString(h))
	}
	if _, err := fmt.Fprintf(tw, "%s\t\n", strings.Join(header[:], "\t")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "%s\t\n", strings.Join(rule[:], "\t")); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, c := range s.Combined {
		coal, gas := noValue, noValue
		if coalAt[c.Timestamp] {
			coal = f.Float(c.Coal, opts.Precision)
		}
		if gasAt[c.Timestamp] {
			gas = f.Float(c.Gas, opts.Precision)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			FormatDate(c.Timestamp, loc), coal, gas, f.Float(c.Value, opts.Precision)); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	return writeFooter(w, s, opts)
}

// writeFooter writes the grand total and its equivalency line.
func writeFooter(w io.Writer, s Snapshot, opts Options) error {
	labels := LabelsFor(opts.Locale)
	f := greenops.NewFormatter(opts.Locale)
	total := totalTonnes(s)

	if _, err := fmt.Fprintf(w, "\n%s: %s t\n", labels.Total, f.Float(total, opts.Precision)); err != nil {
		return err
	}
	if line := EquivalencyLine(s, opts); line != "" {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// EquivalencyLine describes the snapshot's total as everyday equivalencies,
// or returns "" when the total is too small to be meaningful.
func EquivalencyLine(s Snapshot, opts Options) string {
	out, err := greenops.FromTonnes(totalTonnes(s), opts.Locale)
	if err != nil || out.IsEmpty {
		return ""
	}
	return out.DisplayText
}

func totalTonnes(s Snapshot) float64 {
	var total float64
	for _, c := range s.Combined {
		total += c.Value
	}
	return total
}

func presence(entries []emissions.Entry) map[int64]bool {
	m := make(map[int64]bool, len(entries))
	for _, e := range entries {
		m[e.Timestamp] = true
	}
	return m
}
