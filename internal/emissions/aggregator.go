package emissions

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// Observer is notified of every record outcome.
type Observer interface {
	Recorded(source Source, entry Entry)
	Rejected(source Source, err error)
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger used for debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Aggregator) { a.logger = l }
}

// WithObserver registers an observer for record outcomes.
func WithObserver(o Observer) Option {
	return func(a *Aggregator) { a.observer = o }
}

// Aggregator owns the coal and gas series.
//
// It is not safe for concurrent use: a caller that shares one instance
// across goroutines must serialize Record calls itself.
type Aggregator struct {
	coal []Entry
	gas  []Entry

	logger   zerolog.Logger
	observer Observer
}

// New returns an empty Aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RecordCoal records a coal reading. See Record.
func (a *Aggregator) RecordCoal(r Reading) (Entry, error) {
	return a.Record(Coal, r)
}

// RecordGas records a gas reading. See Record.
func (a *Aggregator) RecordGas(r Reading) (Entry, error) {
	return a.Record(Gas, r)
}

// Record converts the reading into an Entry and inserts it into the
// source's series, keeping it sorted by timestamp.
//
// A reading with neither consumption nor date is ignored: Record returns
// a zero Entry and nil. Any other invalid reading fails with
// ErrInvalidInput, and a timestamp already present in the series fails
// with ErrDuplicateTimestamp. Failures leave the series untouched.
func (a *Aggregator) Record(source Source, r Reading) (Entry, error) {
	if r.IsEmpty() {
		a.logger.Debug().Str("source", source.String()).Msg("empty reading ignored")
		return Entry{}, nil
	}

	factor, err := source.Factor()
	if err != nil {
		return Entry{}, a.reject(source, err)
	}
	if err := ValidateReading(r); err != nil {
		return Entry{}, a.reject(source, err)
	}

	series := a.series(source)
	ts := *r.Date
	idx, found := slices.BinarySearchFunc(*series, ts, func(e Entry, t int64) int {
		return cmp.Compare(e.Timestamp, t)
	})
	if found {
		return Entry{}, a.reject(source,
			fmt.Errorf("%w: %s already has an entry at %d", ErrDuplicateTimestamp, source, ts))
	}

	entry := Entry{Timestamp: ts, Value: *r.Consumption * factor}
	*series = slices.Insert(*series, idx, entry)

	a.logger.Debug().
		Str("source", source.String()).
		Int64("timestamp", entry.Timestamp).
		Float64("tonnes", entry.Value).
		Msg("emission recorded")
	if a.observer != nil {
		a.observer.Recorded(source, entry)
	}
	return entry, nil
}

// reject logs and reports a failed record and returns err unchanged.
func (a *Aggregator) reject(source Source, err error) error {
	a.logger.Debug().Str("source", source.String()).Err(err).Msg("reading rejected")
	if a.observer != nil {
		a.observer.Rejected(source, err)
	}
	return err
}

// series returns a pointer to the backing slice for source. Unknown
// sources are filtered out by Source.Factor before this is reached.
func (a *Aggregator) series(source Source) *[]Entry {
	if source == Gas {
		return &a.gas
	}
	return &a.coal
}

// Series returns a copy of the source's entries, ascending by timestamp.
// Unknown sources yield nil.
func (a *Aggregator) Series(source Source) []Entry {
	if _, err := source.Factor(); err != nil {
		return nil
	}
	return slices.Clone(*a.series(source))
}

// Len returns the number of entries recorded for source.
func (a *Aggregator) Len(source Source) int {
	if _, err := source.Factor(); err != nil {
		return 0
	}
	return len(*a.series(source))
}

// DeriveCombined merges both series into one entry per timestamp. A
// timestamp missing from one source contributes 0 for that source. The
// result is recomputed from the current series on every call.
func (a *Aggregator) DeriveCombined() []CombinedEntry {
	out := make([]CombinedEntry, 0, len(a.coal)+len(a.gas))

	// Both series are sorted, so a two-way merge yields sorted output.
	i, j := 0, 0
	for i < len(a.coal) || j < len(a.gas) {
		var ce CombinedEntry
		switch {
		case j >= len(a.gas) || (i < len(a.coal) && a.coal[i].Timestamp < a.gas[j].Timestamp):
			ce = CombinedEntry{Timestamp: a.coal[i].Timestamp, Coal: a.coal[i].Value}
			i++
		case i >= len(a.coal) || a.gas[j].Timestamp < a.coal[i].Timestamp:
			ce = CombinedEntry{Timestamp: a.gas[j].Timestamp, Gas: a.gas[j].Value}
			j++
		default:
			ce = CombinedEntry{Timestamp: a.coal[i].Timestamp, Coal: a.coal[i].Value, Gas: a.gas[j].Value}
			i++
			j++
		}
		ce.Value = ce.Coal + ce.Gas
		out = append(out, ce)
	}
	return out
}

// Clear removes every recorded entry from both series.
func (a *Aggregator) Clear() {
	a.coal = nil
	a.gas = nil
	a.logger.Debug().Msg("emission series cleared")
}
