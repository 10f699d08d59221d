// Package metrics records emission activity in Prometheus collectors and
// exports them in the node_exporter textfile format.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rshade/fuelco2/internal/emissions"
)

// Rejection reasons used as label values.
const (
	ReasonDuplicate = "duplicate_timestamp"
	ReasonInvalid   = "invalid_input"
	ReasonOther     = "other"
)

// Collector implements emissions.Observer with Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry
	recorded *prometheus.CounterVec
	rejected *prometheus.CounterVec
	tonnes   *prometheus.GaugeVec
}

var _ emissions.Observer = (*Collector)(nil)

// NewCollector registers the emission metrics on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		recorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fuelco2",
			Name:      "entries_recorded_total",
			Help:      "Emission entries recorded per fuel source",
		}, []string{"source"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fuelco2",
			Name:      "entries_rejected_total",
			Help:      "Readings rejected per fuel source and reason",
		}, []string{"source", "reason"}),
		tonnes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "fuelco2",
			Name:      "emissions_tonnes",
			Help:      "Total recorded CO2 emissions in tonnes per fuel source",
		}, []string{"source"}),
	}
	c.registry.MustRegister(c.recorded, c.rejected, c.tonnes)
	return c
}

// Registry returns the registry holding the collectors.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Recorded counts a recorded entry and adds its emissions.
func (c *Collector) Recorded(source emissions.Source, entry emissions.Entry) {
	c.recorded.WithLabelValues(source.String()).Inc()
	c.tonnes.WithLabelValues(source.String()).Add(entry.Value)
}

// Rejected counts a rejected reading.
func (c *Collector) Rejected(source emissions.Source, err error) {
	c.rejected.WithLabelValues(source.String(), reason(err)).Inc()
}

// Reset zeroes the emission gauges, matching an aggregator Clear.
func (c *Collector) Reset() {
	c.tonnes.Reset()
}

// WriteTextfile writes every metric to path in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}

func reason(err error) string {
	switch {
	case errors.Is(err, emissions.ErrDuplicateTimestamp):
		return ReasonDuplicate
	case errors.Is(err, emissions.ErrInvalidInput):
		return ReasonInvalid
	default:
		return ReasonOther
	}
}
