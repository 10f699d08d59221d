package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fuelco2/internal/emissions"
)

func TestCollector_ObservesAggregator(t *testing.T) {
	c := NewCollector()
	agg := emissions.New(emissions.WithObserver(c))

	_, err := agg.RecordCoal(emissions.NewReading(10, 1000))
	require.NoError(t, err)
	_, err = agg.RecordCoal(emissions.NewReading(10, 1000))
	require.ErrorIs(t, err, emissions.ErrDuplicateTimestamp)
	_, err = agg.RecordGas(emissions.NewReading(5000, 1000))
	require.ErrorIs(t, err, emissions.ErrInvalidInput)
	_, err = agg.RecordGas(emissions.NewReading(5, 1000))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, testutil.ToFloat64(c.recorded.WithLabelValues("coal")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(c.recorded.WithLabelValues("gas")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(c.rejected.WithLabelValues("coal", ReasonDuplicate)), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(c.rejected.WithLabelValues("gas", ReasonInvalid)), 1e-9)
	assert.InDelta(t, 5*emissions.GasEmissionFactor,
		testutil.ToFloat64(c.tonnes.WithLabelValues("gas")), 1e-9)
}

func TestCollector_RecordedCount(t *testing.T) {
	c := NewCollector()
	c.Recorded(emissions.Coal, emissions.Entry{Timestamp: 1, Value: 2})

	expected := `
# HELP fuelco2_entries_recorded_total Emission entries recorded per fuel source
# TYPE fuelco2_entries_recorded_total counter
fuelco2_entries_recorded_total{source="coal"} 1
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected),
		"fuelco2_entries_recorded_total"))
}

func TestCollector_Reset(t *testing.T) {
	c := NewCollector()
	c.Recorded(emissions.Gas, emissions.Entry{Timestamp: 1, Value: 2})
	c.Reset()
	assert.Equal(t, 0, testutil.CollectAndCount(c.tonnes))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := NewCollector()
	c.Recorded(emissions.Gas, emissions.Entry{Timestamp: 1, Value: 2.5})
	c.Rejected(emissions.Coal, assert.AnError)

	path := filepath.Join(t.TempDir(), "fuelco2.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fuelco2_emissions_tonnes{source="gas"} 2.5`)
	assert.Contains(t, string(data), `fuelco2_entries_rejected_total{reason="other",source="coal"} 1`)
}
