package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rshade/fuelco2/internal/config"
	"github.com/rshade/fuelco2/internal/emissions"
	"github.com/rshade/fuelco2/internal/greenops"
)

func day(y int, m time.Month, d int) int64 {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).UnixMilli()
}

func sampleSnapshot(t *testing.T) Snapshot {
	t.Helper()
	agg := emissions.New()
	_, err := agg.RecordCoal(emissions.NewReading(10, day(2024, time.March, 1)))
	require.NoError(t, err)
	_, err = agg.RecordGas(emissions.NewReading(5, day(2024, time.March, 1)))
	require.NoError(t, err)
	_, err = agg.RecordGas(emissions.NewReading(20, day(2024, time.March, 15)))
	require.NoError(t, err)
	return Capture(agg)
}

func englishOpts() Options {
	return Options{Precision: 3, Locale: language.English, Location: time.UTC}
}

func TestCapture(t *testing.T) {
	s := sampleSnapshot(t)
	assert.Len(t, s.Coal, 1)
	assert.Len(t, s.Gas, 2)
	assert.Len(t, s.Combined, 2)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, s.Gas, s.Series(emissions.Gas))
	assert.True(t, Capture(emissions.New()).IsEmpty())
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, sampleSnapshot(t), englishOpts()))
	out := buf.String()

	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "2024-03-15")
	assert.Contains(t, out, "21.197") // 10 * 0.768 * 2.76
	assert.Contains(t, out, "8.976")  // 5 * 1.129 * 1.59
	assert.Contains(t, out, "30.172")
	assert.Contains(t, out, "Total CO2 emissions")
	assert.Contains(t, out, "Equivalent to driving")

	// The coal column has no entry on March 15.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "2024-03-15") {
			assert.Contains(t, line, noValue)
		}
	}
}

func TestRenderTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, Snapshot{}, englishOpts()))
	assert.Equal(t, "No emissions recorded yet.\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, sampleSnapshot(t)))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Combined, 2)
	assert.InDelta(t, 10*emissions.CoalEmissionFactor+5*emissions.GasEmissionFactor,
		out.Combined[0].Value, 1e-6)
	assert.Equal(t, 2, out.Summary.Gas.Count)
	assert.Equal(t, 1, out.Summary.Coal.Count)

	require.Len(t, out.Summary.Equivalencies, 4)
	assert.Equal(t, greenops.EquivalencyTreeSeedlings, out.Summary.Equivalencies[2].Type)
	assert.Equal(t, greenops.EquivalencyHomeDays, out.Summary.Equivalencies[3].Type)
	assert.Positive(t, out.Summary.Equivalencies[3].Value)
}

func TestRenderJSON_EmptyUsesArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, Snapshot{}))
	assert.Contains(t, buf.String(), `"coal": []`)
	assert.Contains(t, buf.String(), `"combined": []`)
	assert.NotContains(t, buf.String(), "equivalencies")
}

func TestRenderNDJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderNDJSON(&buf, sampleSnapshot(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)

	var first NDJSONLine
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, SeriesCoal, first.Series)

	var last NDJSONLine
	require.NoError(t, json.Unmarshal([]byte(lines[4]), &last))
	assert.Equal(t, SeriesCombined, last.Series)
	assert.Equal(t, day(2024, time.March, 15), last.Timestamp)
}

func TestRenderLineProtocol(t *testing.T) {
	agg := emissions.New()
	_, err := agg.RecordGas(emissions.NewReading(5, 1000))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderLineProtocol(&buf, Capture(agg)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "co2_emissions,source=gas tonnes="))
	assert.True(t, strings.HasSuffix(lines[0], " 1000"))
	assert.True(t, strings.HasPrefix(lines[1], "co2_emissions,source=combined tonnes="))
}

func TestRenderChart(t *testing.T) {
	s := sampleSnapshot(t)
	out := RenderChart(s, englishOpts())

	assert.Contains(t, out, "CO2 emissions from solid fuel combustion")
	assert.Contains(t, out, "CO2 emissions from gas combustion")
	assert.Contains(t, out, "Total CO2 emissions")
	assert.Contains(t, out, "Mar 1")
	assert.Contains(t, out, "Mar 15")
	assert.Contains(t, out, string(MarkerTotal))

	// Rendering is pure.
	assert.Equal(t, out, RenderChart(s, englishOpts()))
}

func TestRenderChart_RussianLabels(t *testing.T) {
	opts := englishOpts()
	opts.Locale = language.Russian
	out := RenderChart(sampleSnapshot(t), opts)

	assert.Contains(t, out, "Выбросы СО2 общие")
	assert.Contains(t, out, "Март 1")
}

func TestRenderTable_RussianLabels(t *testing.T) {
	opts := englishOpts()
	opts.Locale = language.Russian

	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, sampleSnapshot(t), opts))
	out := buf.String()

	assert.Contains(t, out, "УГОЛЬ (т)")
	assert.Contains(t, out, "ВСЕГО (т)")
	assert.Contains(t, out, "Эквивалентно ~")
	assert.NotContains(t, out, "COAL")
	assert.NotContains(t, out, "Equivalent")
}

func TestRenderChart_SinglePointAndEmpty(t *testing.T) {
	agg := emissions.New()
	assert.Contains(t, RenderChart(Capture(agg), englishOpts()), "No emissions recorded yet.")

	_, err := agg.RecordCoal(emissions.NewReading(0, day(2024, time.January, 2)))
	require.NoError(t, err)
	out := RenderChart(Capture(agg), Options{Locale: language.English, Location: time.UTC, Width: 10, Height: 4})
	assert.Contains(t, out, "Jan 2")
}

func TestRender_Dispatch(t *testing.T) {
	s := sampleSnapshot(t)
	for _, format := range []string{
		config.FormatTable, config.FormatJSON, config.FormatNDJSON,
		config.FormatLineProtocol, config.FormatChart,
	} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, format, s, englishOpts()))
			assert.NotEmpty(t, buf.String())
		})
	}

	var buf bytes.Buffer
	assert.Error(t, Render(&buf, "xml", s, englishOpts()))
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, language.English, ParseLocale("en"))
	assert.Equal(t, language.Russian, ParseLocale("ru-RU"))
	assert.Equal(t, language.English, ParseLocale("de"))
	assert.Equal(t, language.English, ParseLocale("not a locale!"))
}

func TestLabels_AxisLabel(t *testing.T) {
	l := LabelsFor(language.English)
	assert.Equal(t, "Dec 31", l.AxisLabel(day(2023, time.December, 31), time.UTC))
	assert.Equal(t, l.Gas, l.SeriesName(emissions.Gas))
	assert.Equal(t, l.Coal, l.SeriesName(emissions.Coal))
}
