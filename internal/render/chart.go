package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/fuelco2/internal/greenops"
)

// yAxisTicks is the number of labelled rows on the value axis.
const yAxisTicks = 3

type chartSeries struct {
	name   string
	marker rune
	style  lipgloss.Style
	points []chartPoint
}

type chartPoint struct {
	ts    int64
	value float64
}

// RenderChart draws a scatter chart of the coal, gas and total series with
// month/day date labels and a legend.
func RenderChart(s Snapshot, opts Options) string {
	labels := LabelsFor(opts.Locale)
	if s.IsEmpty() {
		return SubtleStyle.Render(labels.Empty)
	}

	width, height := opts.chartSize()
	series := chartSeriesOf(s, labels)

	minTs, maxTs, maxV := bounds(series)
	if maxV <= 0 {
		maxV = 1
	}

	grid := make([][]rune, height)
	owner := make([][]int, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
		owner[r] = make([]int, width)
		for c := range owner[r] {
			owner[r][c] = -1
		}
	}

	for si, cs := range series {
		for _, p := range cs.points {
			col := scale(float64(p.ts-minTs), float64(maxTs-minTs), width)
			row := height - 1 - scale(p.value, maxV, height)
			grid[row][col] = cs.marker
			owner[row][col] = si
		}
	}

	f := greenops.NewFormatter(opts.Locale)
	yLabels := make(map[int]string, yAxisTicks)
	for i := 0; i < yAxisTicks; i++ {
		v := maxV * float64(i) / float64(yAxisTicks-1)
		yLabels[height-1-scale(v, maxV, height)] = f.Float(v, opts.Precision)
	}
	yWidth := 0
	for _, l := range yLabels {
		yWidth = max(yWidth, lipgloss.Width(l))
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(labels.ValueAxis))
	b.WriteString("\n")

	for r := 0; r < height; r++ {
		b.WriteString(AxisStyle.Render(padLeft(yLabels[r], yWidth) + " │"))
		for c := 0; c < width; c++ {
			if owner[r][c] < 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(series[owner[r][c]].style.Render(string(grid[r][c])))
		}
		b.WriteString("\n")
	}

	b.WriteString(AxisStyle.Render(strings.Repeat(" ", yWidth) + " └" + strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(AxisStyle.Render(strings.Repeat(" ", yWidth+2) + xAxisLabels(s, labels, opts, width, minTs, maxTs)))
	b.WriteString("\n")
	b.WriteString(AxisStyle.Render(strings.Repeat(" ", yWidth+2) + labels.DateAxis))
	b.WriteString("\n\n")

	for _, cs := range series {
		b.WriteString(cs.style.Render(string(cs.marker)))
		b.WriteString(" ")
		b.WriteString(cs.name)
		b.WriteString("\n")
	}

	if line := EquivalencyLine(s, opts); line != "" {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render(line))
		b.WriteString("\n")
	}

	return BoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func chartSeriesOf(s Snapshot, labels Labels) []chartSeries {
	coal := chartSeries{name: labels.Coal, marker: MarkerCoal, style: coalStyle}
	for _, e := range s.Coal {
		coal.points = append(coal.points, chartPoint{e.Timestamp, e.Value})
	}
	gas := chartSeries{name: labels.Gas, marker: MarkerGas, style: gasStyle}
	for _, e := range s.Gas {
		gas.points = append(gas.points, chartPoint{e.Timestamp, e.Value})
	}
	total := chartSeries{name: labels.Total, marker: MarkerTotal, style: totalStyle}
	for _, e := range s.Combined {
		total.points = append(total.points, chartPoint{e.Timestamp, e.Value})
	}
	return []chartSeries{coal, gas, total}
}

func bounds(series []chartSeries) (minTs, maxTs int64, maxV float64) {
	minTs, maxTs = math.MaxInt64, math.MinInt64
	for _, cs := range series {
		for _, p := range cs.points {
			minTs = min(minTs, p.ts)
			maxTs = max(maxTs, p.ts)
			maxV = max(maxV, p.value)
		}
	}
	return minTs, maxTs, maxV
}

// scale maps v in [0, span] onto a cell index in [0, cells). A zero span
// maps everything to the middle cell.
func scale(v, span float64, cells int) int {
	if span <= 0 {
		return cells / 2 //nolint:mnd // Center a single point.
	}
	idx := int(math.Round(v / span * float64(cells-1)))
	return min(max(idx, 0), cells-1)
}

// xAxisLabels places the first and last date under the plot, and the
// middle date when there is room for it.
func xAxisLabels(s Snapshot, labels Labels, opts Options, width int, minTs, maxTs int64) string {
	line := []rune(strings.Repeat(" ", width))
	place := func(ts int64) {
		text := []rune(labels.AxisLabel(ts, opts.location()))
		col := scale(float64(ts-minTs), float64(maxTs-minTs), width)
		start := min(max(col-len(text)/2, 0), max(width-len(text), 0)) //nolint:mnd // Center label.
		for i, r := range text {
			if start+i < width {
				line[start+i] = r
			}
		}
	}

	place(minTs)
	if maxTs != minTs {
		place(maxTs)
		if len(s.Combined) > 2 { //nolint:mnd // First, middle, last.
			mid := s.Combined[len(s.Combined)/2].Timestamp
			first := len([]rune(labels.AxisLabel(minTs, opts.location())))
			last := len([]rune(labels.AxisLabel(maxTs, opts.location())))
			col := scale(float64(mid-minTs), float64(maxTs-minTs), width)
			if col > first+1 && col < width-last-1 {
				place(mid)
			}
		}
	}
	return strings.TrimRight(string(line), " ")
}

func padLeft(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
