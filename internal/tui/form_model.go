// Package tui implements the interactive fuelco2 form: one consumption and
// date input per fuel source, with the emission chart redrawn after every
// change.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/fuelco2/internal/emissions"
	"github.com/rshade/fuelco2/internal/logging"
	"github.com/rshade/fuelco2/internal/render"
)

// Form field indexes within one source.
const (
	fieldConsumption = iota
	fieldDate
	fieldsPerSource
)

const (
	dateCharLimit        = 25
	consumptionCharLimit = 12
	inputWidth           = 24
	tableHeight          = 6
	chartHeightReserve   = 24
	minChartHeight       = 4
	chartWidthReserve    = 16
)

// Clearer is notified when the form clears every recorded entry.
type Clearer interface {
	Reset()
}

// FormModel is the Bubble Tea model for the interactive calculator.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type FormModel struct {
	ctx     context.Context
	session *emissions.Session
	clearer Clearer
	opts    render.Options
	labels  render.Labels

	inputs []textinput.Model
	focus  int
	table  table.Model

	notice  string
	isError bool

	width    int
	height   int
	quitting bool
}

// NewFormModel returns a form driving session. clearer may be nil.
func NewFormModel(ctx context.Context, session *emissions.Session, clearer Clearer, opts render.Options) FormModel {
	m := FormModel{
		ctx:     ctx,
		session: session,
		clearer: clearer,
		opts:    opts,
		labels:  render.LabelsFor(opts.Locale),
		width:   defaultWidth,
		height:  defaultHeight,
	}

	for range emissions.Sources() {
		consumption := textinput.New()
		consumption.Placeholder = fmt.Sprintf("%g-%g", emissions.MinConsumption, emissions.MaxConsumption)
		consumption.CharLimit = consumptionCharLimit
		consumption.Width = inputWidth
		consumption.Prompt = "consumption › "

		date := textinput.New()
		date.Placeholder = "YYYY-MM-DD"
		date.CharLimit = dateCharLimit
		date.Width = inputWidth
		date.Prompt = "date        › "

		m.inputs = append(m.inputs, consumption, date)
	}
	m.inputs[0].Focus()

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: m.labels.Columns[0], Width: 12}, //nolint:mnd // Column width.
			{Title: m.labels.Columns[1], Width: 12}, //nolint:mnd // Column width.
			{Title: m.labels.Columns[2], Width: 12}, //nolint:mnd // Column width.
			{Title: m.labels.Columns[3], Width: 12}, //nolint:mnd // Column width.
		}),
		table.WithHeight(tableHeight),
	)
	m.refreshTable()
	return m
}

// Init initializes the model (Bubble Tea interface).
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages (Bubble Tea interface).
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateFocused(msg)
}

func (m FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyCtrlC, keyEsc:
		m.quitting = true
		return m, tea.Quit
	case keyTab:
		return m.moveFocus(1), nil
	case keyShiftTab:
		return m.moveFocus(-1), nil
	case keyEnter:
		return m.submit(m.focusedSource()), nil
	case keyReset:
		return m.reset(m.focusedSource()), nil
	case keyClear:
		return m.clearAll(), nil
	}
	return m.updateFocused(msg)
}

func (m FormModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m FormModel) moveFocus(delta int) FormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m FormModel) focusedSource() emissions.Source {
	return emissions.Sources()[m.focus/fieldsPerSource]
}

func (m FormModel) input(source emissions.Source, field int) *textinput.Model {
	return &m.inputs[int(source)*fieldsPerSource+field]
}

// submit stages the source's text fields and records them.
func (m FormModel) submit(source emissions.Source) FormModel {
	logger := logging.FromContext(m.ctx)

	reading, err := emissions.ParseReading(
		m.input(source, fieldConsumption).Value(),
		m.input(source, fieldDate).Value(),
		m.opts.Location,
	)
	if err != nil {
		return m.withNotice(err.Error(), true)
	}

	m.session.Stage(source, reading)
	entry, err := m.session.Submit(source)
	switch {
	case errors.Is(err, emissions.ErrDuplicateTimestamp):
		logger.Debug().Str("source", source.String()).Msg("duplicate date rejected")
		return m.withNotice(m.labels.Duplicate, true)
	case err != nil:
		return m.withNotice(err.Error(), true)
	case reading.IsEmpty():
		return m.withNotice("", false)
	}

	logger.Debug().
		Str("source", source.String()).
		Int64("timestamp", entry.Timestamp).
		Float64("tonnes", entry.Value).
		Msg("emission recorded")
	m.refreshTable()
	return m.withNotice(fmt.Sprintf("%s: +%.*f t",
		m.labels.SeriesName(source), m.opts.Precision, entry.Value), false)
}

// reset clears the source's form fields and staged input. Recorded
// history stays.
func (m FormModel) reset(source emissions.Source) FormModel {
	m.session.Reset(source)
	for field := range fieldsPerSource {
		m.input(source, field).Reset()
	}
	return m.withNotice("", false)
}

// clearAll drops every recorded entry.
func (m FormModel) clearAll() FormModel {
	m.session.Aggregator().Clear()
	if m.clearer != nil {
		m.clearer.Reset()
	}
	m.refreshTable()
	return m.withNotice("", false)
}

func (m FormModel) withNotice(notice string, isError bool) FormModel {
	m.notice = notice
	m.isError = isError
	return m
}

func (m *FormModel) refreshTable() {
	snap := render.Capture(m.session.Aggregator())
	coalAt := make(map[int64]bool, len(snap.Coal))
	for _, e := range snap.Coal {
		coalAt[e.Timestamp] = true
	}
	gasAt := make(map[int64]bool, len(snap.Gas))
	for _, e := range snap.Gas {
		gasAt[e.Timestamp] = true
	}

	loc := m.opts.Location
	if loc == nil {
		loc = time.Local
	}
	rows := make([]table.Row, len(snap.Combined))
	for i, c := range snap.Combined {
		coal, gas := "-", "-"
		if coalAt[c.Timestamp] {
			coal = fmt.Sprintf("%.*f", m.opts.Precision, c.Coal)
		}
		if gasAt[c.Timestamp] {
			gas = fmt.Sprintf("%.*f", m.opts.Precision, c.Gas)
		}
		rows[i] = table.Row{
			render.FormatDate(c.Timestamp, loc),
			coal,
			gas,
			fmt.Sprintf("%.*f", m.opts.Precision, c.Value),
		}
	}
	m.table.SetRows(rows)
}

// View renders the form, the notice line, the table and the chart.
func (m FormModel) View() string {
	if m.quitting {
		return ""
	}

	panels := make([]string, 0, len(emissions.Sources()))
	for _, source := range emissions.Sources() {
		panels = append(panels, m.renderPanel(source))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	b.WriteString("\n")
	if m.notice != "" {
		if m.isError {
			b.WriteString(render.NoticeStyle.Render(m.notice))
		} else {
			b.WriteString(render.SubtleStyle.Render(m.notice))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.table.View())
	b.WriteString("\n")

	opts := m.opts
	opts.Width = max(m.width-chartWidthReserve, render.DefaultChartWidth/2) //nolint:mnd // Minimum chart width.
	opts.Height = max(m.height-chartHeightReserve, minChartHeight)
	b.WriteString(render.RenderChart(render.Capture(m.session.Aggregator()), opts))
	b.WriteString("\n")
	b.WriteString(render.AxisStyle.Render("tab: next field • enter: calculate • ctrl+r: reset form • ctrl+l: clear all • esc: quit"))
	return b.String()
}

func (m FormModel) renderPanel(source emissions.Source) string {
	var b strings.Builder
	b.WriteString(render.HeaderStyle.Render(m.labels.SeriesName(source)))
	b.WriteString("\n")
	b.WriteString(m.input(source, fieldConsumption).View())
	b.WriteString("\n")
	b.WriteString(m.input(source, fieldDate).View())
	return render.BoxStyle.Render(b.String())
}
