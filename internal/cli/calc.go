package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/fuelco2/internal/config"
	"github.com/rshade/fuelco2/internal/emissions"
	"github.com/rshade/fuelco2/internal/logging"
	"github.com/rshade/fuelco2/internal/metrics"
	"github.com/rshade/fuelco2/internal/render"
	"github.com/rshade/fuelco2/internal/tui"
)

// chartMargin is the space the y axis labels take beside the plot.
const chartMargin = 14

type calcParams struct {
	coal            []string
	gas             []string
	file            string
	output          string
	locale          string
	metricsTextfile string
	timezone        string
}

func newCalcCmd() *cobra.Command {
	var params calcParams

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Record fuel consumption and print the emission series",
		Long: `Records every coal and gas entry in order, converts consumption into
tonnes of CO2 and prints the coal, gas and combined series.

Entries are DATE=AMOUNT pairs where DATE is YYYY-MM-DD (local midnight) or
RFC 3339 and AMOUNT is between 0 and 1000. A second entry for a date that
already holds a value for the same fuel is skipped with a notice.`,
		Example: `  # Two coal days and one gas day
  fuelco2 calc --coal 2024-03-01=10 --coal 2024-03-02=12.5 --gas 2024-03-01=4

  # Entries from a file, as JSON
  fuelco2 calc --file entries.yaml --output json

  # Russian labels on the chart
  fuelco2 calc --file entries.yaml --output chart --locale ru`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, params)
		},
	}

	cmd.Flags().StringArrayVar(&params.coal, "coal", nil, "coal consumption as DATE=AMOUNT (repeatable)")
	cmd.Flags().StringArrayVar(&params.gas, "gas", nil, "gas consumption as DATE=AMOUNT (repeatable)")
	cmd.Flags().StringVarP(&params.file, "file", "f", "", "YAML file with coal and gas entries")
	cmd.Flags().StringVarP(&params.output, "output", "o", "",
		"output format: table, json, ndjson, chart, lineprotocol (default from config)")
	cmd.Flags().StringVar(&params.locale, "locale", "", "label locale: en, ru (default from config)")
	cmd.Flags().StringVar(&params.metricsTextfile, "metrics-textfile", "",
		"write Prometheus metrics to this file after recording")
	cmd.Flags().StringVar(&params.timezone, "tz", "", "IANA time zone for YYYY-MM-DD dates (default local)")

	return cmd
}

func runCalc(cmd *cobra.Command, params calcParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format := params.output
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	if !config.IsValidFormat(format) {
		return fmt.Errorf("unsupported output format: %s", format)
	}

	opts, err := calcRenderOptions(params)
	if err != nil {
		return err
	}

	pending, err := collectReadings(params, opts.Location)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return errors.New("no entries given, use --coal, --gas or --file")
	}

	collector := metrics.NewCollector()
	agg := emissions.New(
		emissions.WithLogger(logging.ComponentLogger(*log, "emissions")),
		emissions.WithObserver(collector),
	)

	labels := render.LabelsFor(opts.Locale)
	var skipped int
	for _, p := range pending {
		_, recErr := agg.Record(p.source, p.reading)
		switch {
		case recErr == nil:
		case errors.Is(recErr, emissions.ErrDuplicateTimestamp):
			skipped++
			cmd.PrintErrf("%s (%s %s)\n", labels.Duplicate, p.source, p.origin)
		default:
			return fmt.Errorf("%s %s: %w", p.source, p.origin, recErr)
		}
	}

	log.Debug().
		Int("entries", len(pending)).
		Int("skipped", skipped).
		Str("output", format).
		Msg("entries recorded")

	if err := render.Render(cmd.OutOrStdout(), format, render.Capture(agg), opts); err != nil {
		return err
	}

	textfile := params.metricsTextfile
	if textfile == "" {
		textfile = config.GetMetricsTextfile()
	}
	if textfile != "" {
		if err := collector.WriteTextfile(textfile); err != nil {
			return err
		}
		log.Debug().Str("path", textfile).Msg("metrics written")
	}
	return nil
}

// collectReadings gathers file entries first, then --coal and --gas flags.
func collectReadings(params calcParams, loc *time.Location) ([]pendingReading, error) {
	var pending []pendingReading

	if params.file != "" {
		ef, err := LoadEntryFile(params.file)
		if err != nil {
			return nil, err
		}
		fromFile, err := ef.readings(loc)
		if err != nil {
			return nil, err
		}
		pending = append(pending, fromFile...)
	}

	for _, group := range []struct {
		source emissions.Source
		values []string
	}{
		{emissions.Coal, params.coal},
		{emissions.Gas, params.gas},
	} {
		for _, v := range group.values {
			p, err := parseEntryFlag(group.source, v, loc)
			if err != nil {
				return nil, err
			}
			pending = append(pending, p)
		}
	}
	return pending, nil
}

func calcRenderOptions(params calcParams) (render.Options, error) {
	var loc *time.Location
	if params.timezone != "" {
		l, err := time.LoadLocation(params.timezone)
		if err != nil {
			return render.Options{}, fmt.Errorf("--tz %q: %w", params.timezone, err)
		}
		loc = l
	}

	locale := params.locale
	if locale == "" {
		locale = config.GetLocale()
	}

	width := render.DefaultChartWidth
	if tw := tui.TerminalWidth() - chartMargin; tw > 0 && tw < width {
		width = tw
	}

	return render.Options{
		Precision: config.GetOutputPrecision(),
		Locale:    render.ParseLocale(locale),
		Location:  loc,
		Width:     width,
		Height:    render.DefaultChartHeight,
	}, nil
}
