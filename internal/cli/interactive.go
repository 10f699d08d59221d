package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/fuelco2/internal/config"
	"github.com/rshade/fuelco2/internal/emissions"
	"github.com/rshade/fuelco2/internal/logging"
	"github.com/rshade/fuelco2/internal/metrics"
	"github.com/rshade/fuelco2/internal/render"
	"github.com/rshade/fuelco2/internal/tui"
)

var errNotTerminal = errors.New("interactive mode requires a terminal")

func newInteractiveCmd() *cobra.Command {
	var params calcParams

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"ui"},
		Short:   "Enter consumption in a form and watch the chart update",
		Long: `Opens a terminal form with a consumption and a date input for coal and
for gas. Enter records the focused fuel, ctrl+r clears its inputs, ctrl+l
drops every recorded value and esc quits. The final table is printed on
exit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsTerminal(os.Stdin) || !tui.IsTerminal(os.Stdout) {
				return errNotTerminal
			}
			return runInteractive(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.locale, "locale", "", "label locale: en, ru (default from config)")
	cmd.Flags().StringVar(&params.timezone, "tz", "", "IANA time zone for YYYY-MM-DD dates (default local)")
	cmd.Flags().StringVar(&params.metricsTextfile, "metrics-textfile", "",
		"write Prometheus metrics to this file on exit")

	return cmd
}

func runInteractive(cmd *cobra.Command, params calcParams) error {
	ctx := logging.DetachFromTerminal(cmd.Context())
	log := logging.FromContext(ctx)

	opts, err := calcRenderOptions(params)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	session := emissions.NewSession(emissions.New(
		emissions.WithLogger(logging.ComponentLogger(*log, "emissions")),
		emissions.WithObserver(collector),
	))

	p := tea.NewProgram(tui.NewFormModel(ctx, session, collector, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive form: %w", err)
	}

	snap := render.Capture(session.Aggregator())
	if !snap.IsEmpty() {
		if err := render.RenderTable(cmd.OutOrStdout(), snap, opts); err != nil {
			return err
		}
	}

	textfile := params.metricsTextfile
	if textfile == "" {
		textfile = config.GetMetricsTextfile()
	}
	if textfile != "" {
		return collector.WriteTextfile(textfile)
	}
	return nil
}
