package render

import (
	"fmt"
	"io"

	"github.com/rshade/fuelco2/internal/config"
)

// Render writes s to w in format, one of the config.Format* values.
func Render(w io.Writer, format string, s Snapshot, opts Options) error {
	switch format {
	case config.FormatTable:
		return RenderTable(w, s, opts)
	case config.FormatJSON:
		return RenderJSON(w, s)
	case config.FormatNDJSON:
		return RenderNDJSON(w, s)
	case config.FormatLineProtocol:
		return RenderLineProtocol(w, s)
	case config.FormatChart:
		_, err := fmt.Fprintln(w, RenderChart(s, opts))
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
