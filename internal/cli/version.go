package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/fuelco2/pkg/version"
)

func newVersionCmd(ver string) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			if short {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Normalize(ver))
				return
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), version.Info())
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")

	return cmd
}
