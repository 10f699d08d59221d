// Command fuelco2 converts coal and gas consumption into CO2 emission series.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/fuelco2/internal/cli"
	"github.com/rshade/fuelco2/pkg/version"
)

func run(args []string) error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	return root.Execute()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
