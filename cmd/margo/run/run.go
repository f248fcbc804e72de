// Package run implements `margo run`, the native rendition of the
// demo workload.
package run

import (
	"github.com/benbjohnson/clock"
	"github.com/urfave/cli/v2"

	margo "github.com/margo/wasm-demo"
	"github.com/margo/wasm-demo/sensor"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run the demo workload natively",

		// The workload consumes no arguments, flags, or environment
		// variables.  Everything is fixed at build time.
		Action: func(c *cli.Context) error {
			return margo.Runner{
				Stdout: c.App.Writer,
				Clock:  clock.New(),
				Sensor: sensor.Default,
			}.Run(c.Context)
		},
	}
}
