//go:generate tinygo build -o main.wasm -target=wasi -scheduler=none main.go

// The guest is the demo workload compiled for wasm32-wasi.  Run the
// artifact with `margo exec guest/main.wasm`.
package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/benbjohnson/clock"

	margo "github.com/margo/wasm-demo"
	"github.com/margo/wasm-demo/sensor"
)

func main() {
	status := 0
	err := margo.Runner{
		Stdout: os.Stdout,
		Clock:  clock.New(),
		Sensor: sensor.Default,
	}.Run(context.Background())
	if err != nil {
		status = 1
		io.Copy(os.Stderr, strings.NewReader(err.Error()))
	}

	os.Exit(status)
}
