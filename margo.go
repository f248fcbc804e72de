// Package margo implements the demo workload: a banner, a fixed run of
// simulated sensor readings emitted two seconds apart, and a completion
// footer.  The transcript written to Stdout is the program's entire
// observable surface.
package margo

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/margo/wasm-demo/sensor"
	"github.com/margo/wasm-demo/version"
)

const (
	// DefaultReadings is the number of sensor lines a run emits.
	DefaultReadings = 5

	// DefaultInterval is the pause between successive readings.
	DefaultInterval = 2 * time.Second
)

// Runner produces the demo transcript on a single flow of control.
// Stdout must be set; the remaining fields default to the system
// clock, the stock simulated feed, and the standard run shape.
type Runner struct {
	Stdout   io.Writer
	Clock    clock.Clock
	Sensor   sensor.Sensor
	Readings int
	Interval time.Duration
}

// Run emits the banner, the reading loop, and the footer, in that
// order.  It pauses for one interval after every reading, the last
// one included, so the footer lands a full interval after the final
// reading.  Writing to Stdout is the only side effect.
func (r Runner) Run(ctx context.Context) error {
	clk := r.Clock
	if clk == nil {
		clk = clock.New()
	}

	src := r.Sensor
	if src == nil {
		src = sensor.Default
	}

	n := r.Readings
	if n <= 0 {
		n = DefaultReadings
	}

	interval := r.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.banner(); err != nil {
		return err
	}

	for i := 1; i <= n; i++ {
		rd := sensor.Reading{
			Seq:         i,
			Temperature: src.Temperature(i),
			Timestamp:   clk.Now().Unix(),
		}
		if _, err := fmt.Fprintln(r.Stdout, rd); err != nil {
			return fmt.Errorf("emit reading %d: %w", i, err)
		}

		if err := pause(ctx, clk, interval); err != nil {
			return err
		}
	}

	return r.footer()
}

func (r Runner) banner() error {
	for _, line := range []string{
		"🦭 Margo WASM Demo - Hello from WebAssembly!",
		strings.Repeat("=", 40),
		"Runtime: " + version.Runtime,
		fmt.Sprintf("Build: Go %s (%s)", version.Version, version.Program),
		"",
	} {
		if _, err := fmt.Fprintln(r.Stdout, line); err != nil {
			return fmt.Errorf("emit banner: %w", err)
		}
	}

	return nil
}

func (r Runner) footer() error {
	for _, line := range []string{
		"",
		"✓ WASM workload completed successfully",
		"Memory footprint: <10 MB (WASM sandbox)",
	} {
		if _, err := fmt.Fprintln(r.Stdout, line); err != nil {
			return fmt.Errorf("emit footer: %w", err)
		}
	}

	return nil
}

// pause blocks the calling goroutine for d.  Nothing else runs during
// the demo's lifetime, so a plain blocking wait is the point.
func pause(ctx context.Context, clk clock.Clock, d time.Duration) error {
	t := clk.Timer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
