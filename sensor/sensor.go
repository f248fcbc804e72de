// Package sensor provides the simulated temperature feed for the demo
// workload.  There is no real hardware behind it.
package sensor

import "fmt"

// Reading is a single sample from the feed.
type Reading struct {
	Seq         int   // 1-based reading index
	Temperature int   // degrees Celsius
	Timestamp   int64 // whole seconds since the Unix epoch
}

// String renders the reading as one transcript line.
func (r Reading) String() string {
	return fmt.Sprintf("[%d] Sensor reading: temperature=%d°C, timestamp=%d",
		r.Seq, r.Temperature, r.Timestamp)
}

// Sensor is a data source of temperature values, keyed by reading index.
type Sensor interface {
	Temperature(seq int) int
}

// Simulated derives a deterministic temperature from the reading index.
type Simulated struct {
	Base, Step int
}

// Default is the feed the demo ships with: 20 + 3·seq degrees.
var Default = Simulated{Base: 20, Step: 3}

func (s Simulated) Temperature(seq int) int {
	return s.Base + seq*s.Step
}
