// Package observe provides instrumentation for pipelines: element visit
// counting, per-pass metrics, OpenTelemetry instruments and zerolog logging.
//
// Instrumentation wraps a pipeline's driver (to see every raw element the
// source offers) and taps the end of its chain (to see what the stages let
// through). Neither alters the values or the order of evaluation.
package observe

import (
	"time"

	"github.com/lguimbarda/min-linq/linq/core"
)

// Visits counts driver activity across passes.
type Visits struct {
	Passes   int64 // Completed calls to Iterate
	Elements int64 // Raw elements offered to the pipeline
}

// CountVisits returns p with a driver that records into v every element the
// source offers. Comparing Elements with the length of the source shows how
// early a pass was cut short.
func CountVisits[S, T any](p core.Pipeline[S, T], v *Visits) core.Pipeline[S, T] {
	return p.Instrument(func(d core.Driver[S]) core.Driver[S] {
		return core.DriverFunc[S](func(stop func(S) bool) error {
			defer func() { v.Passes++ }()
			return d.Iterate(func(s S) bool {
				v.Elements++
				return stop(s)
			})
		})
	})
}

// PassMetrics holds statistics about one pass of a pipeline.
type PassMetrics struct {
	// Counts
	Visited    int64 // Raw elements offered by the source
	Values     int64 // Values that reached the end of the chain
	Suppressed int64 // Elements dropped by some stage

	// Timing
	StartTime time.Time
	EndTime   time.Time

	// Throughput, in visited elements per second
	ElementsPerSecond float64

	Outcome core.Outcome
	Err     error
}

// Duration returns how long the pass took.
func (m PassMetrics) Duration() time.Duration {
	return m.EndTime.Sub(m.StartTime)
}

// Meter returns p instrumented to collect PassMetrics. onComplete is called
// with the final metrics once per pass, after the source stops or runs out,
// and before the terminal returns.
func Meter[S, T any](p core.Pipeline[S, T], onComplete func(PassMetrics)) core.Pipeline[S, T] {
	var m PassMetrics

	tapped := p.Tap(core.Hooks[T]{
		OnStart: func() {
			m = PassMetrics{StartTime: time.Now()}
		},
		OnValue:      func(T) { m.Values++ },
		OnSuppressed: func() { m.Suppressed++ },
	})

	return tapped.Instrument(func(d core.Driver[S]) core.Driver[S] {
		return core.DriverFunc[S](func(stop func(S) bool) error {
			err := d.Iterate(func(s S) bool {
				m.Visited++
				if stop(s) {
					m.Outcome = core.Halted
					return true
				}
				return false
			})

			m.EndTime = time.Now()
			m.Err = err
			if seconds := m.Duration().Seconds(); seconds > 0 {
				m.ElementsPerSecond = float64(m.Visited) / seconds
			}
			if onComplete != nil {
				onComplete(m)
			}
			return err
		})
	})
}
