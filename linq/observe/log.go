package observe

import (
	"github.com/rs/zerolog"

	"github.com/lguimbarda/min-linq/linq/core"
)

// Log returns hooks that trace the signals seen at one point of a pipeline.
// Pass start and stop are logged at debug level, values and suppressed
// elements at trace level.
func Log[T any](logger zerolog.Logger) core.Hooks[T] {
	return core.Hooks[T]{
		OnStart: func() {
			logger.Debug().Msg("pass started")
		},
		OnValue: func(v T) {
			logger.Trace().Interface("value", v).Msg("value")
		},
		OnSuppressed: func() {
			logger.Trace().Msg("suppressed")
		},
		OnStop: func() {
			logger.Debug().Msg("stop")
		},
	}
}

// LogDriver returns p instrumented to log a summary line when each pass ends.
// Passes that fail are logged at error level, the rest at info.
func LogDriver[S, T any](p core.Pipeline[S, T], logger zerolog.Logger) core.Pipeline[S, T] {
	return Meter(p, func(m PassMetrics) {
		event := logger.Info()
		if m.Err != nil {
			event = logger.Error().Err(m.Err)
		}
		event.
			Int64("visited", m.Visited).
			Int64("values", m.Values).
			Int64("suppressed", m.Suppressed).
			Dur("duration", m.Duration()).
			Stringer("outcome", m.Outcome).
			Msg("pass finished")
	})
}
