package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-linq/linq/core"
)

const instrumentationName = "github.com/lguimbarda/min-linq/linq/observe"

// DefaultPrefix is prepended to every instrument name.
const DefaultPrefix = "linq"

// MetricsOption configures Metrics.
type MetricsOption func(*metricsConfig)

type metricsConfig struct {
	provider metric.MeterProvider
	prefix   string
	attrs    []attribute.KeyValue
}

// WithMeterProvider sets the provider the instruments are created on.
// The global provider is used by default.
func WithMeterProvider(provider metric.MeterProvider) MetricsOption {
	return func(c *metricsConfig) {
		c.provider = provider
	}
}

// WithPrefix sets the instrument name prefix.
func WithPrefix(prefix string) MetricsOption {
	return func(c *metricsConfig) {
		c.prefix = prefix
	}
}

// WithAttributes adds attributes to every recorded measurement.
func WithAttributes(attrs ...attribute.KeyValue) MetricsOption {
	return func(c *metricsConfig) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// instruments holds the OpenTelemetry instruments for one pipeline.
type instruments struct {
	passes     metric.Int64Counter
	visited    metric.Int64Counter
	values     metric.Int64Counter
	suppressed metric.Int64Counter
	failures   metric.Int64Counter
	duration   metric.Float64Histogram
}

func newInstruments(meter metric.Meter, prefix string) (*instruments, error) {
	passes, err := meter.Int64Counter(prefix+".passes",
		metric.WithDescription("Completed pipeline passes by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s.passes counter: %w", prefix, err)
	}

	visited, err := meter.Int64Counter(prefix+".visited",
		metric.WithDescription("Raw elements offered by the source"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s.visited counter: %w", prefix, err)
	}

	values, err := meter.Int64Counter(prefix+".values",
		metric.WithDescription("Values produced at the end of the pipeline"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s.values counter: %w", prefix, err)
	}

	suppressed, err := meter.Int64Counter(prefix+".suppressed",
		metric.WithDescription("Elements dropped by a stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s.suppressed counter: %w", prefix, err)
	}

	failures, err := meter.Int64Counter(prefix+".errors",
		metric.WithDescription("Passes that ended with a source error"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s.errors counter: %w", prefix, err)
	}

	duration, err := meter.Float64Histogram(prefix+".duration",
		metric.WithDescription("Duration of pipeline passes in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s.duration histogram: %w", prefix, err)
	}

	return &instruments{
		passes:     passes,
		visited:    visited,
		values:     values,
		suppressed: suppressed,
		failures:   failures,
		duration:   duration,
	}, nil
}

func (in *instruments) record(ctx context.Context, m PassMetrics, attrs []attribute.KeyValue) {
	common := metric.WithAttributes(attrs...)
	in.passes.Add(ctx, 1, metric.WithAttributes(
		append(attrs[:len(attrs):len(attrs)], attribute.String("outcome", m.Outcome.String()))...,
	))
	in.visited.Add(ctx, m.Visited, common)
	in.values.Add(ctx, m.Values, common)
	in.suppressed.Add(ctx, m.Suppressed, common)
	if m.Err != nil {
		in.failures.Add(ctx, 1, common)
	}
	in.duration.Record(ctx, m.Duration().Seconds(), common)
}

// Metrics returns p instrumented with OpenTelemetry counters and a duration
// histogram. Measurements are recorded once per pass, when it ends.
func Metrics[S, T any](p core.Pipeline[S, T], opts ...MetricsOption) (core.Pipeline[S, T], error) {
	cfg := metricsConfig{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.provider == nil {
		cfg.provider = otel.GetMeterProvider()
	}

	in, err := newInstruments(cfg.provider.Meter(instrumentationName), cfg.prefix)
	if err != nil {
		return p, err
	}

	// Passes are synchronous and carry no context of their own.
	ctx := context.Background()
	return Meter(p, func(m PassMetrics) {
		in.record(ctx, m, cfg.attrs)
	}), nil
}
