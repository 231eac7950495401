package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/timvw/todo-tui/internal/store"
)

const meterName = "todo-tui"

// Metrics holds all OTEL metric instruments for todo-tui.
// All counters are cumulative (monotonic) and safe for concurrent use.
type Metrics struct {
	// Mutations counts list mutations, partitioned by op (add, toggle, delete).
	Mutations metric.Int64Counter

	// Snapshot store counters (partitioned by result via attributes)
	Saves metric.Int64Counter
	Loads metric.Int64Counter

	// StoreDuration records save/load wall time in milliseconds.
	StoreDuration metric.Int64Histogram
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.Mutations, err = meter.Int64Counter("todo.mutations",
		metric.WithDescription("List mutations partitioned by op (add, toggle, delete)"))
	if err != nil {
		return nil, err
	}

	m.Saves, err = meter.Int64Counter("store.saves",
		metric.WithDescription("Snapshot writes partitioned by result (ok, error)"))
	if err != nil {
		return nil, err
	}

	m.Loads, err = meter.Int64Counter("store.loads",
		metric.WithDescription("Snapshot reads partitioned by result (snapshot, default)"))
	if err != nil {
		return nil, err
	}

	m.StoreDuration, err = meter.Int64Histogram("store.duration",
		metric.WithDescription("Snapshot save/load duration"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordMutation counts one list mutation.
func (m *Metrics) RecordMutation(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.Mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}

// StoreObserver adapts the metrics to the store's observability hook.
// Save and load outcomes are counted but never surfaced — the hook
// exists so the silent best-effort policy stays observable.
func (m *Metrics) StoreObserver(ctx context.Context) store.Observer {
	return func(o store.Outcome) {
		if m == nil {
			return
		}
		opAttr := metric.WithAttributes(attribute.String("op", string(o.Op)))
		m.StoreDuration.Record(ctx, o.Duration.Milliseconds(), opAttr)

		switch o.Op {
		case store.OpSave:
			result := "ok"
			if o.Err != nil {
				result = "error"
			}
			m.Saves.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
		case store.OpLoad:
			result := "snapshot"
			if o.Fallback {
				result = "default"
			}
			m.Loads.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
		}
	}
}
