package search

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/katalvlaran/pathfinder/search"

var (
	// searchTotal counts finished searches by mode and outcome
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathfinder_search_total",
		Help: "Total searches by mode and result",
	}, []string{"mode", "result"})

	// searchDuration tracks wall time per search
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathfinder_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	}, []string{"mode"})

	// searchExpanded tracks distinct keys expanded per search
	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathfinder_search_expanded_states",
		Help:    "Distinct collapse keys expanded per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	})
)

// outcome values for the result label
const (
	resultFound     = "found"
	resultNotFound  = "not_found"
	resultExplored  = "explored"
	resultError     = "error"
	resultCancelled = "cancelled"
)

// startSpan opens a span under o.Ctx. The tracer is looked up per call so
// a provider installed after package init is honoured.
func startSpan(o Options, name, collapse string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(o.Ctx, name,
		trace.WithAttributes(
			attribute.String("search.name", o.Name),
			attribute.String("search.mode", o.Mode.String()),
			attribute.String("search.collapse", collapse),
		),
	)
}

// finish records metrics and closes span. paths < 0 marks a flood fill
// that has no goal.
func finish(span trace.Span, o Options, st Stats, paths, cost int, err error) {
	defer span.End()

	mode := o.Mode.String()
	result := resultFound
	switch {
	case err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		result = resultCancelled
	case err != nil:
		result = resultError
	case paths < 0:
		result = resultExplored
	case paths == 0:
		result = resultNotFound
	}

	searchTotal.WithLabelValues(mode, result).Inc()
	searchDuration.WithLabelValues(mode).Observe(st.Elapsed.Seconds())
	searchExpanded.Observe(float64(st.Expanded))

	span.SetAttributes(
		attribute.Int("search.dequeued", st.Dequeued),
		attribute.Int("search.expanded", st.Expanded),
		attribute.String("search.result", result),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, result)
		return
	}
	if paths >= 0 {
		span.SetAttributes(
			attribute.Int("search.paths", paths),
			attribute.Int("search.cost", cost),
		)
	}
	span.SetStatus(codes.Ok, result)
}
