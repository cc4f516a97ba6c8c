package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/ordersvc/pkg/domainerr"
	"github.com/ghuser/ordersvc/pkg/telemetry"
)

const instrumentationName = "github.com/ghuser/ordersvc/services/order"

// Outcome values of the orders.processed counter.
const (
	OutcomeSuccess            = "success"
	OutcomeInsufficientStock  = "insufficient_stock"
	OutcomeBusinessRule       = "business_rule"
	OutcomeNotificationFailed = "notification_failed"
	OutcomeError              = "error"
)

type pipelineMetrics struct {
	processed metric.Int64Counter
	duration  metric.Float64Histogram
}

func newPipelineMetrics(mp metric.MeterProvider) *pipelineMetrics {
	meter := mp.Meter(instrumentationName)

	processed, err := meter.Int64Counter("orders.processed",
		metric.WithDescription("Orders run through the placement pipeline, by outcome."),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		otel.Handle(err)
	}
	duration, err := meter.Float64Histogram(telemetry.PipelineDurationMetric,
		metric.WithDescription("Time spent in the placement pipeline."),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}
	return &pipelineMetrics{processed: processed, duration: duration}
}

func (m *pipelineMetrics) record(ctx context.Context, start time.Time, err error) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome(err)))
	m.processed.Add(ctx, 1, attrs)
	m.duration.Record(ctx, time.Since(start).Seconds(), attrs)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domainerr.ErrInsufficientStock):
		return OutcomeInsufficientStock
	case errors.Is(err, domainerr.ErrBusinessRule):
		return OutcomeBusinessRule
	case errors.Is(err, domainerr.ErrNotification):
		return OutcomeNotificationFailed
	default:
		return OutcomeError
	}
}
