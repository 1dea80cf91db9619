package telemetry

import (
	"context"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// orderMetrics implements service.OrderMetrics with OpenTelemetry instruments.
type orderMetrics struct {
	submitted  metric.Int64Counter
	rejected   metric.Int64Counter
	orderValue metric.Float64Histogram
	lineItems  metric.Int64Histogram
}

// NewOrderMetrics creates the order instruments on the given meter.
func NewOrderMetrics(meter metric.Meter) (service.OrderMetrics, error) {
	submitted, err := meter.Int64Counter("storefront.orders.submitted",
		metric.WithDescription("Orders committed"),
		metric.WithUnit("{order}"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rejected, err := meter.Int64Counter("storefront.orders.rejected",
		metric.WithDescription("Order submissions rejected, by reason"),
		metric.WithUnit("{order}"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	orderValue, err := meter.Float64Histogram("storefront.orders.value",
		metric.WithDescription("Total price of committed orders"),
		metric.WithExplicitBucketBoundaries(10, 25, 50, 100, 250, 500, 1000))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	lineItems, err := meter.Int64Histogram("storefront.orders.line_items",
		metric.WithDescription("Line items per committed order"),
		metric.WithExplicitBucketBoundaries(1, 2, 3, 5, 8, 13))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &orderMetrics{
		submitted:  submitted,
		rejected:   rejected,
		orderValue: orderValue,
		lineItems:  lineItems,
	}, nil
}

func (m *orderMetrics) RecordSubmitted(ctx context.Context, total decimal.Decimal, lineItems int) {
	m.submitted.Add(ctx, 1)
	m.orderValue.Record(ctx, total.InexactFloat64())
	m.lineItems.Record(ctx, int64(lineItems))
}

func (m *orderMetrics) RecordRejected(ctx context.Context, reason string) {
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
