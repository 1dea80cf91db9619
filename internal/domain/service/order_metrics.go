package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// Rejection reasons reported to OrderMetrics.
const (
	RejectReasonEmptyOrder      = "empty_order"
	RejectReasonInvalidQuantity = "invalid_quantity"
	RejectReasonUnknownEntry    = "unknown_catalog_entry"
	RejectReasonPersistence     = "persistence"
	RejectReasonTimeout         = "timeout"
)

// OrderMetrics records order submission outcomes.
type OrderMetrics interface {
	// RecordSubmitted counts a committed order and its value.
	RecordSubmitted(ctx context.Context, total decimal.Decimal, lineItems int)

	// RecordRejected counts a rejected submission with the given reason.
	RecordRejected(ctx context.Context, reason string)
}
