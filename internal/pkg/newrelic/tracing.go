package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromContext extracts New Relic transaction from standard context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// NewGoroutineContext returns ctx carrying a goroutine-local handle of its
// transaction. Call it once per goroutine that records segments.
func NewGoroutineContext(ctx context.Context) context.Context {
	txn := FromContext(ctx)
	if txn == nil {
		return ctx
	}
	return newrelic.NewContext(ctx, txn.NewGoroutine())
}

// StartSegment creates a new segment for the given transaction.
// Returns nil if transaction is not available.
func StartSegment(txn *newrelic.Transaction, name string) *newrelic.Segment {
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}

// WithSegmentAndReturn executes fn within a New Relic segment and returns its value
func WithSegmentAndReturn[T any](ctx context.Context, segmentName string, fn func() (T, error)) (T, error) {
	segment := StartSegment(FromContext(ctx), segmentName)
	if segment != nil {
		defer segment.End()
	}

	return fn()
}

// WithDatastoreSegment times a record store call as a New Relic datastore segment
func WithDatastoreSegment[T any](ctx context.Context, product newrelic.DatastoreProduct, collection, operation string, fn func() (T, error)) (T, error) {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}

	segment := newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    product,
		Collection: collection,
		Operation:  operation,
	}
	defer segment.End()

	return fn()
}
