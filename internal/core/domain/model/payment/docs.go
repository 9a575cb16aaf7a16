// Package payment contains the Payment entity: a settlement record attached
// to exactly one consolidation.
//
// A payment snapshots the consolidation's total value at creation time and
// never recomputes it, even if the membership later changes. At most one
// non-cancelled payment may exist per consolidation; the persistence layer
// enforces the uniqueness atomically. Method-specific detail fields are
// sensitive and are redacted for every actor except admin and the parties on
// the underlying consolidation's orders.
package payment
