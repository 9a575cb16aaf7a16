// Package consolidation contains the Consolidation aggregate: a named group
// of orders shipped together as a single outbound international shipment.
//
// A consolidation owns an exclusive set of member orders (an order belongs
// to at most one active consolidation at a time) and derived aggregates
// (total weight, total value, distinct supplier and customer counts) that are
// always recomputed in full from the current membership, never incrementally
// drifted. Membership is open only in the Pending and Consolidating statuses
// and freezes permanently on delivery.
package consolidation
