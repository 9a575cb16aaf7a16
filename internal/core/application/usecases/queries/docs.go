// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
//
// Every query carries the acting identity, and handlers apply role scoping
// inside the SQL itself: a customer only ever reads rows tied to their own
// customer id, a supplier to their supplier id, while admin reads unscoped.
// Handlers bypass the domain aggregates and read denormalized rows directly
// through gorm.
package queries
