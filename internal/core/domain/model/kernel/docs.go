// Package kernel provides the core domain primitives shared by every
// aggregate of the consolidation platform.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: a fixed-point monetary value with currency, backed by decimal arithmetic
//
// These primitives enforce domain invariants at construction time so that
// aggregates never hold malformed identifiers or negative amounts. They are
// immutable and safe for concurrent use.
package kernel
