// Package services provides domain services that implement business rules
// spanning multiple aggregates.
//
// The package includes:
//   - AccessPolicy: the role-based access control engine consulted by every
//     command and query handler before any state is read or written
package services
