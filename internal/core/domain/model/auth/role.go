// Package auth provides the actor model consumed by every authorization
// check in the core. An Actor is an authenticated identity, its role, and a
// stable reference to the customer or supplier record it owns.
package auth

import (
	"fmt"

	"cargopool/internal/pkg/errs"
)

// Role is the closed set of actor roles. The role boundary is immutable for
// the lifetime of an account; changing it is an administrative override, not
// a normal transition.
type Role string

const (
	// RoleCustomer places orders and sees only its own records.
	RoleCustomer Role = "customer"
	// RoleSupplier fulfills orders and sees only records where it is the supplier.
	RoleSupplier Role = "supplier"
	// RoleAdmin operates the platform and satisfies every access check.
	RoleAdmin Role = "admin"
)

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleSupplier, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}
