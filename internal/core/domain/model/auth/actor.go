package auth

import (
	"errors"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"
	"cargopool/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// one of the constructor functions.
var ErrActorIsNotConstructed = errors.New(
	"Actor must be created via NewCustomerActor, NewSupplierActor, or NewAdminActor")

// Actor is an authenticated identity plus its role, used for every
// authorization check in the core. Customer and supplier actors carry the id
// of the party record they own; admin actors own no party record.
//
// Actor is created by the identity provider at the system boundary and passed
// unchanged through every command and query.
type Actor struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	role  Role
	party *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCustomerActor creates an actor with the customer role.
// customerID is the Customer record the actor owns; required.
func NewCustomerActor(id kernel.UUID, customerID kernel.UUID) (Actor, error) {
	return newPartyActor(id, RoleCustomer, customerID)
}

// NewSupplierActor creates an actor with the supplier role.
// supplierID is the Supplier record the actor owns; required.
func NewSupplierActor(id kernel.UUID, supplierID kernel.UUID) (Actor, error) {
	return newPartyActor(id, RoleSupplier, supplierID)
}

// NewAdminActor creates an actor with the admin role.
func NewAdminActor(id kernel.UUID) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  RoleAdmin,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func newPartyActor(id kernel.UUID, role Role, party kernel.UUID) (Actor, error) {
	if err := errors.Join(id.Validate(), party.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		party: &party,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// CustomerID returns the owned Customer record id, or nil for non-customers.
func (a Actor) CustomerID() *kernel.UUID {
	if a.role != RoleCustomer {
		return nil
	}
	return a.party
}

// SupplierID returns the owned Supplier record id, or nil for non-suppliers.
func (a Actor) SupplierID() *kernel.UUID {
	if a.role != RoleSupplier {
		return nil
	}
	return a.party
}

// OwnsCustomer reports whether the actor owns the given customer record.
func (a Actor) OwnsCustomer(customerID kernel.UUID) bool {
	return a.role == RoleCustomer && a.party != nil && a.party.IsEqual(customerID)
}

// OwnsSupplier reports whether the actor owns the given supplier record.
func (a Actor) OwnsSupplier(supplierID kernel.UUID) bool {
	return a.role == RoleSupplier && a.party != nil && a.party.IsEqual(supplierID)
}

// Validate ensures the Actor was created through a constructor and its role
// is consistent with the owned party reference.
func (a Actor) Validate() error {
	if err := a.guard.Validate(ErrActorIsNotConstructed); err != nil {
		return err
	}
	if err := a.role.Validate(); err != nil {
		return err
	}
	if a.role != RoleAdmin && a.party == nil {
		return errs.NewValueIsRequiredError("party reference for non-admin actor")
	}
	return nil
}
