package order

import (
	"errors"
	"fmt"
	"time"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

func newStatusInvalidError(s Status) error {
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid status", int(s)))
}

func newInvalidTransitionError(from Status, to Status) error {
	return errs.NewInvalidTransitionError("order", from.String(), to.String())
}

// Order is the aggregate root of the order lifecycle. It references the
// customer that placed it and the supplier that fulfills it, carries the
// monetary amount and physical weight used by consolidation aggregates, and
// owns the status state machine.
//
// Invariants:
//   - References at most one active consolidation at a time
//   - Status changes are single-step only, enforced by Status.TransitionTo
//   - Once claimed by a consolidation, direct transitions are refused;
//     the owning consolidation drives the remaining shipment statuses
//   - Never hard-deleted after leaving Pending; cancellation is the only exit
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	supplierID kernel.UUID

	// price is the monetary amount of the order, summed into the owning
	// consolidation's total value.
	price kernel.Money

	// itemCount is the number of line items.
	itemCount int

	// weight is the shipping weight in kilograms, summed into the owning
	// consolidation's total weight.
	weight int

	createdAt time.Time
	status    Status

	// consolidationID is the owning consolidation (nil while unclaimed).
	consolidationID *kernel.UUID

	isConstructed bool
}

// NewOrder creates an order in Pending status with the creation timestamp
// set to the current time. All references and values are validated; the
// price must be a constructed Money value, item count and weight must be
// positive.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	supplierID kernel.UUID,
	price kernel.Money,
	itemCount int,
	weight int,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(customerID, supplierID),
		o.setPrice(price),
		o.setItemCount(itemCount),
		o.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts an arbitrary valid status, creation timestamp, and consolidation
// reference, and verifies their consistency.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	supplierID kernel.UUID,
	price kernel.Money,
	itemCount int,
	weight int,
	status Status,
	consolidationID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, supplierID, price, itemCount, weight)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = validateConsolidationRef(status, consolidationID); err != nil {
		return nil, err
	}

	o.status = status
	o.consolidationID = consolidationID
	o.createdAt = createdAt
	return o, nil
}

// validateConsolidationRef enforces the consistency rule between status and
// the consolidation reference: claimed statuses require a reference,
// pre-consolidation statuses forbid one. Delivered orders may carry either;
// the archival job detaches them once the retention period passes.
func validateConsolidationRef(status Status, consolidationID *kernel.UUID) error {
	if status == Delivered {
		return nil
	}

	claimed := status == Consolidated || status == InTransit
	if claimed && consolidationID == nil {
		return errs.NewValueIsRequiredError(
			fmt.Sprintf("consolidation reference for status %s", status))
	}
	if !claimed && consolidationID != nil {
		return errs.NewValueIsInvalidErrorWithCause("consolidationID",
			fmt.Errorf("%s order cannot reference a consolidation", status))
	}
	return nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer that placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// SupplierID returns the supplier fulfilling the order.
func (o *Order) SupplierID() kernel.UUID {
	return o.supplierID
}

// Price returns the order's monetary amount.
func (o *Order) Price() kernel.Money {
	return o.price
}

// ItemCount returns the number of line items.
func (o *Order) ItemCount() int {
	return o.itemCount
}

// Weight returns the shipping weight in kilograms.
func (o *Order) Weight() int {
	return o.weight
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Consolidation returns the owning consolidation's id, or nil while the
// order is unclaimed.
func (o *Order) Consolidation() *kernel.UUID {
	return o.consolidationID
}

// IsEligibleForConsolidation reports whether the aggregator may claim the
// order: it must be ReadyForConsolidation and not already claimed.
func (o *Order) IsEligibleForConsolidation() bool {
	return o.status == ReadyForConsolidation && o.consolidationID == nil
}

// TransitionTo moves the order one step through its lifecycle.
//
// Returns a Conflict error if the order is claimed by a consolidation
// (claimed orders advance only through the owning consolidation) and an
// InvalidTransition error if target is not the immediate successor of the
// current status (or Cancelled from an allowed predecessor).
func (o *Order) TransitionTo(target Status) error {
	if o.consolidationID != nil {
		return errs.NewConflictErrorWithCause("order transition",
			fmt.Errorf("order %s is claimed by consolidation %s", o.id, o.consolidationID))
	}
	if target == Consolidated {
		// Claiming happens through ClaimFor, never by direct transition.
		return newInvalidTransitionError(o.status, target)
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order. Permitted only before payment, from Pending or
// Confirmed; cancelled orders leave aggregation candidacy permanently.
func (o *Order) Cancel() error {
	return o.TransitionTo(Cancelled)
}

// ClaimFor assigns the order to a consolidation, moving it to Consolidated.
// Fails with OrderNotEligible unless the order is ReadyForConsolidation and
// unclaimed. The persistence layer performs the equivalent compare-and-set so
// that two concurrent aggregations can never both claim the same order.
func (o *Order) ClaimFor(consolidationID kernel.UUID) error {
	if err := consolidationID.Validate(); err != nil {
		return err
	}

	if o.consolidationID != nil {
		return errs.NewOrderNotEligibleError(o.id.String(),
			fmt.Sprintf("already claimed by consolidation %s", o.consolidationID))
	}
	if o.status != ReadyForConsolidation {
		return errs.NewOrderNotEligibleError(o.id.String(),
			fmt.Sprintf("status is %s, not %s", o.status, ReadyForConsolidation))
	}

	o.status = Consolidated
	o.consolidationID = &consolidationID
	return nil
}

// ReleaseFrom detaches the order from the given consolidation, returning it
// to ReadyForConsolidation. Fails with Conflict if the order is not currently
// claimed by that consolidation.
func (o *Order) ReleaseFrom(consolidationID kernel.UUID) error {
	if o.status != Consolidated || o.consolidationID == nil || !o.consolidationID.IsEqual(consolidationID) {
		return errs.NewConflictErrorWithCause("order release",
			fmt.Errorf("order %s is not claimed by consolidation %s", o.id, consolidationID))
	}

	o.status = ReadyForConsolidation
	o.consolidationID = nil
	return nil
}

// AdvanceShipment moves a claimed order along the shipment tail of the
// lifecycle (Consolidated -> InTransit -> Delivered). Called by the
// aggregator when the owning consolidation advances; direct callers go
// through TransitionTo and are refused while the claim holds.
func (o *Order) AdvanceShipment(target Status) error {
	if o.consolidationID == nil {
		return errs.NewConflictErrorWithCause("order shipment",
			fmt.Errorf("order %s is not claimed by a consolidation", o.id))
	}
	if target != InTransit && target != Delivered {
		return newInvalidTransitionError(o.status, target)
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(customerID kernel.UUID, supplierID kernel.UUID) error {
	if err := errors.Join(customerID.Validate(), supplierID.Validate()); err != nil {
		return err
	}
	o.customerID = customerID
	o.supplierID = supplierID
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}

func (o *Order) setItemCount(itemCount int) error {
	if itemCount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("itemCount",
			fmt.Errorf("%d is not greater than 0", itemCount))
	}
	o.itemCount = itemCount
	return nil
}

func (o *Order) setWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%d is not greater than 0", weight))
	}
	o.weight = weight
	return nil
}
