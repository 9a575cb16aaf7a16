package order

import (
	"fmt"

	"cargopool/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit adjacency table so that the
// legal next step is checked centrally, never inferred by callers.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Invoiced ──> Paid ──> ShippedToWarehouse
//	   │            │                                        │
//	   └──> Cancelled <──┘                                   v
//	                                         ReadyForConsolidation ──> Consolidated
//	                                                                        │
//	                                                   Delivered <── InTransit
//
// Cancellation is reachable only from Pending and Confirmed; Delivered and
// Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a customer places an order.
	Pending

	// Confirmed means the supplier accepted the order.
	Confirmed

	// Invoiced means the supplier issued an invoice for the order.
	Invoiced

	// Paid means the operator recorded the customer's payment.
	Paid

	// ShippedToWarehouse means the goods arrived at the operator's warehouse.
	ShippedToWarehouse

	// ReadyForConsolidation makes the order visible to the aggregator's
	// eligibility query.
	ReadyForConsolidation

	// Consolidated means a consolidation claimed the order. From here status
	// changes are driven by the owning consolidation.
	Consolidated

	// InTransit means the consolidated shipment left the warehouse.
	InTransit

	// Delivered is the terminal success status.
	Delivered

	// Cancelled is the terminal status of orders withdrawn before payment.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:               "Unknown",
		Pending:               "Pending",
		Confirmed:             "Confirmed",
		Invoiced:              "Invoiced",
		Paid:                  "Paid",
		ShippedToWarehouse:    "ShippedToWarehouse",
		ReadyForConsolidation: "ReadyForConsolidation",
		Consolidated:          "Consolidated",
		InTransit:             "InTransit",
		Delivered:             "Delivered",
		Cancelled:             "Cancelled",
	}
}

// successors is the adjacency table of the forward chain. A status absent
// from the table has no forward successor.
func successors() map[Status]Status {
	return map[Status]Status{
		Pending:               Confirmed,
		Confirmed:             Invoiced,
		Invoiced:              Paid,
		Paid:                  ShippedToWarehouse,
		ShippedToWarehouse:    ReadyForConsolidation,
		ReadyForConsolidation: Consolidated,
		Consolidated:          InTransit,
		InTransit:             Delivered,
	}
}

// Validate checks that the Status value is one of the defined states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return newStatusInvalidError(s)
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return newStatusInvalidError(s)
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any value; invalid values print as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status by its display name.
func StatusFromString(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == name && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", name))
}

// Next returns the immediate forward successor and whether one exists.
func (s Status) Next() (Status, bool) {
	next, ok := successors()[s]
	return next, ok
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanCancel reports whether the side-branch to Cancelled is reachable.
// Cancellation is permitted only before payment.
func (s Status) CanCancel() bool {
	return s == Pending || s == Confirmed
}

// TransitionTo validates a requested status change and returns the new
// status. The only legal moves are the immediate forward successor and the
// cancellation side-branch from Pending or Confirmed. No skipping states,
// no going backward.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if target == Cancelled {
		if !s.CanCancel() {
			return 0, newInvalidTransitionError(s, target)
		}
		return Cancelled, nil
	}

	next, ok := s.Next()
	if !ok || next != target {
		return 0, newInvalidTransitionError(s, target)
	}

	return target, nil
}
