package consolidation

import (
	"fmt"

	"cargopool/internal/pkg/errs"
)

// Status represents the lifecycle state of a consolidation.
//
// State transitions:
//
//	Pending ──> Consolidating ──> ReadyToShip ──> InTransit ──> Delivered
//	   │              │
//	   └──> Cancelled <┘
//
// Cancelled is reachable only while membership is still open; Delivered and
// Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: created, no shipping date yet.
	Pending

	// Consolidating means member orders are actively being added and removed.
	Consolidating

	// ReadyToShip closes membership and waits for dispatch.
	ReadyToShip

	// InTransit means the shipment left the warehouse. Requires a tracking
	// number to be set beforehand.
	InTransit

	// Delivered is terminal and freezes membership permanently.
	Delivered

	// Cancelled is terminal, reachable from Pending and Consolidating only.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Pending:       "Pending",
		Consolidating: "Consolidating",
		ReadyToShip:   "ReadyToShip",
		InTransit:     "InTransit",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

func successors() map[Status]Status {
	return map[Status]Status{
		Pending:       Consolidating,
		Consolidating: ReadyToShip,
		ReadyToShip:   InTransit,
		InTransit:     Delivered,
	}
}

// Validate checks that the Status value is one of the defined states.
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

// MembershipOpen reports whether orders may still be added or removed.
func (s Status) MembershipOpen() bool {
	return s == Pending || s == Consolidating
}

// TransitionTo validates a requested status change and returns the new
// status. Legal moves are the immediate forward successor and cancellation
// while membership is still open. Single-step only, same as the order
// lifecycle.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if target == Cancelled {
		if !s.MembershipOpen() {
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
