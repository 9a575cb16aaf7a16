// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order moves through a strict forward chain of statuses from Pending to
// Delivered, with cancellation reachable only before payment. Every status
// change is single-step: the machine never skips a state and never moves
// backward. Once a consolidation claims an order, further status changes are
// driven by the consolidation, not by direct transitions.
package order
