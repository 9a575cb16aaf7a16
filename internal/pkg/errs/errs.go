package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for every expected, caller-recoverable outcome of the core.
// Each concrete error type below unwraps to one of these so callers can
// classify results with errors.Is without inspecting message text.
var (
	ErrNotFound               = errors.New("object not found")
	ErrForbidden              = errors.New("action is forbidden for actor")
	ErrInvalidTransition      = errors.New("status transition is not allowed")
	ErrConflict               = errors.New("operation conflicts with concurrent state change")
	ErrOrderNotEligible       = errors.New("order is not eligible for consolidation")
	ErrEmptySelection         = errors.New("selection must contain at least one order")
	ErrDuplicateActivePayment = errors.New("consolidation already has an active payment")
	ErrImmutable              = errors.New("object is frozen and cannot be modified")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsRequired        = errors.New("value is required")
	ErrUnavailable            = errors.New("storage is unavailable")
)

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewNotFoundError(paramName string, id any) *NotFoundError {
	return &NotFoundError{ParamName: paramName, ID: id}
}

func NewNotFoundErrorWithCause(paramName string, id any, cause error) *NotFoundError {
	return &NotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrNotFound, sanitize(e.ID))
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ForbiddenError reports that the access policy denied an action for an actor.
type ForbiddenError struct {
	Role   string
	Action string
	Cause  error
}

func NewForbiddenError(role string, action string) *ForbiddenError {
	return &ForbiddenError{Role: role, Action: action}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: role %s may not %s (cause: %v)", ErrForbidden, e.Role, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: role %s may not %s", ErrForbidden, e.Role, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidTransitionError reports a status change that is not the legal next
// step for the entity's state machine.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func NewInvalidTransitionError(entity string, from string, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConflictError reports a concurrency or cross-component ordering violation,
// such as a compare-and-set losing to a concurrent writer.
type ConflictError struct {
	ParamName string
	Cause     error
}

func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

func NewConflictErrorWithCause(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrConflict, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.ParamName)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// OrderNotEligibleError reports an order that cannot be pulled into a
// consolidation, either because of its status or because another
// consolidation already claimed it.
type OrderNotEligibleError struct {
	OrderID any
	Reason  string
}

func NewOrderNotEligibleError(orderID any, reason string) *OrderNotEligibleError {
	return &OrderNotEligibleError{OrderID: orderID, Reason: reason}
}

func (e *OrderNotEligibleError) Error() string {
	return fmt.Sprintf("%s: order %s: %s", ErrOrderNotEligible, sanitize(e.OrderID), e.Reason)
}

func (e *OrderNotEligibleError) Unwrap() error {
	return ErrOrderNotEligible
}

// EmptySelectionError reports a multi-order operation invoked with no orders.
type EmptySelectionError struct {
	ParamName string
}

func NewEmptySelectionError(paramName string) *EmptySelectionError {
	return &EmptySelectionError{ParamName: paramName}
}

func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrEmptySelection, e.ParamName)
}

func (e *EmptySelectionError) Unwrap() error {
	return ErrEmptySelection
}

// DuplicateActivePaymentError reports an attempt to create a second
// non-cancelled payment for the same consolidation.
type DuplicateActivePaymentError struct {
	ConsolidationID any
}

func NewDuplicateActivePaymentError(consolidationID any) *DuplicateActivePaymentError {
	return &DuplicateActivePaymentError{ConsolidationID: consolidationID}
}

func (e *DuplicateActivePaymentError) Error() string {
	return fmt.Sprintf("%s: consolidation %s", ErrDuplicateActivePayment, sanitize(e.ConsolidationID))
}

func (e *DuplicateActivePaymentError) Unwrap() error {
	return ErrDuplicateActivePayment
}

// ImmutableError reports a mutation attempt on an entity that reached a
// terminal status and froze.
type ImmutableError struct {
	ParamName string
	ID        any
}

func NewImmutableError(paramName string, id any) *ImmutableError {
	return &ImmutableError{ParamName: paramName, ID: id}
}

func (e *ImmutableError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrImmutable, e.ParamName, sanitize(e.ID))
}

func (e *ImmutableError) Unwrap() error {
	return ErrImmutable
}

// ValueIsInvalidError reports malformed input, rejected before any state is
// touched.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// UnavailableError wraps a genuine infrastructure failure. This is the single
// kind callers should retry; everything else is a final business outcome.
type UnavailableError struct {
	Cause error
}

func NewUnavailableError(cause error) *UnavailableError {
	return &UnavailableError{Cause: cause}
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", ErrUnavailable, e.Cause)
	}
	return ErrUnavailable.Error()
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}
