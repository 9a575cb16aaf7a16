package payment

import (
	"errors"
	"fmt"
	"time"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Status represents the settlement state of a payment.
// Transitions only move forward: Pending -> Paid, and Pending or Paid ->
// Cancelled (administrative correction). Paid records are otherwise frozen.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a created payment.
	StatusPending

	// StatusPaid means the settlement completed.
	StatusPaid

	// StatusCancelled voids the payment. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusPaid:      "Paid",
		StatusCancelled: "Cancelled",
	}
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid status", int(s)))
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

// Method is the closed set of settlement methods.
type Method string

const (
	MethodBankTransfer Method = "bank_transfer"
	MethodCard         Method = "card"
	MethodWire         Method = "wire"
	MethodOther        Method = "other"
)

// Validate checks that the method is one of the known values.
func (m Method) Validate() error {
	switch m {
	case MethodBankTransfer, MethodCard, MethodWire, MethodOther:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("method",
			fmt.Errorf("%q is not a valid payment method", string(m)))
	}
}

// String returns the method name.
func (m Method) String() string {
	return string(m)
}

// Details is the method-specific sensitive payload of a payment. Bank fields
// apply to bank transfers and wires, card fields to card payments. The
// payload is visible only to admin and the parties directly involved in the
// underlying consolidation; everyone else receives a redacted record.
type Details struct {
	BankName       string
	BankAccount    string
	CardholderName string
	CardLast4      string
	Reference      string
}

// IsEmpty reports whether every detail field is blank.
func (d Details) IsEmpty() bool {
	return d == Details{}
}

// RedactFor returns the payload an actor may see. Admin and participants on
// the underlying consolidation get the full record; everyone else an empty
// one.
func (d Details) RedactFor(actor auth.Actor, participant bool) Details {
	if actor.IsAdmin() || participant {
		return d
	}
	return Details{}
}

// Payment is a settlement record against exactly one consolidation. The
// amount is a snapshot of the consolidation's total value at creation time
// and is immutable thereafter.
type Payment struct {
	id              kernel.UUID
	consolidationID kernel.UUID
	amount          kernel.Money
	method          Method
	details         Details
	status          Status
	createdAt       time.Time
	paidAt          *time.Time

	isConstructed bool
}

// NewPayment creates a pending payment for a consolidation. The amount is
// the consolidation's aggregate value captured by the caller at creation
// time.
func NewPayment(
	id kernel.UUID,
	consolidationID kernel.UUID,
	amount kernel.Money,
	method Method,
	details Details,
) (*Payment, error) {
	p := &Payment{
		status:        StatusPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setConsolidationID(consolidationID),
		p.setAmount(amount),
		p.setMethod(method),
	); err != nil {
		return nil, err
	}

	p.details = details
	return p, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id kernel.UUID,
	consolidationID kernel.UUID,
	amount kernel.Money,
	method Method,
	details Details,
	status Status,
	createdAt time.Time,
	paidAt *time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, consolidationID, amount, method, details)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	p.createdAt = createdAt
	p.paidAt = paidAt
	return p, nil
}

// Validate ensures the Payment was created through a factory function.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// ConsolidationID returns the consolidation this payment settles.
func (p *Payment) ConsolidationID() kernel.UUID {
	return p.consolidationID
}

// Amount returns the immutable value snapshot.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Method returns the settlement method.
func (p *Payment) Method() Method {
	return p.method
}

// Details returns the sensitive method-specific payload. Callers outside the
// core must apply visibility redaction before exposing it.
func (p *Payment) Details() Details {
	return p.details
}

// Status returns the settlement state.
func (p *Payment) Status() Status {
	return p.status
}

// CreatedAt returns the creation timestamp.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// PaidAt returns the settlement timestamp, or nil while pending.
func (p *Payment) PaidAt() *time.Time {
	return p.paidAt
}

// IsActive reports whether the payment counts against the one-active-payment
// rule, i.e. it is not cancelled.
func (p *Payment) IsActive() bool {
	return p.status != StatusCancelled
}

// MarkPaid completes the settlement. Only a pending payment can be paid;
// paid records are never mutated again except by Cancel.
func (p *Payment) MarkPaid() error {
	if p.status != StatusPending {
		return errs.NewInvalidTransitionError("payment", p.status.String(), StatusPaid.String())
	}

	now := time.Now().UTC()
	p.status = StatusPaid
	p.paidAt = &now
	return nil
}

// Cancel voids the payment, from Pending or Paid (administrative
// correction). Cancelling does not resurrect any order or consolidation
// state.
func (p *Payment) Cancel() error {
	if p.status != StatusPending && p.status != StatusPaid {
		return errs.NewInvalidTransitionError("payment", p.status.String(), StatusCancelled.String())
	}

	p.status = StatusCancelled
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setConsolidationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.consolidationID = id
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}
