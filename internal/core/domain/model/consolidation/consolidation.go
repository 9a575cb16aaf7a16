package consolidation

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/pkg/errs"
)

// ErrConsolidationIsNotConstructed is returned when a Consolidation instance
// was not created through NewConsolidation or RestoreConsolidation.
var ErrConsolidationIsNotConstructed = errors.New(
	"Consolidation must be created via NewConsolidation or RestoreConsolidation")

// DefaultCurrency seeds the total value of a consolidation with no members
// yet. The first recompute adopts the members' currency.
const DefaultCurrency kernel.Currency = "USD"

func newStatusInvalidError(s Status) error {
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid status", int(s)))
}

func newInvalidTransitionError(from Status, to Status) error {
	return errs.NewInvalidTransitionError("consolidation", from.String(), to.String())
}

// Aggregates are the derived totals of a consolidation's membership set.
// They are recomputed in full from a snapshot of the member orders on every
// membership change; incremental updates are deliberately not supported to
// avoid compounding rounding and consistency errors.
type Aggregates struct {
	// TotalWeight is the sum of member weights in kilograms.
	TotalWeight int

	// TotalValue is the sum of member prices.
	TotalValue kernel.Money

	// SupplierCount is the number of distinct suppliers across members.
	SupplierCount int

	// CustomerCount is the number of distinct customers across members.
	CustomerCount int
}

// Consolidation is the aggregate root of the consolidation lifecycle. It
// holds an ordered, duplicate-free set of member order references, derived
// aggregates, and shipping metadata.
//
// Invariants:
//   - Membership is a set: no order id appears twice
//   - Aggregates always equal a fresh recomputation from the membership
//   - Membership changes are permitted only while status is Pending or
//     Consolidating; Delivered freezes membership permanently
//   - InTransit requires a tracking number to already be set
//   - Never removed while member orders still reference it; archival
//     detaches members first
type Consolidation struct {
	id   kernel.UUID
	name string

	// memberIDs is kept sorted by id for deterministic iteration.
	memberIDs []kernel.UUID

	aggregates Aggregates
	status     Status

	shippedAt      *time.Time
	trackingNumber *string

	// hasPayment flags that an active payment exists for this consolidation.
	hasPayment bool

	// archived flags delivered consolidations past the retention period.
	archived bool

	createdAt     time.Time
	isConstructed bool
}

// NewConsolidation creates an empty consolidation in Pending status.
// The name must be non-empty; aggregates start at zero.
func NewConsolidation(id kernel.UUID, name string) (*Consolidation, error) {
	zero, err := kernel.ZeroMoney(DefaultCurrency)
	if err != nil {
		return nil, err
	}

	c := &Consolidation{
		status:        Pending,
		aggregates:    Aggregates{TotalValue: zero},
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err = errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreConsolidation reconstructs a consolidation from persistence.
func RestoreConsolidation(
	id kernel.UUID,
	name string,
	memberIDs []kernel.UUID,
	aggregates Aggregates,
	status Status,
	shippedAt *time.Time,
	trackingNumber *string,
	hasPayment bool,
	archived bool,
	createdAt time.Time,
) (*Consolidation, error) {
	c, err := NewConsolidation(id, name)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = aggregates.TotalValue.Validate(); err != nil {
		return nil, err
	}

	c.memberIDs = dedupeSorted(memberIDs)
	c.aggregates = aggregates
	c.status = status
	c.shippedAt = shippedAt
	c.trackingNumber = trackingNumber
	c.hasPayment = hasPayment
	c.archived = archived
	c.createdAt = createdAt
	return c, nil
}

func dedupeSorted(ids []kernel.UUID) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id.String()]; ok {
			continue
		}
		seen[id.String()] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Validate ensures the Consolidation was created through a factory function.
func (c *Consolidation) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConsolidationIsNotConstructed
	}
	return nil
}

// ID returns the consolidation's unique identifier.
func (c *Consolidation) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name.
func (c *Consolidation) Name() string {
	return c.name
}

// MemberIDs returns the member order ids, sorted by id.
// The returned slice is a copy; mutating it does not affect the aggregate.
func (c *Consolidation) MemberIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.memberIDs))
	copy(out, c.memberIDs)
	return out
}

// HasMember reports whether the given order belongs to the membership set.
func (c *Consolidation) HasMember(orderID kernel.UUID) bool {
	for _, id := range c.memberIDs {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// Aggregates returns the derived totals of the current membership.
func (c *Consolidation) Aggregates() Aggregates {
	return c.aggregates
}

// Status returns the current lifecycle status.
func (c *Consolidation) Status() Status {
	return c.status
}

// ShippedAt returns the shipping date, or nil before dispatch.
func (c *Consolidation) ShippedAt() *time.Time {
	return c.shippedAt
}

// TrackingNumber returns the carrier tracking number, or nil if unset.
func (c *Consolidation) TrackingNumber() *string {
	return c.trackingNumber
}

// HasPayment reports whether an active payment exists for this consolidation.
func (c *Consolidation) HasPayment() bool {
	return c.hasPayment
}

// IsArchived reports whether the archival job already retired this
// consolidation.
func (c *Consolidation) IsArchived() bool {
	return c.archived
}

// CreatedAt returns the creation timestamp.
func (c *Consolidation) CreatedAt() time.Time {
	return c.createdAt
}

// EnsureMembershipOpen fails unless orders may still be added or removed.
// Delivered consolidations report Immutable; ReadyToShip and InTransit report
// a conflict because the shipment is already sealed.
func (c *Consolidation) EnsureMembershipOpen() error {
	if c.status.MembershipOpen() {
		return nil
	}
	if c.status == Delivered {
		return errs.NewImmutableError("consolidation", c.id.String())
	}
	return errs.NewConflictErrorWithCause("consolidation membership",
		fmt.Errorf("membership is closed in status %s", c.status))
}

// RecomputeAggregates replaces the membership set and derived totals from a
// snapshot of the member orders. Every member must reference this
// consolidation; all member prices must share one currency.
//
// This is the only way membership and aggregates change, so the stored
// totals always equal a fresh recomputation.
func (c *Consolidation) RecomputeAggregates(members []*order.Order) error {
	if err := c.EnsureMembershipOpen(); err != nil {
		return err
	}

	ids := make([]kernel.UUID, 0, len(members))
	suppliers := make(map[string]struct{})
	customers := make(map[string]struct{})
	totalWeight := 0

	total, err := kernel.ZeroMoney(DefaultCurrency)
	if err != nil {
		return err
	}

	for i, m := range members {
		if err = m.Validate(); err != nil {
			return err
		}
		if m.Consolidation() == nil || !m.Consolidation().IsEqual(c.id) {
			return errs.NewConflictErrorWithCause("consolidation membership",
				fmt.Errorf("order %s does not reference consolidation %s", m.ID(), c.id))
		}

		if i == 0 {
			if total, err = kernel.ZeroMoney(m.Price().Currency()); err != nil {
				return err
			}
		}
		if total, err = total.Add(m.Price()); err != nil {
			return err
		}

		ids = append(ids, m.ID())
		suppliers[m.SupplierID().String()] = struct{}{}
		customers[m.CustomerID().String()] = struct{}{}
		totalWeight += m.Weight()
	}

	c.memberIDs = dedupeSorted(ids)
	c.aggregates = Aggregates{
		TotalWeight:   totalWeight,
		TotalValue:    total,
		SupplierCount: len(suppliers),
		CustomerCount: len(customers),
	}
	return nil
}

// SetTrackingNumber records the carrier tracking number. Must be non-empty
// and cannot change once the shipment is in transit.
func (c *Consolidation) SetTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if c.status == InTransit || c.status == Delivered {
		return errs.NewImmutableError("consolidation tracking number", c.id.String())
	}

	c.trackingNumber = &trackingNumber
	return nil
}

// Advance moves the consolidation one step forward, in the same single-step
// style as the order lifecycle. Moving to InTransit requires a tracking
// number to already be set and stamps the shipping date.
func (c *Consolidation) Advance(target Status) error {
	if target == InTransit && c.trackingNumber == nil {
		return errs.NewValueIsRequiredError("tracking number before dispatch")
	}

	newStatus, err := c.status.TransitionTo(target)
	if err != nil {
		return err
	}

	c.status = newStatus
	if newStatus == InTransit && c.shippedAt == nil {
		now := time.Now().UTC()
		c.shippedAt = &now
	}
	return nil
}

// Cancel abandons the consolidation. Permitted only while membership is open
// and after every member order has been released back to eligibility.
func (c *Consolidation) Cancel() error {
	if len(c.memberIDs) > 0 {
		return errs.NewConflictErrorWithCause("consolidation cancel",
			fmt.Errorf("%d member orders still attached", len(c.memberIDs)))
	}

	newStatus, err := c.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// MarkPaymentAttached flags that an active payment now exists.
func (c *Consolidation) MarkPaymentAttached() {
	c.hasPayment = true
}

// MarkPaymentDetached clears the payment flag after a cancellation of the
// payment record.
func (c *Consolidation) MarkPaymentDetached() {
	c.hasPayment = false
}

// Archive retires a delivered consolidation once the retention period has
// passed. deliveredBefore is the retention cutoff; the caller must already
// have detached all member orders, preserving referential integrity.
func (c *Consolidation) Archive(retentionCutoff time.Time) error {
	if c.status != Delivered {
		return newInvalidTransitionError(c.status, Delivered)
	}
	if c.shippedAt != nil && c.shippedAt.After(retentionCutoff) {
		return errs.NewConflictErrorWithCause("consolidation archive",
			fmt.Errorf("retention period not yet passed for %s", c.id))
	}

	c.archived = true
	return nil
}

func (c *Consolidation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Consolidation) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
