package services

import (
	"fmt"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/pkg/errs"
)

// Resource identifies the kind of entity an action targets.
type Resource string

const (
	ResourceOrder         Resource = "order"
	ResourceConsolidation Resource = "consolidation"
	ResourcePayment       Resource = "payment"
	ResourceNote          Resource = "note"
)

// Action identifies an operation on a resource. Every order transition maps
// to its own action so that each step of the lifecycle can be granted to a
// different set of roles.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionCancel Action = "cancel"
	ActionDelete Action = "delete"

	ActionConfirm            Action = "confirm"
	ActionInvoice            Action = "invoice"
	ActionMarkPaid           Action = "mark_paid"
	ActionReceiveAtWarehouse Action = "receive_at_warehouse"
	ActionMarkReady          Action = "mark_ready"

	ActionAddOrders         Action = "add_orders"
	ActionRemoveOrders      Action = "remove_orders"
	ActionAdvanceStatus     Action = "advance_status"
	ActionSetTrackingNumber Action = "set_tracking_number"

	ActionReply Action = "reply"
)

// Owner carries the party references of the targeted resource so the policy
// can apply its ownership predicate to non-admin actors. For read actions the
// handlers scope result sets by role inside their queries, so ownership is
// declared open with AnyOwner.
type Owner struct {
	customerID *kernel.UUID
	supplierID *kernel.UUID
	open       bool
}

// OwnedBy declares the customer and supplier parties of the resource.
// Either reference may be nil when the resource has no such party.
func OwnedBy(customerID *kernel.UUID, supplierID *kernel.UUID) Owner {
	return Owner{customerID: customerID, supplierID: supplierID}
}

// AnyOwner declares that ownership does not narrow the action further.
func AnyOwner() Owner {
	return Owner{open: true}
}

type policyKey struct {
	resource Resource
	action   Action
}

// getPolicyTable returns the static policy table: for each (resource, action)
// pair, the roles allowed to perform it. The table is the single source of
// truth for every permission check; ownership is applied on top of it for
// non-admin roles. A pair absent from this table must never be asked for.
func getPolicyTable() map[policyKey][]auth.Role {
	return map[policyKey][]auth.Role{
		{ResourceOrder, ActionCreate}:             {auth.RoleCustomer, auth.RoleAdmin},
		{ResourceOrder, ActionRead}:               {auth.RoleCustomer, auth.RoleSupplier, auth.RoleAdmin},
		{ResourceOrder, ActionConfirm}:            {auth.RoleSupplier, auth.RoleAdmin},
		{ResourceOrder, ActionInvoice}:            {auth.RoleSupplier, auth.RoleAdmin},
		{ResourceOrder, ActionMarkPaid}:           {auth.RoleAdmin},
		{ResourceOrder, ActionReceiveAtWarehouse}: {auth.RoleAdmin},
		{ResourceOrder, ActionMarkReady}:          {auth.RoleAdmin},
		{ResourceOrder, ActionCancel}:             {auth.RoleCustomer, auth.RoleAdmin},

		{ResourceConsolidation, ActionCreate}:            {auth.RoleAdmin},
		{ResourceConsolidation, ActionRead}:              {auth.RoleCustomer, auth.RoleSupplier, auth.RoleAdmin},
		{ResourceConsolidation, ActionAddOrders}:         {auth.RoleAdmin},
		{ResourceConsolidation, ActionRemoveOrders}:      {auth.RoleAdmin},
		{ResourceConsolidation, ActionAdvanceStatus}:     {auth.RoleAdmin},
		{ResourceConsolidation, ActionSetTrackingNumber}: {auth.RoleAdmin},
		{ResourceConsolidation, ActionCancel}:            {auth.RoleAdmin},

		{ResourcePayment, ActionCreate}:   {auth.RoleAdmin},
		{ResourcePayment, ActionRead}:     {auth.RoleCustomer, auth.RoleSupplier, auth.RoleAdmin},
		{ResourcePayment, ActionMarkPaid}: {auth.RoleAdmin},
		{ResourcePayment, ActionCancel}:   {auth.RoleAdmin},

		{ResourceNote, ActionCreate}: {auth.RoleCustomer, auth.RoleSupplier, auth.RoleAdmin},
		{ResourceNote, ActionRead}:   {auth.RoleCustomer, auth.RoleSupplier, auth.RoleAdmin},
		{ResourceNote, ActionReply}:  {auth.RoleCustomer, auth.RoleSupplier, auth.RoleAdmin},
		{ResourceNote, ActionDelete}: {auth.RoleCustomer, auth.RoleSupplier, auth.RoleAdmin},
	}
}

// OrderTransitionAction maps a requested order target status to the distinct
// action gating that transition. Statuses that an order can only reach
// through consolidation workflows have no direct transition action.
func OrderTransitionAction(target order.Status) (Action, error) {
	switch target {
	case order.Confirmed:
		return ActionConfirm, nil
	case order.Invoiced:
		return ActionInvoice, nil
	case order.Paid:
		return ActionMarkPaid, nil
	case order.ShippedToWarehouse:
		return ActionReceiveAtWarehouse, nil
	case order.ReadyForConsolidation:
		return ActionMarkReady, nil
	case order.Cancelled:
		return ActionCancel, nil
	default:
		return "", errs.NewInvalidTransitionError("order", "direct transition", target.String())
	}
}

// AccessPolicy is the authorization engine. It is a pure function over the
// static policy table: no side effects, deterministic, and total over every
// (resource, action) pair the application uses. Asking about an undefined
// pair is a programming error and panics instead of returning a denial.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// IsAllowed reports whether the actor may perform the action on the
// resource. Admin satisfies every defined check. Non-admin roles must both
// appear in the policy entry and satisfy the ownership predicate: the actor
// must own the matching party reference of the resource, unless ownership is
// declared open.
func (p AccessPolicy) IsAllowed(actor auth.Actor, resource Resource, action Action, owner Owner) bool {
	allowed, ok := getPolicyTable()[policyKey{resource: resource, action: action}]
	if !ok {
		panic(fmt.Sprintf("access policy: no entry for resource %q action %q", resource, action))
	}

	if actor.Validate() != nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}

	if !containsRole(allowed, actor.Role()) {
		return false
	}

	if owner.open {
		return true
	}

	switch actor.Role() {
	case auth.RoleCustomer:
		return owner.customerID != nil && actor.OwnsCustomer(*owner.customerID)
	case auth.RoleSupplier:
		return owner.supplierID != nil && actor.OwnsSupplier(*owner.supplierID)
	default:
		return false
	}
}

func containsRole(roles []auth.Role, role auth.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
