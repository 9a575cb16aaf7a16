package commands

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the parties, the monetary amount, and the physical
// characteristics that later feed consolidation aggregates.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, kernel.NewUUID(), customerID, supplierID, price, 3, 12)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, policy)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor      auth.Actor
	orderID    kernel.UUID
	customerID kernel.UUID
	supplierID kernel.UUID
	price      kernel.Money
	itemCount  int
	weight     int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the actor, both party references, the price, and that item count
// and weight are positive.
func NewCreateOrderCommand(
	actor auth.Actor,
	orderID kernel.UUID,
	customerID kernel.UUID,
	supplierID kernel.UUID,
	price kernel.Money,
	itemCount int,
	weight int,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		itemCount: itemCount,
		weight:    weight,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setParties(customerID, supplierID),
		cmd.setPrice(price),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the actor issuing the command.
func (c CreateOrderCommand) Actor() auth.Actor {
	return c.actor
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// SupplierID returns the supplier fulfilling the order.
func (c CreateOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Price returns the order's monetary amount.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// ItemCount returns the number of line items.
func (c CreateOrderCommand) ItemCount() int {
	return c.itemCount
}

// Weight returns the shipping weight in kilograms.
func (c CreateOrderCommand) Weight() int {
	return c.weight
}

func (c *CreateOrderCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setParties(customerID kernel.UUID, supplierID kernel.UUID) error {
	if err := errors.Join(customerID.Validate(), supplierID.Validate()); err != nil {
		return err
	}

	c.customerID = customerID
	c.supplierID = supplierID
	return nil
}

func (c *CreateOrderCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
