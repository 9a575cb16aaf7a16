package commands

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"
	"cargopool/internal/pkg/guard"
)

var ErrCreateNoteCommandIsNotConstructed = errors.New(
	"CreateNoteCommand must be created via NewCreateNoteCommand constructor",
)

// CreateNoteCommand represents a request to annotate an order.
type CreateNoteCommand struct { //nolint:recvcheck //using for validation
	actor   auth.Actor
	noteID  kernel.UUID
	orderID kernel.UUID
	title   string
	body    string

	guard guard.ConstructorGuard
}

// NewCreateNoteCommand creates a command to annotate an order.
// Title and body must be non-empty.
func NewCreateNoteCommand(
	actor auth.Actor,
	noteID kernel.UUID,
	orderID kernel.UUID,
	title string,
	body string,
) (CreateNoteCommand, error) {
	cmd := CreateNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setNoteID(noteID),
		cmd.setOrderID(orderID),
		cmd.setTitle(title),
		cmd.setBody(body),
	); err != nil {
		return CreateNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateNoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateNoteCommandIsNotConstructed)
}

// Actor returns the actor issuing the command.
func (c CreateNoteCommand) Actor() auth.Actor {
	return c.actor
}

// NoteID returns the unique identifier for the new note.
func (c CreateNoteCommand) NoteID() kernel.UUID {
	return c.noteID
}

// OrderID returns the order to annotate.
func (c CreateNoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Title returns the note title.
func (c CreateNoteCommand) Title() string {
	return c.title
}

// Body returns the note text.
func (c CreateNoteCommand) Body() string {
	return c.body
}

func (c *CreateNoteCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateNoteCommand) setNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.noteID = id
	return nil
}

func (c *CreateNoteCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateNoteCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateNoteCommand) setBody(body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}

	c.body = body
	return nil
}
