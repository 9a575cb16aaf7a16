package commands

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"
	"cargopool/internal/pkg/guard"
)

var ErrAddReplyCommandIsNotConstructed = errors.New(
	"AddReplyCommand must be created via NewAddReplyCommand constructor",
)

// AddReplyCommand represents a request to append a reply to a note's thread.
type AddReplyCommand struct { //nolint:recvcheck //using for validation
	actor   auth.Actor
	replyID kernel.UUID
	noteID  kernel.UUID
	body    string

	guard guard.ConstructorGuard
}

// NewAddReplyCommand creates a command to append a reply.
// The body must be non-empty.
func NewAddReplyCommand(actor auth.Actor, replyID kernel.UUID, noteID kernel.UUID, body string) (AddReplyCommand, error) {
	cmd := AddReplyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setReplyID(replyID),
		cmd.setNoteID(noteID),
		cmd.setBody(body),
	); err != nil {
		return AddReplyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddReplyCommand) Validate() error {
	return c.guard.Validate(ErrAddReplyCommandIsNotConstructed)
}

// Actor returns the actor issuing the command.
func (c AddReplyCommand) Actor() auth.Actor {
	return c.actor
}

// ReplyID returns the unique identifier for the new reply.
func (c AddReplyCommand) ReplyID() kernel.UUID {
	return c.replyID
}

// NoteID returns the note to reply to.
func (c AddReplyCommand) NoteID() kernel.UUID {
	return c.noteID
}

// Body returns the reply text.
func (c AddReplyCommand) Body() string {
	return c.body
}

func (c *AddReplyCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AddReplyCommand) setReplyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.replyID = id
	return nil
}

func (c *AddReplyCommand) setNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.noteID = id
	return nil
}

func (c *AddReplyCommand) setBody(body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}

	c.body = body
	return nil
}
