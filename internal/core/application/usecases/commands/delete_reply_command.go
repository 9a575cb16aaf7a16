package commands

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/guard"
)

var ErrDeleteReplyCommandIsNotConstructed = errors.New(
	"DeleteReplyCommand must be created via NewDeleteReplyCommand constructor",
)

// DeleteReplyCommand represents a request to delete a single reply from a
// note's thread.
type DeleteReplyCommand struct { //nolint:recvcheck //using for validation
	actor   auth.Actor
	noteID  kernel.UUID
	replyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteReplyCommand creates a command to delete a reply.
func NewDeleteReplyCommand(actor auth.Actor, noteID kernel.UUID, replyID kernel.UUID) (DeleteReplyCommand, error) {
	cmd := DeleteReplyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setNoteID(noteID),
		cmd.setReplyID(replyID),
	); err != nil {
		return DeleteReplyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteReplyCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReplyCommandIsNotConstructed)
}

// Actor returns the actor issuing the command.
func (c DeleteReplyCommand) Actor() auth.Actor {
	return c.actor
}

// NoteID returns the note holding the reply.
func (c DeleteReplyCommand) NoteID() kernel.UUID {
	return c.noteID
}

// ReplyID returns the reply to delete.
func (c DeleteReplyCommand) ReplyID() kernel.UUID {
	return c.replyID
}

func (c *DeleteReplyCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *DeleteReplyCommand) setNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.noteID = id
	return nil
}

func (c *DeleteReplyCommand) setReplyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.replyID = id
	return nil
}
