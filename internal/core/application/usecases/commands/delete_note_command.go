package commands

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/guard"
)

var ErrDeleteNoteCommandIsNotConstructed = errors.New(
	"DeleteNoteCommand must be created via NewDeleteNoteCommand constructor",
)

// DeleteNoteCommand represents a request to delete a note with its thread.
type DeleteNoteCommand struct { //nolint:recvcheck //using for validation
	actor  auth.Actor
	noteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteNoteCommand creates a command to delete a note.
func NewDeleteNoteCommand(actor auth.Actor, noteID kernel.UUID) (DeleteNoteCommand, error) {
	cmd := DeleteNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setActor(actor), cmd.setNoteID(noteID)); err != nil {
		return DeleteNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteNoteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteNoteCommandIsNotConstructed)
}

// Actor returns the actor issuing the command.
func (c DeleteNoteCommand) Actor() auth.Actor {
	return c.actor
}

// NoteID returns the note to delete.
func (c DeleteNoteCommand) NoteID() kernel.UUID {
	return c.noteID
}

func (c *DeleteNoteCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *DeleteNoteCommand) setNoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.noteID = id
	return nil
}
