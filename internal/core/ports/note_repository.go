package ports

import (
	"context"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/note"
)

// NoteRepository defines the persistence contract for notes and their
// reply threads.
type NoteRepository interface {
	// Add persists a new note to storage.
	Add(ctx context.Context, aggregate *note.Note) error

	// Update persists changes to an existing note, including its replies.
	Update(ctx context.Context, aggregate *note.Note) error

	// Get retrieves a note with its replies by its unique identifier.
	// Returns NotFound if no such note exists.
	Get(ctx context.Context, id kernel.UUID) (*note.Note, error)

	// Delete removes a note and its replies.
	// Returns NotFound if no such note exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
