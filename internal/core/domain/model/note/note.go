// Package note contains the Note entity: free-text collaboration attached to
// an order, with threaded replies. Any actor who can read the order may
// create notes and replies on it; only the author or an admin may delete
// them. Author identity and role are denormalized at creation and never
// change afterward.
package note

import (
	"errors"
	"time"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"
)

// ErrNoteIsNotConstructed is returned when a Note instance was not created
// through NewNote or RestoreNote.
var ErrNoteIsNotConstructed = errors.New("Note must be created via NewNote or RestoreNote")

// Reply is a single threaded response on a note. Immutable once written.
type Reply struct {
	id         kernel.UUID
	authorID   kernel.UUID
	authorRole auth.Role
	body       string
	createdAt  time.Time
}

// NewReply creates a reply with the author denormalized from the actor.
func NewReply(id kernel.UUID, author auth.Actor, body string) (Reply, error) {
	if err := errors.Join(id.Validate(), author.Validate()); err != nil {
		return Reply{}, err
	}
	if body == "" {
		return Reply{}, errs.NewValueIsRequiredError("body")
	}

	return Reply{
		id:         id,
		authorID:   author.ID(),
		authorRole: author.Role(),
		body:       body,
		createdAt:  time.Now().UTC(),
	}, nil
}

// RestoreReply reconstructs a reply from persistence.
func RestoreReply(id kernel.UUID, authorID kernel.UUID, authorRole auth.Role, body string, createdAt time.Time) (Reply, error) {
	if err := errors.Join(id.Validate(), authorID.Validate(), authorRole.Validate()); err != nil {
		return Reply{}, err
	}
	if body == "" {
		return Reply{}, errs.NewValueIsRequiredError("body")
	}

	return Reply{id: id, authorID: authorID, authorRole: authorRole, body: body, createdAt: createdAt}, nil
}

// ID returns the reply's unique identifier.
func (r Reply) ID() kernel.UUID { return r.id }

// AuthorID returns the identity of the reply's author.
func (r Reply) AuthorID() kernel.UUID { return r.authorID }

// AuthorRole returns the author's role at creation time.
func (r Reply) AuthorRole() auth.Role { return r.authorRole }

// Body returns the reply text.
func (r Reply) Body() string { return r.body }

// CreatedAt returns the creation timestamp.
func (r Reply) CreatedAt() time.Time { return r.createdAt }

// CanBeDeletedBy reports whether the actor may delete this reply:
// its author, or an admin.
func (r Reply) CanBeDeletedBy(actor auth.Actor) bool {
	return actor.IsAdmin() || actor.ID().IsEqual(r.authorID)
}

// Note is a titled annotation on an order with an ordered list of replies.
type Note struct {
	id         kernel.UUID
	orderID    kernel.UUID
	title      string
	body       string
	authorID   kernel.UUID
	authorRole auth.Role
	createdAt  time.Time
	replies    []Reply

	isConstructed bool
}

// NewNote creates a note on an order with the author denormalized from the
// actor. The existence and visibility of the order are checked by the
// caller; the note itself only validates its own fields.
func NewNote(id kernel.UUID, orderID kernel.UUID, author auth.Actor, title string, body string) (*Note, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), author.Validate()); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if body == "" {
		return nil, errs.NewValueIsRequiredError("body")
	}

	return &Note{
		id:            id,
		orderID:       orderID,
		title:         title,
		body:          body,
		authorID:      author.ID(),
		authorRole:    author.Role(),
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreNote reconstructs a note and its replies from persistence.
// Replies keep their stored order.
func RestoreNote(
	id kernel.UUID,
	orderID kernel.UUID,
	authorID kernel.UUID,
	authorRole auth.Role,
	title string,
	body string,
	createdAt time.Time,
	replies []Reply,
) (*Note, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), authorID.Validate(), authorRole.Validate()); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if body == "" {
		return nil, errs.NewValueIsRequiredError("body")
	}

	return &Note{
		id:            id,
		orderID:       orderID,
		title:         title,
		body:          body,
		authorID:      authorID,
		authorRole:    authorRole,
		createdAt:     createdAt,
		replies:       replies,
		isConstructed: true,
	}, nil
}

// Validate ensures the Note was created through a factory function.
func (n *Note) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNoteIsNotConstructed
	}
	return nil
}

// ID returns the note's unique identifier.
func (n *Note) ID() kernel.UUID { return n.id }

// OrderID returns the annotated order.
func (n *Note) OrderID() kernel.UUID { return n.orderID }

// Title returns the note title.
func (n *Note) Title() string { return n.title }

// Body returns the note text.
func (n *Note) Body() string { return n.body }

// AuthorID returns the identity of the note's author.
func (n *Note) AuthorID() kernel.UUID { return n.authorID }

// AuthorRole returns the author's role at creation time.
func (n *Note) AuthorRole() auth.Role { return n.authorRole }

// CreatedAt returns the creation timestamp.
func (n *Note) CreatedAt() time.Time { return n.createdAt }

// Replies returns the replies in creation order.
// The returned slice is a copy.
func (n *Note) Replies() []Reply {
	out := make([]Reply, len(n.replies))
	copy(out, n.replies)
	return out
}

// AddReply appends a reply to the thread.
func (n *Note) AddReply(reply Reply) {
	n.replies = append(n.replies, reply)
}

// RemoveReply deletes a reply by id.
// Returns NotFound if the thread holds no such reply.
func (n *Note) RemoveReply(replyID kernel.UUID) error {
	for i, r := range n.replies {
		if r.ID().IsEqual(replyID) {
			n.replies = append(n.replies[:i], n.replies[i+1:]...)
			return nil
		}
	}
	return errs.NewNotFoundError("reply", replyID.String())
}

// FindReply returns the reply with the given id.
func (n *Note) FindReply(replyID kernel.UUID) (Reply, error) {
	for _, r := range n.replies {
		if r.ID().IsEqual(replyID) {
			return r, nil
		}
	}
	return Reply{}, errs.NewNotFoundError("reply", replyID.String())
}

// CanBeDeletedBy reports whether the actor may delete this note:
// its author, or an admin.
func (n *Note) CanBeDeletedBy(actor auth.Actor) bool {
	return actor.IsAdmin() || actor.ID().IsEqual(n.authorID)
}
