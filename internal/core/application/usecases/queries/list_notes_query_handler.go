package queries

import (
	"context"
	"time"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListNotesQueryHandler reads the notes of one order together with their
// replies. The order itself is resolved first under the actor's scope, so
// notes on an invisible order are never reachable.
type ListNotesQueryHandler struct {
	db *gorm.DB
}

// NewListNotesQueryHandler creates a handler for note listing queries.
func NewListNotesQueryHandler(db *gorm.DB) ListNotesQueryHandler {
	return ListNotesQueryHandler{db: db}
}

// Handle executes the query. Returns a NotFound error when the order does
// not exist or falls outside the actor's scope. Notes and replies come back
// in posting order.
func (h ListNotesQueryHandler) Handle(
	ctx context.Context,
	query ListNotesQuery,
) ([]ListNotesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	visible, err := h.orderVisible(ctx, query.Actor(), query.OrderID())
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, errs.NewNotFoundError("order", query.OrderID().String())
	}

	notes, byID, err := h.readNotes(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if err = h.attachReplies(ctx, query.OrderID(), byID); err != nil {
		return nil, err
	}

	result := make([]ListNotesQueryResponse, 0, len(notes))
	for _, id := range notes {
		result = append(result, *byID[id])
	}
	return result, nil
}

func (h ListNotesQueryHandler) orderVisible(
	ctx context.Context,
	actor auth.Actor,
	orderID kernel.UUID,
) (bool, error) {
	sqlText := "SELECT 1 FROM orders WHERE id = ?"
	args := []any{orderID.String()}

	switch {
	case actor.CustomerID() != nil:
		sqlText += " AND customer_id = ?"
		args = append(args, actor.CustomerID().String())
	case actor.SupplierID() != nil:
		sqlText += " AND supplier_id = ?"
		args = append(args, actor.SupplierID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return false, err
	}
	defer rows.Close()

	visible := rows.Next()
	if err = rows.Err(); err != nil {
		return false, err
	}
	return visible, nil
}

func (h ListNotesQueryHandler) readNotes(
	ctx context.Context,
	orderID kernel.UUID,
) ([]string, map[string]*ListNotesQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, title, body, author_id, author_role, created_at
		FROM notes
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	ordering := make([]string, 0)
	byID := make(map[string]*ListNotesQueryResponse)

	for rows.Next() {
		var id, noteOrderID, authorID uuid.UUID
		var title, body, authorRole string
		var createdAt time.Time

		err = rows.Scan(&id, &noteOrderID, &title, &body, &authorID, &authorRole, &createdAt)
		if err != nil {
			return nil, nil, err
		}

		noteID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		orderRef, idErr := kernel.UUIDFromBytes(noteOrderID[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		author, idErr := kernel.UUIDFromBytes(authorID[:])
		if idErr != nil {
			return nil, nil, idErr
		}

		resp := &ListNotesQueryResponse{
			ID:         noteID,
			OrderID:    orderRef,
			Title:      title,
			Body:       body,
			AuthorID:   author,
			AuthorRole: auth.Role(authorRole),
			CreatedAt:  createdAt,
			Replies:    make([]ListNotesQueryReply, 0),
		}
		ordering = append(ordering, noteID.String())
		byID[noteID.String()] = resp
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return ordering, byID, nil
}

func (h ListNotesQueryHandler) attachReplies(
	ctx context.Context,
	orderID kernel.UUID,
	byID map[string]*ListNotesQueryResponse,
) error {
	if len(byID) == 0 {
		return nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT r.id, r.note_id, r.author_id, r.author_role, r.body, r.created_at
		FROM note_replies r
		JOIN notes n ON n.id = r.note_id
		WHERE n.order_id = ?
		ORDER BY r.created_at, r.id
	`, orderID.String()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, noteID, authorID uuid.UUID
		var authorRole, body string
		var createdAt time.Time

		err = rows.Scan(&id, &noteID, &authorID, &authorRole, &body, &createdAt)
		if err != nil {
			return err
		}

		replyID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		author, idErr := kernel.UUIDFromBytes(authorID[:])
		if idErr != nil {
			return idErr
		}

		note, ok := byID[noteID.String()]
		if !ok {
			continue
		}
		note.Replies = append(note.Replies, ListNotesQueryReply{
			ID:         replyID,
			AuthorID:   author,
			AuthorRole: auth.Role(authorRole),
			Body:       body,
			CreatedAt:  createdAt,
		})
	}

	return rows.Err()
}
