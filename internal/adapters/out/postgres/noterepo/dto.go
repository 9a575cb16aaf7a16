// Package noterepo provides data transfer objects and mapping functions for
// note persistence. A note row owns its reply rows through a foreign key;
// deleting the note cascades over the thread.
package noterepo

import (
	"time"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/note"

	"github.com/google/uuid"
)

// NoteDTO represents the database structure for persisting note aggregates.
type NoteDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title      string     `gorm:"type:varchar(255);not null"`
	Body       string     `gorm:"type:text;not null"`
	AuthorID   uuid.UUID  `gorm:"type:uuid;not null"`
	AuthorRole string     `gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time  `gorm:"not null"`
	Replies    []ReplyDTO `gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for note entities.
func (NoteDTO) TableName() string {
	return "notes"
}

// ReplyDTO represents the database structure for persisting replies.
// Links to its note via foreign key.
type ReplyDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	NoteID     uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	AuthorRole string    `gorm:"type:varchar(16);not null"`
	Body       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for reply entities.
func (ReplyDTO) TableName() string {
	return "note_replies"
}

// fromDomain converts a note domain aggregate to its database
// representation, reply thread included.
func fromDomain(aggregate *note.Note) NoteDTO {
	noteID := aggregate.ID().Bytes()
	replies := make([]ReplyDTO, 0, len(aggregate.Replies()))

	for _, reply := range aggregate.Replies() {
		replies = append(replies, ReplyDTO{
			ID:         reply.ID().Bytes(),
			NoteID:     noteID,
			AuthorID:   reply.AuthorID().Bytes(),
			AuthorRole: reply.AuthorRole().String(),
			Body:       reply.Body(),
			CreatedAt:  reply.CreatedAt(),
		})
	}

	return NoteDTO{
		ID:         noteID,
		OrderID:    aggregate.OrderID().Bytes(),
		Title:      aggregate.Title(),
		Body:       aggregate.Body(),
		AuthorID:   aggregate.AuthorID().Bytes(),
		AuthorRole: aggregate.AuthorRole().String(),
		CreatedAt:  aggregate.CreatedAt(),
		Replies:    replies,
	}
}

// toDomain converts a database DTO to a note domain aggregate using
// RestoreNote.
func toDomain(dto NoteDTO) (*note.Note, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return nil, err
	}

	replies := make([]note.Reply, 0, len(dto.Replies))
	for _, replyDto := range dto.Replies {
		reply, replyErr := replyToDomain(replyDto)
		if replyErr != nil {
			return nil, replyErr
		}
		replies = append(replies, reply)
	}

	return note.RestoreNote(
		id,
		orderID,
		authorID,
		auth.Role(dto.AuthorRole),
		dto.Title,
		dto.Body,
		dto.CreatedAt,
		replies,
	)
}

// replyToDomain converts a reply DTO to its domain value using RestoreReply.
func replyToDomain(dto ReplyDTO) (note.Reply, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return note.Reply{}, err
	}
	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return note.Reply{}, err
	}

	return note.RestoreReply(id, authorID, auth.Role(dto.AuthorRole), dto.Body, dto.CreatedAt)
}
