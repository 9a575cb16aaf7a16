package noterepo

import (
	"context"
	"errors"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/note"
	"cargopool/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNoteRepository implements NoteRepository using GORM.
type GormNoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNoteRepository creates a new GORM note repository.
func NewGormNoteRepository(db *gorm.DB, tracker aggregateTracker) *GormNoteRepository {
	return &GormNoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new note to the database, replies included.
func (r *GormNoteRepository) Add(ctx context.Context, aggregate *note.Note) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing note to the database. The reply thread is
// reconciled: rows dropped from the aggregate are deleted.
func (r *GormNoteRepository) Update(ctx context.Context, aggregate *note.Note) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if err := r.pruneReplies(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a note with its replies by ID. Replies come back in posting
// order so the restored thread matches the aggregate's ordering.
func (r *GormNoteRepository) Get(ctx context.Context, id kernel.UUID) (*note.Note, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NoteDTO
	err := r.db.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, id")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("note", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a note and its reply thread.
func (r *GormNoteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Where("note_id = ?", id.Bytes()).
		Delete(&ReplyDTO{}).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ?", id.Bytes()).
		Delete(&NoteDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("note", id.String())
	}

	return nil
}

// pruneReplies deletes reply rows no longer present on the aggregate.
func (r *GormNoteRepository) pruneReplies(ctx context.Context, dto NoteDTO) error {
	if len(dto.Replies) == 0 {
		return r.db.WithContext(ctx).
			Where("note_id = ?", dto.ID).
			Delete(&ReplyDTO{}).Error
	}

	keep := make([]uuid.UUID, 0, len(dto.Replies))
	for _, reply := range dto.Replies {
		keep = append(keep, reply.ID)
	}

	return r.db.WithContext(ctx).
		Where("note_id = ? AND id NOT IN ?", dto.ID, keep).
		Delete(&ReplyDTO{}).Error
}
