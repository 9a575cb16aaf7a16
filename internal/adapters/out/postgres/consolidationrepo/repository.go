package consolidationrepo

import (
	"context"
	"errors"
	"time"

	"cargopool/internal/core/domain/model/consolidation"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormConsolidationRepository implements ConsolidationRepository using GORM.
type GormConsolidationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormConsolidationRepository creates a new GORM consolidation
// repository.
func NewGormConsolidationRepository(db *gorm.DB, tracker aggregateTracker) *GormConsolidationRepository {
	return &GormConsolidationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new consolidation to the database.
func (r *GormConsolidationRepository) Add(ctx context.Context, aggregate *consolidation.Consolidation) error {
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

// Update saves an existing consolidation to the database. All columns are
// written so cleared tracking numbers and lowered aggregates land too.
func (r *GormConsolidationRepository) Update(ctx context.Context, aggregate *consolidation.Consolidation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ConsolidationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("consolidation", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a consolidation by ID together with its member order ids.
func (r *GormConsolidationRepository) Get(ctx context.Context, id kernel.UUID) (*consolidation.Consolidation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ConsolidationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("consolidation", id.String())
		}
		return nil, err
	}

	memberIDs, err := r.memberIDs(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, memberIDs)
}

// GetDeliveredBefore retrieves unarchived delivered consolidations shipped
// before the cutoff.
func (r *GormConsolidationRepository) GetDeliveredBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*consolidation.Consolidation, error) {
	var dtos []ConsolidationDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND NOT archived AND shipped_at IS NOT NULL AND shipped_at < ?",
			int(consolidation.Delivered), cutoff).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	consolidations := make([]*consolidation.Consolidation, 0, len(dtos))
	for _, dto := range dtos {
		memberIDs, memberErr := r.memberIDs(ctx, dto.ID)
		if memberErr != nil {
			return nil, memberErr
		}
		aggregate, mapErr := toDomain(dto, memberIDs)
		if mapErr != nil {
			return nil, mapErr
		}
		consolidations = append(consolidations, aggregate)
	}

	return consolidations, nil
}

// memberIDs reads the claim column of the orders table for the member list,
// ordered by id.
func (r *GormConsolidationRepository) memberIDs(ctx context.Context, consolidationID uuid.UUID) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("orders").
		Where("consolidation_id = ?", consolidationID).
		Order("id").
		Pluck("id", &raw).Error
	if err != nil {
		return nil, err
	}

	memberIDs := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		memberID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		memberIDs = append(memberIDs, memberID)
	}

	return memberIDs, nil
}
