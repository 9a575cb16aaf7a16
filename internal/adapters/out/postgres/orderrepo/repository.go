package orderrepo

import (
	"context"
	"errors"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// The Transition, ClaimForConsolidation and ReleaseFromConsolidation writes
// are single conditional UPDATEs whose WHERE clause re-checks the stored
// state, so overlapping callers race on the row itself and exactly one wins.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database. All columns are written,
// including those holding zero values.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Transition moves the order from one status to the next in a single
// conditional write. The guard re-checks the stored status and that no
// consolidation claimed the order in the meantime.
func (r *GormOrderRepository) Transition(
	ctx context.Context,
	id kernel.UUID,
	from order.Status,
	to order.Status,
) error {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND consolidation_id IS NULL", id.Bytes(), int(from)).
		Update("status", int(to))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.guardFailure(ctx, id, func() error {
			return errs.NewConflictErrorWithCause("order transition",
				errs.NewInvalidTransitionError("order", from.String(), to.String()))
		})
	}
	return nil
}

// ClaimForConsolidation atomically claims an eligible order. The order must
// still be ready for consolidation and unclaimed at write time.
func (r *GormOrderRepository) ClaimForConsolidation(
	ctx context.Context,
	orderID kernel.UUID,
	consolidationID kernel.UUID,
) error {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND consolidation_id IS NULL",
			orderID.Bytes(), int(order.ReadyForConsolidation)).
		Updates(map[string]any{
			"status":           int(order.Consolidated),
			"consolidation_id": consolidationID.Bytes(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.guardFailure(ctx, orderID, func() error {
			return errs.NewOrderNotEligibleError(orderID.String(),
				"not ready for consolidation or already claimed")
		})
	}
	return nil
}

// ReleaseFromConsolidation atomically returns a member order to the
// eligibility pool. The write succeeds only while the order is still claimed
// by exactly the given consolidation.
func (r *GormOrderRepository) ReleaseFromConsolidation(
	ctx context.Context,
	orderID kernel.UUID,
	consolidationID kernel.UUID,
) error {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND consolidation_id = ?",
			orderID.Bytes(), int(order.Consolidated), consolidationID.Bytes()).
		Updates(map[string]any{
			"status":           int(order.ReadyForConsolidation),
			"consolidation_id": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.guardFailure(ctx, orderID, func() error {
			return errs.NewConflictError("order release")
		})
	}
	return nil
}

// GetMembers retrieves all orders claimed by the consolidation, ordered by
// id.
func (r *GormOrderRepository) GetMembers(
	ctx context.Context,
	consolidationID kernel.UUID,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("consolidation_id = ?", consolidationID.Bytes()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	members := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		member, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		members = append(members, member)
	}

	return members, nil
}

// AdvanceMembers moves every member order in the given status to the next
// one with a single statement. Affecting zero rows is fine, the
// consolidation may be empty.
func (r *GormOrderRepository) AdvanceMembers(
	ctx context.Context,
	consolidationID kernel.UUID,
	from order.Status,
	to order.Status,
) error {
	return r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("consolidation_id = ? AND status = ?", consolidationID.Bytes(), int(from)).
		Update("status", int(to)).Error
}

// DetachDelivered clears the consolidation reference on delivered member
// orders so the consolidation row can be retired.
func (r *GormOrderRepository) DetachDelivered(
	ctx context.Context,
	consolidationID kernel.UUID,
) error {
	return r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("consolidation_id = ? AND status = ?", consolidationID.Bytes(), int(order.Delivered)).
		Update("consolidation_id", nil).Error
}

// guardFailure distinguishes a missing row from a failed write guard after a
// conditional update touched nothing.
func (r *GormOrderRepository) guardFailure(
	ctx context.Context,
	id kernel.UUID,
	onExisting func() error,
) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewNotFoundError("order", id.String())
	}
	return onExisting()
}
