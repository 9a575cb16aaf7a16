package queries

import (
	"context"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetConsolidationQueryHandler reads one consolidation row and its member
// order ids.
type GetConsolidationQueryHandler struct {
	db *gorm.DB
}

// NewGetConsolidationQueryHandler creates a handler for single-consolidation
// lookups.
func NewGetConsolidationQueryHandler(db *gorm.DB) GetConsolidationQueryHandler {
	return GetConsolidationQueryHandler{db: db}
}

// Handle executes the lookup. Returns a NotFound error when the id does not
// exist or falls outside the actor's scope.
func (h GetConsolidationQueryHandler) Handle(
	ctx context.Context,
	query GetConsolidationQuery,
) (GetConsolidationQueryResponse, error) {
	var resp GetConsolidationQueryResponse

	if err := query.Validate(); err != nil {
		return resp, err
	}

	sqlText := `
		SELECT
			c.id,
			c.name,
			c.status,
			c.total_weight,
			c.total_value_amount,
			c.total_value_currency,
			c.supplier_count,
			c.customer_count,
			c.tracking_number,
			c.shipped_at,
			c.has_payment,
			c.archived,
			c.created_at
		FROM consolidations c
		WHERE c.id = ?
	`
	args := []any{query.ConsolidationID().String()}

	actor := query.Actor()
	switch {
	case actor.CustomerID() != nil:
		sqlText += " AND EXISTS (SELECT 1 FROM orders o WHERE o.consolidation_id = c.id AND o.customer_id = ?)"
		args = append(args, actor.CustomerID().String())
	case actor.SupplierID() != nil:
		sqlText += " AND EXISTS (SELECT 1 FROM orders o WHERE o.consolidation_id = c.id AND o.supplier_id = ?)"
		args = append(args, actor.SupplierID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return resp, err
		}
		return resp, errs.NewNotFoundError("consolidation", query.ConsolidationID().String())
	}
	resp.Consolidation, err = scanConsolidationRow(rows)
	if err != nil {
		return resp, err
	}
	if err = rows.Close(); err != nil {
		return resp, err
	}

	resp.MemberIDs, err = h.memberIDs(ctx, query.ConsolidationID())
	if err != nil {
		return GetConsolidationQueryResponse{}, err
	}

	return resp, nil
}

func (h GetConsolidationQueryHandler) memberIDs(
	ctx context.Context,
	consolidationID kernel.UUID,
) ([]kernel.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM orders
		WHERE consolidation_id = ?
		ORDER BY id
	`, consolidationID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberIDs := make([]kernel.UUID, 0)

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		memberID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		memberIDs = append(memberIDs, memberID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return memberIDs, nil
}
