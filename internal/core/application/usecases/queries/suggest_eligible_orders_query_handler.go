package queries

import (
	"context"
	"time"

	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SuggestEligibleOrdersQueryHandler feeds the aggregator workflow, so it is
// gated by the same policy entry as consolidation membership changes rather
// than by row scoping.
type SuggestEligibleOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewSuggestEligibleOrdersQueryHandler creates a handler for the candidate
// queue query.
func NewSuggestEligibleOrdersQueryHandler(
	db *gorm.DB,
	policy services.AccessPolicy,
) SuggestEligibleOrdersQueryHandler {
	return SuggestEligibleOrdersQueryHandler{db: db, policy: policy}
}

// Handle executes the query. Returns eligible orders in ascending
// (created_at, id) order.
func (h SuggestEligibleOrdersQueryHandler) Handle(
	ctx context.Context,
	query SuggestEligibleOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !h.policy.IsAllowed(actor, services.ResourceConsolidation, services.ActionAddOrders, services.AnyOwner()) {
		return nil, errs.NewForbiddenError(actor.Role().String(), string(services.ActionAddOrders))
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			supplier_id,
			price_amount,
			price_currency,
			item_count,
			weight,
			status,
			consolidation_id,
			created_at
		FROM orders
		WHERE status = ? AND consolidation_id IS NULL
		ORDER BY created_at, id
	`, int(order.ReadyForConsolidation)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)

	for rows.Next() {
		var id, customerID, supplierID uuid.UUID
		var consolidationID uuid.NullUUID
		var amount decimal.Decimal
		var currency string
		var itemCount, weight, status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&supplierID,
			&amount,
			&currency,
			&itemCount,
			&weight,
			&status,
			&consolidationID,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		resp, buildErr := buildOrderResponse(
			id, customerID, supplierID, consolidationID,
			amount, currency, itemCount, weight, status, createdAt,
		)
		if buildErr != nil {
			return nil, buildErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
