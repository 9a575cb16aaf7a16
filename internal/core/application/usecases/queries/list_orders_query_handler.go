package queries

import (
	"context"
	"strings"
	"time"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order rows straight from the database.
// Role scoping happens in the WHERE clause so an out-of-scope row is never
// even materialized.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the visible orders sorted by
// creation time, then id, for deterministic output.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	actor := query.Actor()
	switch {
	case actor.CustomerID() != nil:
		conditions = append(conditions, "customer_id = ?")
		args = append(args, actor.CustomerID().String())
	case actor.SupplierID() != nil:
		conditions = append(conditions, "supplier_id = ?")
		args = append(args, actor.SupplierID().String())
	}
	if query.StatusFilter() != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, int(*query.StatusFilter()))
	}

	sqlText := `
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
	`
	if len(conditions) > 0 {
		sqlText += " WHERE " + strings.Join(conditions, " AND ")
	}
	sqlText += " ORDER BY created_at, id"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)

	for rows.Next() {
		var orderResp ListOrdersQueryResponse
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

		orderResp, err = buildOrderResponse(
			id, customerID, supplierID, consolidationID,
			amount, currency, itemCount, weight, status, createdAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func buildOrderResponse(
	id uuid.UUID,
	customerID uuid.UUID,
	supplierID uuid.UUID,
	consolidationID uuid.NullUUID,
	amount decimal.Decimal,
	currency string,
	itemCount int,
	weight int,
	status int,
	createdAt time.Time,
) (ListOrdersQueryResponse, error) {
	var resp ListOrdersQueryResponse

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return resp, err
	}
	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return resp, err
	}
	suppID, err := kernel.UUIDFromBytes(supplierID[:])
	if err != nil {
		return resp, err
	}
	price, err := kernel.NewMoney(amount, kernel.Currency(currency))
	if err != nil {
		return resp, err
	}

	resp = ListOrdersQueryResponse{
		ID:         orderID,
		CustomerID: custID,
		SupplierID: suppID,
		Price:      price,
		ItemCount:  itemCount,
		Weight:     weight,
		Status:     order.Status(status),
		CreatedAt:  createdAt,
	}
	if consolidationID.Valid {
		ref, refErr := kernel.UUIDFromBytes(consolidationID.UUID[:])
		if refErr != nil {
			return resp, refErr
		}
		resp.ConsolidationID = &ref
	}
	return resp, nil
}
