package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"cargopool/internal/core/domain/model/consolidation"
	"cargopool/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListConsolidationsQueryHandler reads consolidation rows with their
// denormalized aggregates. Party scoping uses an EXISTS probe against the
// member orders so a customer or supplier only sees consolidations they are
// shipping in.
type ListConsolidationsQueryHandler struct {
	db *gorm.DB
}

// NewListConsolidationsQueryHandler creates a handler for consolidation
// listing queries.
func NewListConsolidationsQueryHandler(db *gorm.DB) ListConsolidationsQueryHandler {
	return ListConsolidationsQueryHandler{db: db}
}

// Handle executes the query and returns the visible consolidations sorted by
// creation time, then id.
func (h ListConsolidationsQueryHandler) Handle(
	ctx context.Context,
	query ListConsolidationsQuery,
) ([]ListConsolidationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 1)

	actor := query.Actor()
	switch {
	case actor.CustomerID() != nil:
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM orders o WHERE o.consolidation_id = c.id AND o.customer_id = ?)")
		args = append(args, actor.CustomerID().String())
	case actor.SupplierID() != nil:
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM orders o WHERE o.consolidation_id = c.id AND o.supplier_id = ?)")
		args = append(args, actor.SupplierID().String())
	}
	if !query.IncludeArchived() {
		conditions = append(conditions, "NOT c.archived")
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
	`
	if len(conditions) > 0 {
		sqlText += " WHERE " + strings.Join(conditions, " AND ")
	}
	sqlText += " ORDER BY c.created_at, c.id"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	consolidations := make([]ListConsolidationsQueryResponse, 0)

	for rows.Next() {
		resp, scanErr := scanConsolidationRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		consolidations = append(consolidations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return consolidations, nil
}

func scanConsolidationRow(rows *sql.Rows) (ListConsolidationsQueryResponse, error) {
	var resp ListConsolidationsQueryResponse
	var id uuid.UUID
	var name string
	var status, totalWeight, supplierCount, customerCount int
	var amount decimal.Decimal
	var currency string
	var trackingNumber sql.NullString
	var shippedAt sql.NullTime
	var hasPayment, archived bool
	var createdAt time.Time

	err := rows.Scan(
		&id,
		&name,
		&status,
		&totalWeight,
		&amount,
		&currency,
		&supplierCount,
		&customerCount,
		&trackingNumber,
		&shippedAt,
		&hasPayment,
		&archived,
		&createdAt,
	)
	if err != nil {
		return resp, err
	}

	consolidationID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return resp, err
	}
	totalValue, err := kernel.NewMoney(amount, kernel.Currency(currency))
	if err != nil {
		return resp, err
	}

	resp = ListConsolidationsQueryResponse{
		ID:            consolidationID,
		Name:          name,
		Status:        consolidation.Status(status),
		TotalWeight:   totalWeight,
		TotalValue:    totalValue,
		SupplierCount: supplierCount,
		CustomerCount: customerCount,
		HasPayment:    hasPayment,
		Archived:      archived,
		CreatedAt:     createdAt,
	}
	if trackingNumber.Valid {
		tracking := trackingNumber.String
		resp.TrackingNumber = &tracking
	}
	if shippedAt.Valid {
		shipped := shippedAt.Time
		resp.ShippedAt = &shipped
	}
	return resp, nil
}
