package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// participantProbe yields the EXISTS predicate deciding whether the actor is
// a party on the consolidation a payment settles, plus its bind argument.
// Admin is a participant everywhere.
func participantProbe(actor auth.Actor, consolidationColumn string) (string, []any) {
	switch {
	case actor.CustomerID() != nil:
		return "EXISTS (SELECT 1 FROM orders o WHERE o.consolidation_id = " + consolidationColumn +
			" AND o.customer_id = ?)", []any{actor.CustomerID().String()}
	case actor.SupplierID() != nil:
		return "EXISTS (SELECT 1 FROM orders o WHERE o.consolidation_id = " + consolidationColumn +
			" AND o.supplier_id = ?)", []any{actor.SupplierID().String()}
	default:
		return "TRUE", nil
	}
}

// ListPaymentsQueryHandler reads payment rows. Non-admin actors are scoped
// to the consolidations they participate in, so every returned row already
// carries a payload the actor may see.
type ListPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewListPaymentsQueryHandler creates a handler for payment listing queries.
func NewListPaymentsQueryHandler(db *gorm.DB) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db}
}

// Handle executes the query and returns the visible payments sorted by
// creation time, then id.
func (h ListPaymentsQueryHandler) Handle(
	ctx context.Context,
	query ListPaymentsQuery,
) ([]ListPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	actor := query.Actor()
	if !actor.IsAdmin() {
		probe, probeArgs := participantProbe(actor, "p.consolidation_id")
		conditions = append(conditions, probe)
		args = append(args, probeArgs...)
	}
	if query.ConsolidationFilter() != nil {
		conditions = append(conditions, "p.consolidation_id = ?")
		args = append(args, query.ConsolidationFilter().String())
	}

	sqlText := "SELECT " + paymentColumns + " FROM payments p"
	if len(conditions) > 0 {
		sqlText += " WHERE " + strings.Join(conditions, " AND ")
	}
	sqlText += " ORDER BY p.created_at, p.id"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]ListPaymentsQueryResponse, 0)

	for rows.Next() {
		resp, scanErr := scanPaymentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		payments = append(payments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

const paymentColumns = `
	p.id,
	p.consolidation_id,
	p.amount,
	p.currency,
	p.method,
	p.status,
	p.bank_name,
	p.bank_account,
	p.cardholder_name,
	p.card_last4,
	p.reference,
	p.created_at,
	p.paid_at
`

func scanPaymentRow(rows *sql.Rows, extra ...any) (ListPaymentsQueryResponse, error) {
	var resp ListPaymentsQueryResponse
	var id, consolidationID uuid.UUID
	var amount decimal.Decimal
	var currency, method string
	var status int
	var details payment.Details
	var createdAt time.Time
	var paidAt sql.NullTime

	dests := []any{
		&id,
		&consolidationID,
		&amount,
		&currency,
		&method,
		&status,
		&details.BankName,
		&details.BankAccount,
		&details.CardholderName,
		&details.CardLast4,
		&details.Reference,
		&createdAt,
		&paidAt,
	}
	dests = append(dests, extra...)

	err := rows.Scan(dests...)
	if err != nil {
		return resp, err
	}

	paymentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return resp, err
	}
	consolidationRef, err := kernel.UUIDFromBytes(consolidationID[:])
	if err != nil {
		return resp, err
	}
	amountMoney, err := kernel.NewMoney(amount, kernel.Currency(currency))
	if err != nil {
		return resp, err
	}

	resp = ListPaymentsQueryResponse{
		ID:              paymentID,
		ConsolidationID: consolidationRef,
		Amount:          amountMoney,
		Method:          payment.Method(method),
		Status:          payment.Status(status),
		Details:         details,
		CreatedAt:       createdAt,
	}
	if paidAt.Valid {
		paid := paidAt.Time
		resp.PaidAt = &paid
	}
	return resp, nil
}
