package queries

import (
	"context"

	"cargopool/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPaymentQueryHandler reads one payment row and applies the detail
// redaction contract: a response handed to a non-participant never contains
// the sensitive payload.
type GetPaymentQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentQueryHandler creates a handler for single-payment lookups.
func NewGetPaymentQueryHandler(db *gorm.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db}
}

// Handle executes the lookup. The participant flag is computed in the same
// statement so the redaction decision and the row are consistent.
func (h GetPaymentQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentQuery,
) (ListPaymentsQueryResponse, error) {
	var resp ListPaymentsQueryResponse

	if err := query.Validate(); err != nil {
		return resp, err
	}

	probe, probeArgs := participantProbe(query.Actor(), "p.consolidation_id")
	sqlText := "SELECT " + paymentColumns + ", " + probe +
		" AS participant FROM payments p WHERE p.id = ?"
	args := append(probeArgs, query.PaymentID().String())

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return resp, err
		}
		return resp, errs.NewNotFoundError("payment", query.PaymentID().String())
	}

	var participant bool
	resp, err = scanPaymentRow(rows, &participant)
	if err != nil {
		return ListPaymentsQueryResponse{}, err
	}
	resp.Details = resp.Details.RedactFor(query.Actor(), participant)

	return resp, nil
}
