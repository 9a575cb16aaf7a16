package http

import (
	"time"

	"cargopool/internal/core/application/usecases/queries"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"
)

// Request bodies.

type CreateOrderRequest struct {
	CustomerID    string `json:"customerId"`
	SupplierID    string `json:"supplierId"`
	PriceAmount   string `json:"priceAmount"`
	PriceCurrency string `json:"priceCurrency"`
	ItemCount     int    `json:"itemCount"`
	Weight        int    `json:"weight"`
}

type TransitionOrderRequest struct {
	Target string `json:"target"`
}

type CreateConsolidationRequest struct {
	Name     string   `json:"name"`
	OrderIDs []string `json:"orderIds"`
}

type MembershipRequest struct {
	OrderIDs []string `json:"orderIds"`
}

type AdvanceConsolidationRequest struct {
	Target         string  `json:"target"`
	TrackingNumber *string `json:"trackingNumber,omitempty"`
}

type CreatePaymentRequest struct {
	ConsolidationID string         `json:"consolidationId"`
	Method          string         `json:"method"`
	Details         PaymentDetails `json:"details"`
}

type CreateNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type AddReplyRequest struct {
	Body string `json:"body"`
}

// Response bodies.

type CreatedResponse struct {
	ID string `json:"id"`
}

type Order struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customerId"`
	SupplierID      string    `json:"supplierId"`
	PriceAmount     string    `json:"priceAmount"`
	PriceCurrency   string    `json:"priceCurrency"`
	ItemCount       int       `json:"itemCount"`
	Weight          int       `json:"weight"`
	Status          string    `json:"status"`
	ConsolidationID *string   `json:"consolidationId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Consolidation struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Status             string     `json:"status"`
	TotalWeight        int        `json:"totalWeight"`
	TotalValueAmount   string     `json:"totalValueAmount"`
	TotalValueCurrency string     `json:"totalValueCurrency"`
	SupplierCount      int        `json:"supplierCount"`
	CustomerCount      int        `json:"customerCount"`
	TrackingNumber     *string    `json:"trackingNumber,omitempty"`
	ShippedAt          *time.Time `json:"shippedAt,omitempty"`
	HasPayment         bool       `json:"hasPayment"`
	Archived           bool       `json:"archived"`
	CreatedAt          time.Time  `json:"createdAt"`
}

type ConsolidationDetail struct {
	Consolidation
	MemberIDs []string `json:"memberIds"`
}

type PaymentDetails struct {
	BankName       string `json:"bankName,omitempty"`
	BankAccount    string `json:"bankAccount,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
	CardLast4      string `json:"cardLast4,omitempty"`
	Reference      string `json:"reference,omitempty"`
}

type Payment struct {
	ID              string         `json:"id"`
	ConsolidationID string         `json:"consolidationId"`
	Amount          string         `json:"amount"`
	Currency        string         `json:"currency"`
	Method          string         `json:"method"`
	Status          string         `json:"status"`
	Details         PaymentDetails `json:"details"`
	CreatedAt       time.Time      `json:"createdAt"`
	PaidAt          *time.Time     `json:"paidAt,omitempty"`
}

type NoteReply struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"authorId"`
	AuthorRole string    `json:"authorRole"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Note struct {
	ID         string      `json:"id"`
	OrderID    string      `json:"orderId"`
	Title      string      `json:"title"`
	Body       string      `json:"body"`
	AuthorID   string      `json:"authorId"`
	AuthorRole string      `json:"authorRole"`
	CreatedAt  time.Time   `json:"createdAt"`
	Replies    []NoteReply `json:"replies"`
}

func toOrder(src queries.ListOrdersQueryResponse) Order {
	resp := Order{
		ID:            src.ID.String(),
		CustomerID:    src.CustomerID.String(),
		SupplierID:    src.SupplierID.String(),
		PriceAmount:   src.Price.Amount().String(),
		PriceCurrency: string(src.Price.Currency()),
		ItemCount:     src.ItemCount,
		Weight:        src.Weight,
		Status:        src.Status.String(),
		CreatedAt:     src.CreatedAt,
	}
	if src.ConsolidationID != nil {
		id := src.ConsolidationID.String()
		resp.ConsolidationID = &id
	}
	return resp
}

func toOrders(src []queries.ListOrdersQueryResponse) []Order {
	resp := make([]Order, len(src))
	for i, item := range src {
		resp[i] = toOrder(item)
	}
	return resp
}

func toConsolidation(src queries.ListConsolidationsQueryResponse) Consolidation {
	return Consolidation{
		ID:                 src.ID.String(),
		Name:               src.Name,
		Status:             src.Status.String(),
		TotalWeight:        src.TotalWeight,
		TotalValueAmount:   src.TotalValue.Amount().String(),
		TotalValueCurrency: string(src.TotalValue.Currency()),
		SupplierCount:      src.SupplierCount,
		CustomerCount:      src.CustomerCount,
		TrackingNumber:     src.TrackingNumber,
		ShippedAt:          src.ShippedAt,
		HasPayment:         src.HasPayment,
		Archived:           src.Archived,
		CreatedAt:          src.CreatedAt,
	}
}

func toPayment(src queries.ListPaymentsQueryResponse) Payment {
	return Payment{
		ID:              src.ID.String(),
		ConsolidationID: src.ConsolidationID.String(),
		Amount:          src.Amount.Amount().String(),
		Currency:        string(src.Amount.Currency()),
		Method:          src.Method.String(),
		Status:          src.Status.String(),
		Details: PaymentDetails{
			BankName:       src.Details.BankName,
			BankAccount:    src.Details.BankAccount,
			CardholderName: src.Details.CardholderName,
			CardLast4:      src.Details.CardLast4,
			Reference:      src.Details.Reference,
		},
		CreatedAt: src.CreatedAt,
		PaidAt:    src.PaidAt,
	}
}

func toNote(src queries.ListNotesQueryResponse) Note {
	replies := make([]NoteReply, len(src.Replies))
	for i, reply := range src.Replies {
		replies[i] = NoteReply{
			ID:         reply.ID.String(),
			AuthorID:   reply.AuthorID.String(),
			AuthorRole: reply.AuthorRole.String(),
			Body:       reply.Body,
			CreatedAt:  reply.CreatedAt,
		}
	}
	return Note{
		ID:         src.ID.String(),
		OrderID:    src.OrderID.String(),
		Title:      src.Title,
		Body:       src.Body,
		AuthorID:   src.AuthorID.String(),
		AuthorRole: src.AuthorRole.String(),
		CreatedAt:  src.CreatedAt,
		Replies:    replies,
	}
}

func parseUUIDList(raw []string, paramName string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, len(raw))
	for i, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(paramName, err)
		}
		ids[i] = id
	}
	return ids, nil
}
