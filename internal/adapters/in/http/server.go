package http

import (
	"net/http"

	"cargopool/internal/core/application/usecases/commands"
	"cargopool/internal/core/application/usecases/queries"
	"cargopool/internal/core/domain/model/consolidation"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/core/domain/model/payment"
	"cargopool/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every use case the HTTP surface exposes.
type Handlers struct {
	CreateOrder     commands.CreateOrderCommandHandler
	TransitionOrder commands.TransitionOrderCommandHandler

	CreateConsolidation        commands.CreateConsolidationCommandHandler
	AddOrders                  commands.AddOrdersToConsolidationCommandHandler
	RemoveOrders               commands.RemoveOrdersFromConsolidationCommandHandler
	AdvanceConsolidationStatus commands.AdvanceConsolidationStatusCommandHandler

	CreatePayment   commands.CreatePaymentCommandHandler
	MarkPaymentPaid commands.MarkPaymentPaidCommandHandler
	CancelPayment   commands.CancelPaymentCommandHandler

	CreateNote  commands.CreateNoteCommandHandler
	DeleteNote  commands.DeleteNoteCommandHandler
	AddReply    commands.AddReplyCommandHandler
	DeleteReply commands.DeleteReplyCommandHandler

	ListOrders         queries.ListOrdersQueryHandler
	SuggestEligible    queries.SuggestEligibleOrdersQueryHandler
	ListConsolidations queries.ListConsolidationsQueryHandler
	GetConsolidation   queries.GetConsolidationQueryHandler
	ListPayments       queries.ListPaymentsQueryHandler
	GetPayment         queries.GetPaymentQueryHandler
	ListNotes          queries.ListNotesQueryHandler
}

// Server exposes the command and query use cases over HTTP.
// It translates between JSON payloads and core types; all authorization
// decisions stay in the core.
type Server struct {
	handlers Handlers
}

// NewServer creates the HTTP server with the required use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/eligible", s.GetEligibleOrders)
	api.POST("/orders/:orderID/transition", s.TransitionOrder)
	api.GET("/orders/:orderID/notes", s.GetNotes)
	api.POST("/orders/:orderID/notes", s.CreateNote)

	api.POST("/consolidations", s.CreateConsolidation)
	api.GET("/consolidations", s.GetConsolidations)
	api.GET("/consolidations/:consolidationID", s.GetConsolidation)
	api.POST("/consolidations/:consolidationID/orders", s.AddOrders)
	api.POST("/consolidations/:consolidationID/orders/remove", s.RemoveOrders)
	api.POST("/consolidations/:consolidationID/advance", s.AdvanceConsolidation)

	api.POST("/payments", s.CreatePayment)
	api.GET("/payments", s.GetPayments)
	api.GET("/payments/:paymentID", s.GetPayment)
	api.POST("/payments/:paymentID/paid", s.MarkPaymentPaid)
	api.POST("/payments/:paymentID/cancel", s.CancelPayment)

	api.DELETE("/notes/:noteID", s.DeleteNote)
	api.POST("/notes/:noteID/replies", s.AddReply)
	api.DELETE("/notes/:noteID/replies/:replyID", s.DeleteReply)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("customerId", err))
	}
	supplierID, err := kernel.UUIDFromString(req.SupplierID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("supplierId", err))
	}
	price, err := kernel.MoneyFromString(req.PriceAmount, kernel.Currency(req.PriceCurrency))
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		actor, orderID, customerID, supplierID, price, req.ItemCount, req.Weight)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders with an optional ?status= filter.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewListOrdersQuery(actor, statusFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetEligibleOrders handles GET /api/v1/orders/eligible - orders ready to
// join a consolidation.
func (s *Server) GetEligibleOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewSuggestEligibleOrdersQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.SuggestEligible.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// TransitionOrder handles POST /api/v1/orders/:orderID/transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req TransitionOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(actor, orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateConsolidation handles POST /api/v1/consolidations.
func (s *Server) CreateConsolidation(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateConsolidationRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	orderIDs, err := parseUUIDList(req.OrderIDs, "orderIds")
	if err != nil {
		return writeError(ctx, err)
	}

	consolidationID := kernel.NewUUID()
	cmd, err := commands.NewCreateConsolidationCommand(actor, consolidationID, req.Name, orderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateConsolidation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: consolidationID.String()})
}

// GetConsolidations handles GET /api/v1/consolidations with an optional
// ?includeArchived=true flag.
func (s *Server) GetConsolidations(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	includeArchived := ctx.QueryParam("includeArchived") == "true"
	query, err := queries.NewListConsolidationsQuery(actor, includeArchived)
	if err != nil {
		return writeError(ctx, err)
	}

	consolidations, err := s.handlers.ListConsolidations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Consolidation, len(consolidations))
	for i, item := range consolidations {
		response[i] = toConsolidation(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetConsolidation handles GET /api/v1/consolidations/:consolidationID.
func (s *Server) GetConsolidation(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	consolidationID, err := pathUUID(ctx, "consolidationID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetConsolidationQuery(actor, consolidationID)
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.handlers.GetConsolidation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	memberIDs := make([]string, len(detail.MemberIDs))
	for i, id := range detail.MemberIDs {
		memberIDs[i] = id.String()
	}
	return ctx.JSON(http.StatusOK, ConsolidationDetail{
		Consolidation: toConsolidation(detail.Consolidation),
		MemberIDs:     memberIDs,
	})
}

// AddOrders handles POST /api/v1/consolidations/:consolidationID/orders.
func (s *Server) AddOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	consolidationID, err := pathUUID(ctx, "consolidationID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req MembershipRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	orderIDs, err := parseUUIDList(req.OrderIDs, "orderIds")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddOrdersToConsolidationCommand(actor, consolidationID, orderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.AddOrders.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrders handles POST /api/v1/consolidations/:consolidationID/orders/remove.
func (s *Server) RemoveOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	consolidationID, err := pathUUID(ctx, "consolidationID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req MembershipRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	orderIDs, err := parseUUIDList(req.OrderIDs, "orderIds")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveOrdersFromConsolidationCommand(actor, consolidationID, orderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.RemoveOrders.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceConsolidation handles POST /api/v1/consolidations/:consolidationID/advance.
func (s *Server) AdvanceConsolidation(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	consolidationID, err := pathUUID(ctx, "consolidationID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req AdvanceConsolidationRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	target, err := consolidation.StatusFromString(req.Target)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceConsolidationStatusCommand(
		actor, consolidationID, target, req.TrackingNumber)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.AdvanceConsolidationStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreatePayment handles POST /api/v1/payments.
func (s *Server) CreatePayment(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreatePaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	consolidationID, err := kernel.UUIDFromString(req.ConsolidationID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("consolidationId", err))
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewCreatePaymentCommand(
		actor, paymentID, consolidationID,
		payment.Method(req.Method),
		payment.Details{
			BankName:       req.Details.BankName,
			BankAccount:    req.Details.BankAccount,
			CardholderName: req.Details.CardholderName,
			CardLast4:      req.Details.CardLast4,
			Reference:      req.Details.Reference,
		},
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreatePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: paymentID.String()})
}

// GetPayments handles GET /api/v1/payments with an optional
// ?consolidationId= filter.
func (s *Server) GetPayments(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var consolidationFilter *kernel.UUID
	if raw := ctx.QueryParam("consolidationId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("consolidationId", err))
		}
		consolidationFilter = &id
	}

	query, err := queries.NewListPaymentsQuery(actor, consolidationFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	payments, err := s.handlers.ListPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Payment, len(payments))
	for i, item := range payments {
		response[i] = toPayment(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPayment handles GET /api/v1/payments/:paymentID. Sensitive detail
// fields come back redacted for actors outside the consolidation.
func (s *Server) GetPayment(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	paymentID, err := pathUUID(ctx, "paymentID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPaymentQuery(actor, paymentID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.handlers.GetPayment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toPayment(resp))
}

// MarkPaymentPaid handles POST /api/v1/payments/:paymentID/paid.
func (s *Server) MarkPaymentPaid(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	paymentID, err := pathUUID(ctx, "paymentID")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkPaymentPaidCommand(actor, paymentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.MarkPaymentPaid.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelPayment handles POST /api/v1/payments/:paymentID/cancel.
func (s *Server) CancelPayment(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	paymentID, err := pathUUID(ctx, "paymentID")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelPaymentCommand(actor, paymentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CancelPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetNotes handles GET /api/v1/orders/:orderID/notes.
func (s *Server) GetNotes(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListNotesQuery(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	notes, err := s.handlers.ListNotes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Note, len(notes))
	for i, item := range notes {
		response[i] = toNote(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateNote handles POST /api/v1/orders/:orderID/notes.
func (s *Server) CreateNote(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateNoteRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	noteID := kernel.NewUUID()
	cmd, err := commands.NewCreateNoteCommand(actor, noteID, orderID, req.Title, req.Body)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateNote.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: noteID.String()})
}

// DeleteNote handles DELETE /api/v1/notes/:noteID.
func (s *Server) DeleteNote(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	noteID, err := pathUUID(ctx, "noteID")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteNoteCommand(actor, noteID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteNote.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddReply handles POST /api/v1/notes/:noteID/replies.
func (s *Server) AddReply(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	noteID, err := pathUUID(ctx, "noteID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req AddReplyRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	replyID := kernel.NewUUID()
	cmd, err := commands.NewAddReplyCommand(actor, replyID, noteID, req.Body)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.AddReply.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: replyID.String()})
}

// DeleteReply handles DELETE /api/v1/notes/:noteID/replies/:replyID.
func (s *Server) DeleteReply(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	noteID, err := pathUUID(ctx, "noteID")
	if err != nil {
		return writeError(ctx, err)
	}
	replyID, err := pathUUID(ctx, "replyID")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteReplyCommand(actor, noteID, replyID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteReply.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
