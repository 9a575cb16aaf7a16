package cmd

import (
	"cargopool/internal/adapters/out/postgres"
	"cargopool/internal/core/application/usecases/commands"
	"cargopool/internal/core/application/usecases/queries"
	"cargopool/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewAccessPolicy(),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) consolidationUoWFactory() commands.ConsolidationUoWFactory {
	return FuncConsolidationUoWFactory(func() commands.ConsolidationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) noteUoWFactory() commands.NoteUoWFactory {
	return FuncNoteUoWFactory(func() commands.NoteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateCreateConsolidationCommandHandler() commands.CreateConsolidationCommandHandler {
	return commands.NewCreateConsolidationCommandHandler(c.consolidationUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAddOrdersToConsolidationCommandHandler() commands.AddOrdersToConsolidationCommandHandler {
	return commands.NewAddOrdersToConsolidationCommandHandler(c.consolidationUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateRemoveOrdersFromConsolidationCommandHandler() commands.RemoveOrdersFromConsolidationCommandHandler {
	return commands.NewRemoveOrdersFromConsolidationCommandHandler(c.consolidationUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAdvanceConsolidationStatusCommandHandler() commands.AdvanceConsolidationStatusCommandHandler {
	return commands.NewAdvanceConsolidationStatusCommandHandler(c.consolidationUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateArchiveConsolidationsCommandHandler() commands.ArchiveConsolidationsCommandHandler {
	return commands.NewArchiveConsolidationsCommandHandler(c.consolidationUoWFactory())
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	return commands.NewCreatePaymentCommandHandler(c.paymentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateMarkPaymentPaidCommandHandler() commands.MarkPaymentPaidCommandHandler {
	return commands.NewMarkPaymentPaidCommandHandler(c.paymentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateCancelPaymentCommandHandler() commands.CancelPaymentCommandHandler {
	return commands.NewCancelPaymentCommandHandler(c.paymentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateCreateNoteCommandHandler() commands.CreateNoteCommandHandler {
	return commands.NewCreateNoteCommandHandler(c.noteUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateDeleteNoteCommandHandler() commands.DeleteNoteCommandHandler {
	return commands.NewDeleteNoteCommandHandler(c.noteUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAddReplyCommandHandler() commands.AddReplyCommandHandler {
	return commands.NewAddReplyCommandHandler(c.noteUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateDeleteReplyCommandHandler() commands.DeleteReplyCommandHandler {
	return commands.NewDeleteReplyCommandHandler(c.noteUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSuggestEligibleOrdersQueryHandler() queries.SuggestEligibleOrdersQueryHandler {
	return queries.NewSuggestEligibleOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListConsolidationsQueryHandler() queries.ListConsolidationsQueryHandler {
	return queries.NewListConsolidationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConsolidationQueryHandler() queries.GetConsolidationQueryHandler {
	return queries.NewGetConsolidationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPaymentsQueryHandler() queries.ListPaymentsQueryHandler {
	return queries.NewListPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentQueryHandler() queries.GetPaymentQueryHandler {
	return queries.NewGetPaymentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotesQueryHandler() queries.ListNotesQueryHandler {
	return queries.NewListNotesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncConsolidationUoWFactory func() commands.ConsolidationUoW

func (f FuncConsolidationUoWFactory) Create() commands.ConsolidationUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncNoteUoWFactory func() commands.NoteUoW

func (f FuncNoteUoWFactory) Create() commands.NoteUoW {
	return f()
}
