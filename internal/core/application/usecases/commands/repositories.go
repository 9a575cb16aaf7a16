// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"cargopool/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ConsolidationRepoFactory provides access to the consolidation repository within a transaction.
	ConsolidationRepoFactory interface {
		ConsolidationRepository() ports.ConsolidationRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// NoteRepoFactory provides access to the note repository within a transaction.
	NoteRepoFactory interface {
		NoteRepository() ports.NoteRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ConsolidationUoW manages transactions spanning consolidations and their
	// member orders. Every membership mutation touches both aggregates.
	ConsolidationUoW interface {
		TxManager
		ConsolidationRepoFactory
		OrderRepoFactory
	}

	// ConsolidationUoWFactory creates new consolidation unit of work instances.
	ConsolidationUoWFactory interface {
		Create() ConsolidationUoW
	}

	// PaymentUoW manages transactions spanning payments and the consolidation
	// they settle.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		ConsolidationRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// NoteUoW manages transactions spanning notes and the order they annotate.
	NoteUoW interface {
		TxManager
		NoteRepoFactory
		OrderRepoFactory
	}

	// NoteUoWFactory creates new note unit of work instances.
	NoteUoWFactory interface {
		Create() NoteUoW
	}
)
