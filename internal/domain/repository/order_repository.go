// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence operations for orders and their owned line items.
type OrderRepository interface {
	// Create persists the order row and all of its line items, assigning IDs.
	// Callers wanting all-or-nothing semantics run it inside TransactionManager.Execute.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its line items (resolved catalog entries attached).
	// Returns ErrOrderNotFound if absent.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindByOwner retrieves every order of an owner, most recent first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Order, error)
}
