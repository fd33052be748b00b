package repository

import (
	"context"

	"github.com/autoserve360/pos/internal/domain/entity"
)

// InventoryRepository exposes the read-only catalog the POS pulls from.
type InventoryRepository interface {
	List(ctx context.Context) ([]entity.InventoryItem, error)
	Seed(ctx context.Context, items []entity.InventoryItem) error
}
