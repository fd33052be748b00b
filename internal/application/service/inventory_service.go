package service

import (
	"context"

	"github.com/autoserve360/pos/internal/domain/entity"
	"github.com/autoserve360/pos/internal/domain/repository"
)

// InventoryService serves the read-only catalog. Stock levels change on
// the backend's own schedule, never as a side effect of invoicing here.
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// ListInventory lists the catalog for the tenant.
func (s *InventoryService) ListInventory(ctx context.Context) ([]entity.InventoryItem, error) {
	items, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.InventoryItem{}
	}
	return items, nil
}
