package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/autoserve360/pos/internal/domain/entity"
	domainRepo "github.com/autoserve360/pos/internal/domain/repository"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) List(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepository) Seed(ctx context.Context, items []entity.InventoryItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}
