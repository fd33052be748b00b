package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoserve360/pos/internal/domain/entity"
	infraRepo "github.com/autoserve360/pos/internal/infrastructure/repository"
	"github.com/autoserve360/pos/pkg/money"
)

func TestListInventoryScopedAndSorted(t *testing.T) {
	db := setupTestDB(t)
	repo := infraRepo.NewInventoryRepository(db)
	svc := NewInventoryService(repo)

	tenantA := uuid.New()
	tenantB := uuid.New()

	require.NoError(t, repo.Seed(tenantCtx(tenantA), []entity.InventoryItem{
		{TenantID: tenantA, Name: "Oil Filter", Price: money.Paise(28000), Stock: 5},
		{TenantID: tenantA, Name: "Air Filter", Price: money.Paise(45000), Stock: 3},
		{TenantID: tenantB, Name: "Brake Fluid", Price: money.Paise(40000), Stock: 9},
	}))

	items, err := svc.ListInventory(tenantCtx(tenantA))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Air Filter", items[0].Name)
	assert.Equal(t, "Oil Filter", items[1].Name)
}

func TestListInventoryEmptyIsNotNil(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventoryService(infraRepo.NewInventoryRepository(db))

	items, err := svc.ListInventory(tenantCtx(uuid.New()))
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
