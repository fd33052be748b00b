package client

import (
	"context"
	"net/http"

	"github.com/autoserve360/pos/internal/domain/entity"
)

// ListInventory fetches the sellable catalog (parts and services) used
// to populate item selection. Read-only: nothing in this module ever
// writes stock levels back.
func (c *Client) ListInventory(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	if err := c.do(ctx, http.MethodGet, "/inventory", nil, nil, &items, false); err != nil {
		return nil, err
	}
	return items, nil
}
