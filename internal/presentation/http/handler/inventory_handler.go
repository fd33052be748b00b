package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/autoserve360/pos/internal/application/service"
	"github.com/autoserve360/pos/internal/presentation/http/dto/response"
)

// InventoryHandler handles catalog HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List handles GET /inventory
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.inventoryService.ListInventory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(200, items)
}
