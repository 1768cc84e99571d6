package handlers

import (
	"print_shop/internal/middleware"
	"print_shop/internal/models"
	"print_shop/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InventoryHandler struct {
	inventory services.InventoryService
}

func NewInventoryHandler(inventory services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

func (h *InventoryHandler) ListMaterials(c *gin.Context) {
	materials, err := h.inventory.ListMaterials(middleware.OrgID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, materials, nil)
}

func (h *InventoryHandler) CreateMaterial(c *gin.Context) {
	var req struct {
		Code         string          `json:"code" binding:"required"`
		Name         string          `json:"name" binding:"required"`
		Unit         string          `json:"unit"`
		StockOnHand  decimal.Decimal `json:"stock_on_hand"`
		ReorderLevel decimal.Decimal `json:"reorder_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "code and name are required")
		return
	}

	material := &models.Material{
		Code:         req.Code,
		Name:         req.Name,
		Unit:         req.Unit,
		StockOnHand:  req.StockOnHand,
		ReorderLevel: req.ReorderLevel,
	}
	if err := h.inventory.CreateMaterial(middleware.OrgID(c), material, middleware.ActorFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, material)
}

func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	materialID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Delta  decimal.Decimal `json:"delta" binding:"required"`
		Reason string          `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "delta and reason are required")
		return
	}

	material, err := h.inventory.AdjustStock(middleware.OrgID(c), materialID, req.Delta, req.Reason, middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, material, nil)
}
