package handlers

import (
	"print_shop/internal/middleware"
	"print_shop/internal/models"
	"print_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type StatusPillHandler struct {
	pillService services.StatusPillService
}

func NewStatusPillHandler(pillService services.StatusPillService) *StatusPillHandler {
	return &StatusPillHandler{pillService: pillService}
}

func (h *StatusPillHandler) List(c *gin.Context) {
	pills, err := h.pillService.List(middleware.OrgID(c), c.Query("state_scope"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, pills, nil)
}

func (h *StatusPillHandler) Create(c *gin.Context) {
	var req struct {
		Value      string `json:"value" binding:"required"`
		Color      string `json:"color"`
		StateScope string `json:"state_scope"`
		IsDefault  bool   `json:"is_default"`
		SortOrder  int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "value is required")
		return
	}

	pill := &models.StatusPill{
		Value:      req.Value,
		Color:      req.Color,
		StateScope: req.StateScope,
		IsDefault:  req.IsDefault,
		SortOrder:  req.SortOrder,
	}
	if err := h.pillService.Create(middleware.OrgID(c), pill, middleware.ActorFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, pill)
}

func (h *StatusPillHandler) Update(c *gin.Context) {
	pillID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Value      string `json:"value" binding:"required"`
		Color      string `json:"color"`
		StateScope string `json:"state_scope"`
		IsDefault  bool   `json:"is_default"`
		SortOrder  int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "value is required")
		return
	}

	pill := &models.StatusPill{
		ID:         pillID,
		Value:      req.Value,
		Color:      req.Color,
		StateScope: req.StateScope,
		IsDefault:  req.IsDefault,
		SortOrder:  req.SortOrder,
	}
	if err := h.pillService.Update(middleware.OrgID(c), pill, middleware.ActorFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, pill, nil)
}

func (h *StatusPillHandler) Delete(c *gin.Context) {
	pillID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.pillService.Delete(middleware.OrgID(c), pillID, middleware.ActorFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true}, nil)
}

func (h *StatusPillHandler) SetDefault(c *gin.Context) {
	pillID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.pillService.SetDefault(middleware.OrgID(c), pillID, middleware.ActorFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"is_default": true}, nil)
}

// Assign sets or clears the pill on an order. A null value clears it.
func (h *StatusPillHandler) Assign(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Value *string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	order, err := h.pillService.Assign(middleware.OrgID(c), orderID, req.Value, middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, order, nil)
}
