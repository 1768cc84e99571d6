package handlers

import (
	"strconv"

	"print_shop/internal/middleware"
	"print_shop/internal/models"
	"print_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
	stateService services.OrderStateService
	inventory    services.InventoryService
}

func NewOrderHandler(orderService services.OrderService, stateService services.OrderStateService, inventory services.InventoryService) *OrderHandler {
	return &OrderHandler{orderService: orderService, stateService: stateService, inventory: inventory}
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		respondBadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	order, err := h.orderService.CreateOrder(middleware.OrgID(c), req, middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.GetOrder(middleware.OrgID(c), orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, order, nil)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(middleware.OrgID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, orders, nil)
}

func (h *OrderHandler) Transition(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		ToStatus string `json:"to_status" binding:"required"`
		Reason   string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "to_status is required")
		return
	}

	result, err := h.stateService.Transition(
		middleware.OrgID(c), orderID,
		models.OrderStatus(req.ToStatus), req.Reason,
		middleware.ActorFrom(c),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, result.Order, result.Warnings)
}

func (h *OrderHandler) TransitionState(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		NextState string `json:"next_state" binding:"required"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "next_state is required")
		return
	}

	result, err := h.stateService.TransitionState(
		middleware.OrgID(c), orderID,
		models.OrderState(req.NextState), req.Notes,
		middleware.ActorFrom(c),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, result.Order, result.Warnings)
}

func (h *OrderHandler) CompleteProduction(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		AutoMarkRemainingDone bool `json:"auto_mark_remaining_done"`
	}
	// Body is optional; an empty body means no auto-mark.
	_ = c.ShouldBindJSON(&req)

	result, err := h.stateService.CompleteProduction(middleware.OrgID(c), orderID, req.AutoMarkRemainingDone, middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{
		"order":             result.Order,
		"did_auto_mark":     result.DidAutoMark,
		"auto_marked_count": result.AutoMarkedCount,
	}, result.Warnings)
}

func (h *OrderHandler) SetFulfillmentStatus(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		FulfillmentStatus string `json:"fulfillment_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "fulfillment_status is required")
		return
	}

	order, err := h.stateService.SetFulfillmentStatus(
		middleware.OrgID(c), orderID,
		models.FulfillmentStatus(req.FulfillmentStatus),
		middleware.ActorFrom(c),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, order, nil)
}

func (h *OrderHandler) SetPriority(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Priority string `json:"priority" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "priority is required")
		return
	}

	order, err := h.orderService.SetPriority(middleware.OrgID(c), orderID, req.Priority, middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, order, nil)
}

func (h *OrderHandler) AddLineItem(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req services.CreateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	item, err := h.orderService.AddLineItem(middleware.OrgID(c), orderID, req, middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, item)
}

func (h *OrderHandler) UpdateLineItemStatus(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "status is required")
		return
	}

	item, err := h.orderService.UpdateLineItemStatus(
		middleware.OrgID(c), orderID, itemID,
		models.LineItemStatus(req.Status),
		middleware.ActorFrom(c),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, item, nil)
}

func (h *OrderHandler) BulkUpdateLineItemStatus(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "status is required")
		return
	}

	updated, err := h.orderService.BulkUpdateLineItemStatus(
		middleware.OrgID(c), orderID,
		models.LineItemStatus(req.Status),
		middleware.ActorFrom(c),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"updated_count": updated}, nil)
}

func (h *OrderHandler) AuditTrail(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}
	entries, err := h.orderService.AuditTrail(middleware.OrgID(c), orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, entries, nil)
}

func (h *OrderHandler) InventoryMovements(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}
	movements, err := h.inventory.MovementsForOrder(middleware.OrgID(c), orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, movements, nil)
}
